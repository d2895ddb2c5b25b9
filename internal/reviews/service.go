package reviews

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kanvah/storefront-backend/internal/catalog"
	"github.com/kanvah/storefront-backend/internal/users"
	"github.com/kanvah/storefront-backend/pkg/db"
	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
	"github.com/kanvah/storefront-backend/pkg/pagination"
)

const minTextLength = 10

var (
	ErrSignInRequired   = pkgerrors.New(pkgerrors.CodeUnauthorized, "Sign in to leave a review")
	ErrNotPurchased     = pkgerrors.New(pkgerrors.CodeForbidden, "Purchase this product to leave a review")
	ErrAlreadyReviewed  = pkgerrors.New(pkgerrors.CodeConflict, "You've already reviewed this product")
	ErrRatingOutOfRange = pkgerrors.Validation("Rating must be between 1 and 5")
	ErrTextTooShort     = pkgerrors.Validation("Review must be at least 10 characters")
)

// SubmitInput is a review as typed by the shopper.
type SubmitInput struct {
	Rating int     `json:"rating"`
	Text   string  `json:"text"`
	Image  *string `json:"image,omitempty"`
}

type Service interface {
	List(ctx context.Context, productID int) ([]Review, error)
	Summary(ctx context.Context, productID int) (*Summary, error)
	Eligibility(ctx context.Context, viewer *users.User, productID int) (*Eligibility, error)
	Page(ctx context.Context, viewer *users.User, productID int) (*Page, error)
	Submit(ctx context.Context, author *users.User, productID int, in SubmitInput) (*Review, error)
	Feed(ctx context.Context, productID int, params pagination.Params) (*FeedPage, error)
}

type store interface {
	ListByProduct(ctx context.Context, productID int) ([]Review, error)
	Create(ctx context.Context, review *Review) error
	Exists(ctx context.Context, productID int, userID uuid.UUID) (bool, error)
	ListPage(ctx context.Context, productID int, cursor *pagination.Cursor, limit int) ([]Review, error)
}

type productLookup interface {
	Get(id int) (catalog.Product, error)
}

type submitRecorder interface {
	ReviewSubmitted()
}

type ServiceParams struct {
	Repo          store
	Products      productLookup
	Metrics       submitRecorder
	SubmitDelay   time.Duration
	MaxImageBytes int
}

type service struct {
	repo     store
	products productLookup
	metrics  submitRecorder
	delay    time.Duration
	maxImage int
	now      func() time.Time
}

func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("reviews repository required")
	}
	if params.Products == nil {
		return nil, fmt.Errorf("product lookup required")
	}
	if params.MaxImageBytes <= 0 {
		return nil, fmt.Errorf("max image bytes must be positive")
	}
	return &service{
		repo:     params.Repo,
		products: params.Products,
		metrics:  params.Metrics,
		delay:    params.SubmitDelay,
		maxImage: params.MaxImageBytes,
		now:      func() time.Time { return time.Now().UTC() },
	}, nil
}

func (s *service) List(ctx context.Context, productID int) ([]Review, error) {
	if _, err := s.products.Get(productID); err != nil {
		return nil, err
	}
	list, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reviews")
	}
	if list == nil {
		list = []Review{}
	}
	return list, nil
}

func (s *service) Summary(ctx context.Context, productID int) (*Summary, error) {
	list, err := s.List(ctx, productID)
	if err != nil {
		return nil, err
	}
	summary := Summarize(list)
	return &summary, nil
}

func (s *service) Eligibility(ctx context.Context, viewer *users.User, productID int) (*Eligibility, error) {
	if _, err := s.products.Get(productID); err != nil {
		return nil, err
	}
	return s.eligibility(ctx, viewer, productID)
}

func (s *service) eligibility(ctx context.Context, viewer *users.User, productID int) (*Eligibility, error) {
	e := &Eligibility{}
	if viewer == nil {
		e.Reason = ReasonSignIn
		return e, nil
	}
	e.SignedIn = true
	e.HasPurchased = viewer.HasPurchased(productID)
	reviewed, err := s.repo.Exists(ctx, productID, viewer.ID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "check existing review")
	}
	e.HasReviewed = reviewed

	switch {
	case !e.HasPurchased:
		e.Reason = ReasonNotPurchased
	case e.HasReviewed:
		e.Reason = ReasonAlreadyReviewed
	default:
		e.CanReview = true
	}
	return e, nil
}

func (s *service) Page(ctx context.Context, viewer *users.User, productID int) (*Page, error) {
	list, err := s.List(ctx, productID)
	if err != nil {
		return nil, err
	}
	e, err := s.eligibility(ctx, viewer, productID)
	if err != nil {
		return nil, err
	}
	return &Page{Reviews: list, Summary: Summarize(list), Eligibility: *e}, nil
}

// Feed pages through a product's reviews newest first.
func (s *service) Feed(ctx context.Context, productID int, params pagination.Params) (*FeedPage, error) {
	if _, err := s.products.Get(productID); err != nil {
		return nil, err
	}
	cursor, err := pagination.ParseCursor(params.Cursor)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cursor")
	}

	list, err := s.repo.ListPage(ctx, productID, cursor, pagination.LimitWithBuffer(params.Limit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "list reviews")
	}

	page := &FeedPage{}
	page.Reviews, page.NextCursor = pagination.Trim(list, params.Limit, func(r Review) pagination.Cursor {
		return pagination.Cursor{CreatedAt: r.CreatedAt, ID: r.ID}
	})
	if page.Reviews == nil {
		page.Reviews = []Review{}
	}
	return page, nil
}

func (s *service) Submit(ctx context.Context, author *users.User, productID int, in SubmitInput) (*Review, error) {
	if _, err := s.products.Get(productID); err != nil {
		return nil, err
	}
	e, err := s.eligibility(ctx, author, productID)
	if err != nil {
		return nil, err
	}
	switch e.Reason {
	case ReasonSignIn:
		return nil, ErrSignInRequired
	case ReasonNotPurchased:
		return nil, ErrNotPurchased
	case ReasonAlreadyReviewed:
		return nil, ErrAlreadyReviewed
	}

	if in.Rating < 1 || in.Rating > 5 {
		return nil, ErrRatingOutOfRange
	}
	text := strings.TrimSpace(in.Text)
	if len([]rune(text)) < minTextLength {
		return nil, ErrTextTooShort
	}
	var image *string
	if in.Image != nil && strings.TrimSpace(*in.Image) != "" {
		img := strings.TrimSpace(*in.Image)
		if err := validateImage(img, s.maxImage); err != nil {
			return nil, err
		}
		image = &img
	}

	if err := s.wait(ctx); err != nil {
		return nil, err
	}

	review := &Review{
		ProductID:  productID,
		UserID:     author.ID,
		UserName:   author.Name,
		UserAvatar: author.AvatarColor,
		Rating:     in.Rating,
		Text:       text,
		Image:      image,
		CreatedAt:  s.now(),
	}
	if err := s.repo.Create(ctx, review); err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, ErrAlreadyReviewed
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "save review")
	}
	if s.metrics != nil {
		s.metrics.ReviewSubmitted()
	}
	return review, nil
}

func (s *service) wait(ctx context.Context) error {
	if s.delay <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(s.delay)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return pkgerrors.Wrap(pkgerrors.CodeStateConflict, ctx.Err(), "review submission cancelled")
	}
}
