package reviews

import (
	"context"

	"github.com/google/uuid"
	"github.com/kanvah/storefront-backend/internal/repo"
	"github.com/kanvah/storefront-backend/pkg/pagination"
	"gorm.io/gorm"
)

type Repository struct {
	repo.Base
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// ListByProduct returns the product's reviews, newest first.
func (r *Repository) ListByProduct(ctx context.Context, productID int) ([]Review, error) {
	var out []Review
	err := r.DB(ctx).
		Where("product_id = ?", productID).
		Order("created_at DESC, id DESC").
		Find(&out).Error
	return out, err
}

// ListPage returns up to limit reviews older than cursor in ListByProduct order.
// A nil cursor starts from the newest review.
func (r *Repository) ListPage(ctx context.Context, productID int, cursor *pagination.Cursor, limit int) ([]Review, error) {
	q := r.DB(ctx).Where("product_id = ?", productID)
	if cursor != nil {
		q = q.Where("(created_at < ?) OR (created_at = ? AND id < ?)", cursor.CreatedAt, cursor.CreatedAt, cursor.ID.String())
	}
	var out []Review
	err := q.Order("created_at DESC, id DESC").Limit(limit).Find(&out).Error
	return out, err
}

// Create inserts a review. idx_reviews_product_user rejects a second review of
// the same product by the same user.
func (r *Repository) Create(ctx context.Context, review *Review) error {
	if review.ID == uuid.Nil {
		review.ID = uuid.New()
	}
	return r.DB(ctx).Create(review).Error
}

func (r *Repository) Exists(ctx context.Context, productID int, userID uuid.UUID) (bool, error) {
	var n int64
	err := r.DB(ctx).
		Model(&Review{}).
		Where("product_id = ? AND user_id = ?", productID, userID).
		Count(&n).Error
	return n > 0, err
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB(ctx).Model(&Review{}).Count(&n).Error
	return n, err
}
