package reviews

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/kanvah/storefront-backend/internal/catalog"
	"github.com/kanvah/storefront-backend/internal/users"
	"github.com/kanvah/storefront-backend/pkg/config"
	pkgerrors "github.com/kanvah/storefront-backend/pkg/errors"
	"github.com/kanvah/storefront-backend/pkg/migrate"
	"github.com/kanvah/storefront-backend/pkg/pagination"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type submissions struct{ n int }

func (s *submissions) ReviewSubmitted() { s.n++ }

type fixture struct {
	svc     Service
	repo    *Repository
	users   *users.Repository
	metrics *submissions
}

func setupReviewsTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	conn, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	require.NoError(t, migrate.Up(context.Background(), sqlDB, config.DriverSQLite))
	t.Cleanup(func() { _ = sqlDB.Close() })
	return conn
}

func newFixture(t *testing.T, maxImage int) fixture {
	t.Helper()
	conn := setupReviewsTestDB(t)
	ctx := context.Background()

	accounts := users.NewRepository(conn)
	_, err := users.SeedDemo(ctx, accounts, config.PasswordConfig{ArgonMemoryKB: 1024, ArgonTime: 1, ArgonParallelism: 1})
	require.NoError(t, err)

	r := NewRepository(conn)
	written, err := SeedDemo(ctx, r, accounts)
	require.NoError(t, err)
	require.Equal(t, 8, written)

	f := fixture{repo: r, users: accounts, metrics: &submissions{}}
	f.svc, err = NewService(ServiceParams{
		Repo:          r,
		Products:      catalog.Default(),
		Metrics:       f.metrics,
		MaxImageBytes: maxImage,
	})
	require.NoError(t, err)
	return f
}

func (f fixture) user(t *testing.T, email string) *users.User {
	t.Helper()
	u, err := f.users.FindByEmail(context.Background(), email)
	require.NoError(t, err)
	return u
}

func TestSeedDemoIsIdempotent(t *testing.T) {
	f := newFixture(t, 1024)
	written, err := SeedDemo(context.Background(), f.repo, f.users)
	require.NoError(t, err)
	assert.Zero(t, written)
}

func TestListNewestFirst(t *testing.T) {
	f := newFixture(t, 1024)

	list, err := f.svc.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Jordan Taylor", list[0].UserName)
	assert.Equal(t, "Alex Rivera", list[1].UserName)

	list, err = f.svc.List(context.Background(), 19)
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = f.svc.List(context.Background(), 99)
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeNotFound))
}

func TestFeedWalksPagesWithCursor(t *testing.T) {
	f := newFixture(t, 1024)
	ctx := context.Background()

	first, err := f.svc.Feed(ctx, 2, pagination.Params{Limit: 1})
	require.NoError(t, err)
	require.Len(t, first.Reviews, 1)
	assert.Equal(t, "Jordan Taylor", first.Reviews[0].UserName)
	require.NotEmpty(t, first.NextCursor)

	second, err := f.svc.Feed(ctx, 2, pagination.Params{Limit: 1, Cursor: first.NextCursor})
	require.NoError(t, err)
	require.Len(t, second.Reviews, 1)
	assert.Equal(t, "Alex Rivera", second.Reviews[0].UserName)
	assert.Empty(t, second.NextCursor)

	all, err := f.svc.Feed(ctx, 2, pagination.Params{})
	require.NoError(t, err)
	assert.Len(t, all.Reviews, 2)
	assert.Empty(t, all.NextCursor)

	empty, err := f.svc.Feed(ctx, 19, pagination.Params{})
	require.NoError(t, err)
	assert.NotNil(t, empty.Reviews)
	assert.Empty(t, empty.Reviews)

	_, err = f.svc.Feed(ctx, 2, pagination.Params{Cursor: "not-a-cursor"})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
}

func TestSummaryForSeededProduct(t *testing.T) {
	f := newFixture(t, 1024)

	s, err := f.svc.Summary(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 4.5, s.Average, 1e-9)
	require.Len(t, s.Distribution, 5)
	assert.Equal(t, StarCount{Star: 5, Count: 1, Percentage: 50}, s.Distribution[0])
	assert.Equal(t, StarCount{Star: 4, Count: 1, Percentage: 50}, s.Distribution[1])
	assert.Equal(t, StarCount{Star: 1, Count: 0, Percentage: 0}, s.Distribution[4])
}

func TestSummarizeRoundsEachRow(t *testing.T) {
	s := Summarize([]Review{{Rating: 5}, {Rating: 5}, {Rating: 4}})
	assert.Equal(t, 67, s.Distribution[0].Percentage)
	assert.Equal(t, 33, s.Distribution[1].Percentage)

	empty := Summarize(nil)
	assert.Zero(t, empty.Average)
	assert.Len(t, empty.Distribution, 5)
}

func TestEligibility(t *testing.T) {
	f := newFixture(t, 1024)
	ctx := context.Background()

	e, err := f.svc.Eligibility(ctx, nil, 1)
	require.NoError(t, err)
	assert.False(t, e.CanReview)
	assert.Equal(t, ReasonSignIn, e.Reason)

	e, err = f.svc.Eligibility(ctx, f.user(t, "alex@example.com"), 1)
	require.NoError(t, err)
	assert.True(t, e.HasPurchased)
	assert.True(t, e.HasReviewed)
	assert.Equal(t, ReasonAlreadyReviewed, e.Reason)

	e, err = f.svc.Eligibility(ctx, f.user(t, "jordan@example.com"), 1)
	require.NoError(t, err)
	assert.Equal(t, ReasonNotPurchased, e.Reason)

	e, err = f.svc.Eligibility(ctx, f.user(t, "morgan@example.com"), 14)
	require.NoError(t, err)
	assert.True(t, e.CanReview)
	assert.Empty(t, e.Reason)
}

func TestSubmitValidatesAndPersists(t *testing.T) {
	f := newFixture(t, 16)
	ctx := context.Background()
	morgan := f.user(t, "morgan@example.com")

	_, err := f.svc.Submit(ctx, nil, 14, SubmitInput{Rating: 5, Text: "Looks great on me"})
	assert.ErrorIs(t, err, ErrSignInRequired)

	_, err = f.svc.Submit(ctx, f.user(t, "jordan@example.com"), 14, SubmitInput{Rating: 5, Text: "Looks great on me"})
	assert.ErrorIs(t, err, ErrNotPurchased)

	_, err = f.svc.Submit(ctx, morgan, 14, SubmitInput{Rating: 0, Text: "Looks great on me"})
	assert.ErrorIs(t, err, ErrRatingOutOfRange)

	_, err = f.svc.Submit(ctx, morgan, 14, SubmitInput{Rating: 4, Text: "   too short   "})
	assert.ErrorIs(t, err, ErrTextTooShort)

	big := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte(strings.Repeat("x", 17)))
	_, err = f.svc.Submit(ctx, morgan, 14, SubmitInput{Rating: 4, Text: "Warm and comfy hoodie", Image: &big})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))

	notImage := "data:text/plain;base64,aGVsbG8="
	_, err = f.svc.Submit(ctx, morgan, 14, SubmitInput{Rating: 4, Text: "Warm and comfy hoodie", Image: &notImage})
	assert.True(t, pkgerrors.HasCode(err, pkgerrors.CodeValidation))
	assert.Zero(t, f.metrics.n)

	small := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("tiny png"))
	review, err := f.svc.Submit(ctx, morgan, 14, SubmitInput{Rating: 4, Text: "  Warm and comfy hoodie  ", Image: &small})
	require.NoError(t, err)
	assert.Equal(t, "Warm and comfy hoodie", review.Text)
	assert.Equal(t, morgan.AvatarColor, review.UserAvatar)
	require.NotNil(t, review.Image)
	assert.Equal(t, 1, f.metrics.n)

	page, err := f.svc.Page(ctx, morgan, 14)
	require.NoError(t, err)
	require.Len(t, page.Reviews, 1)
	assert.Equal(t, ReasonAlreadyReviewed, page.Eligibility.Reason)
	assert.Equal(t, 1, page.Summary.Count)

	_, err = f.svc.Submit(ctx, morgan, 14, SubmitInput{Rating: 5, Text: "Second thoughts, even better"})
	assert.ErrorIs(t, err, ErrAlreadyReviewed)
}
