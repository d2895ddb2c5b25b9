package users

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/kanvah/storefront-backend/internal/repo"
	"github.com/kanvah/storefront-backend/pkg/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository exposes user-related persistence operations.
type Repository struct {
	repo.Base
}

// NewRepository constructs a users repo bound to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{Base: repo.NewBase(db)}
}

// Create inserts a new user. Email uniqueness is enforced by idx_users_email.
func (r *Repository) Create(ctx context.Context, user *User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.PurchasedProductIDs == nil {
		user.PurchasedProductIDs = types.IDList{}
	}
	return r.DB(ctx).Create(user).Error
}

// FindByEmail expects email to be normalized already.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	if err := r.DB(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	if err := r.DB(ctx).First(&user, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *Repository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.DB(ctx).Model(&User{}).Count(&n).Error
	return n, err
}

// UpdateLastLogin refreshes the user's last_login_at timestamp.
func (r *Repository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return r.DB(ctx).
		Model(&User{}).
		Where("id = ?", id).
		UpdateColumn("last_login_at", at).Error
}

// UpdatePasswordHash swaps the stored hash, used when hashing settings change.
func (r *Repository) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return r.DB(ctx).
		Model(&User{}).
		Where("id = ?", id).
		UpdateColumn("password_hash", hash).Error
}

func (r *Repository) UpdateAddress(ctx context.Context, id uuid.UUID, addr types.Address) error {
	res := r.DB(ctx).
		Model(&User{}).
		Where("id = ?", id).
		Updates(map[string]any{"address": addr, "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// AddPurchases merges productIDs into the purchase history and returns the result.
func (r *Repository) AddPurchases(ctx context.Context, id uuid.UUID, productIDs []int) (types.IDList, error) {
	var merged types.IDList
	err := r.Tx(ctx, func(tx repo.Base) error {
		var user User
		if err := tx.DB(ctx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, "id = ?", id).Error; err != nil {
			return err
		}
		merged = user.PurchasedProductIDs.Merge(productIDs...)
		return tx.DB(ctx).
			Model(&User{}).
			Where("id = ?", id).
			Updates(map[string]any{"purchased_product_ids": merged, "updated_at": time.Now().UTC()}).Error
	})
	if err != nil {
		return nil, err
	}
	return merged, nil
}
