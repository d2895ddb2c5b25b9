package users

import (
	"time"

	"github.com/google/uuid"
	"github.com/kanvah/storefront-backend/pkg/types"
)

// User is a storefront account. PasswordHash never leaves this package's callers
// in responses; use Profile for that.
type User struct {
	ID                  uuid.UUID      `gorm:"type:text;primaryKey"`
	Name                string         `gorm:"not null"`
	Email               string         `gorm:"not null;uniqueIndex:idx_users_email"`
	PasswordHash        string         `gorm:"not null"`
	AvatarColor         string         `gorm:"not null"`
	PurchasedProductIDs types.IDList   `gorm:"type:text;not null"`
	Address             *types.Address `gorm:"type:text"`
	LastLoginAt         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (User) TableName() string { return "users" }

// HasAddress reports whether a shipping address is on file.
func (u *User) HasAddress() bool {
	return u != nil && u.Address != nil && u.Address.Street != ""
}

// HasPurchased reports whether productID appears in the purchase history.
func (u *User) HasPurchased(productID int) bool {
	return u != nil && u.PurchasedProductIDs.Contains(productID)
}

// Profile is the user as shown to its owner.
type Profile struct {
	ID                  uuid.UUID      `json:"id"`
	Name                string         `json:"name"`
	Email               string         `json:"email"`
	Avatar              string         `json:"avatar"`
	PurchasedProductIDs []int          `json:"purchased_product_ids"`
	Address             *types.Address `json:"address,omitempty"`
}

func ToProfile(u *User) *Profile {
	if u == nil {
		return nil
	}
	ids := append([]int{}, u.PurchasedProductIDs...)
	var addr *types.Address
	if u.HasAddress() {
		a := *u.Address
		addr = &a
	}
	return &Profile{
		ID:                  u.ID,
		Name:                u.Name,
		Email:               u.Email,
		Avatar:              u.AvatarColor,
		PurchasedProductIDs: ids,
		Address:             addr,
	}
}
