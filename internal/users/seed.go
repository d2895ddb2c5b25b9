package users

import (
	"context"
	"fmt"

	"github.com/kanvah/storefront-backend/pkg/config"
	"github.com/kanvah/storefront-backend/pkg/security"
	"github.com/kanvah/storefront-backend/pkg/types"
)

const demoPassword = "password123"

type demoUser struct {
	name      string
	email     string
	purchased []int
	address   *types.Address
}

var demoUsers = []demoUser{
	{
		name:      "Alex Rivera",
		email:     "alex@example.com",
		purchased: []int{1, 2, 5, 8, 12},
		address: &types.Address{
			FullName:  "Alex Rivera",
			Phone:     "+1 (555) 123-4567",
			Street:    "742 Evergreen Terrace",
			Apartment: "Apt 3B",
			City:      "Los Angeles",
			State:     "CA",
			Zip:       "90001",
			Country:   "United States",
		},
	},
	{name: "Morgan Chen", email: "morgan@example.com", purchased: []int{1, 3, 4, 7, 11, 14}},
	{name: "Jordan Taylor", email: "jordan@example.com", purchased: []int{2, 6, 9, 10, 16}},
}

// SeedDemo creates the demo accounts when the users table is empty. It reports
// whether anything was written.
func SeedDemo(ctx context.Context, r *Repository, pw config.PasswordConfig) (bool, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return false, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		return false, nil
	}

	hash, err := security.HashPassword(demoPassword, pw)
	if err != nil {
		return false, fmt.Errorf("hash demo password: %w", err)
	}
	for _, d := range demoUsers {
		var addr *types.Address
		if d.address != nil {
			a := *d.address
			addr = &a
		}
		user := &User{
			Name:                d.name,
			Email:               d.email,
			PasswordHash:        hash,
			AvatarColor:         AvatarColor(d.name),
			PurchasedProductIDs: append(types.IDList{}, d.purchased...),
			Address:             addr,
		}
		if err := r.Create(ctx, user); err != nil {
			return false, fmt.Errorf("seed %s: %w", d.email, err)
		}
	}
	return true, nil
}
