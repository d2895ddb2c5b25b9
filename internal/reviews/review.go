package reviews

import (
	"time"

	"github.com/google/uuid"
)

// Review is one shopper's rating of a product.
type Review struct {
	ID         uuid.UUID `gorm:"type:text;primaryKey" json:"id"`
	ProductID  int       `gorm:"not null" json:"product_id"`
	UserID     uuid.UUID `gorm:"type:text" json:"user_id"`
	UserName   string    `gorm:"not null" json:"user_name"`
	UserAvatar string    `gorm:"not null" json:"user_avatar"`
	Rating     int       `gorm:"not null" json:"rating"`
	Text       string    `gorm:"not null" json:"text"`
	Image      *string   `json:"image,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func (Review) TableName() string { return "reviews" }

// StarCount is one row of the rating distribution.
type StarCount struct {
	Star       int `json:"star"`
	Count      int `json:"count"`
	Percentage int `json:"percentage"`
}

// Summary aggregates a product's reviews.
type Summary struct {
	Average      float64     `json:"average"`
	Count        int         `json:"count"`
	Distribution []StarCount `json:"distribution"`
}

// Ineligibility reasons, in the order they are checked.
const (
	ReasonSignIn          = "sign_in"
	ReasonNotPurchased    = "purchase_required"
	ReasonAlreadyReviewed = "already_reviewed"
)

// Eligibility says whether the viewer may write a review and, if not, why.
type Eligibility struct {
	SignedIn     bool   `json:"signed_in"`
	HasPurchased bool   `json:"has_purchased"`
	HasReviewed  bool   `json:"has_reviewed"`
	CanReview    bool   `json:"can_review"`
	Reason       string `json:"reason,omitempty"`
}

// Page is everything the product page's review section needs.
type Page struct {
	Reviews     []Review    `json:"reviews"`
	Summary     Summary     `json:"summary"`
	Eligibility Eligibility `json:"eligibility"`
}

// FeedPage is one slice of a product's reviews. NextCursor is empty on the last page.
type FeedPage struct {
	Reviews    []Review `json:"reviews"`
	NextCursor string   `json:"next_cursor,omitempty"`
}
