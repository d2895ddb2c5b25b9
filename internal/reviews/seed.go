package reviews

import (
	"context"
	"fmt"
	"time"

	"github.com/kanvah/storefront-backend/internal/repo"
	"github.com/kanvah/storefront-backend/internal/users"
)

type demoReview struct {
	productID int
	email     string
	avatar    string
	rating    int
	text      string
	date      string
}

var demoReviews = []demoReview{
	{1, "alex@example.com", "#c81020", 5, "Absolutely love this hoodie. The heavyweight cotton feels premium and the oversized fit is exactly what I wanted. The embossed logo is subtle but adds a nice touch. Already planning to get it in gray too.", "2026-02-15T10:30:00Z"},
	{1, "morgan@example.com", "#2563eb", 4, "Great quality hoodie, the 400gsm cotton is thick and warm. Runs a bit large — I normally wear L but M fits perfectly for the oversized look. The hidden zip on the kangaroo pocket is a clever detail.", "2026-02-20T14:15:00Z"},
	{2, "alex@example.com", "#c81020", 5, "This jacket is a beast. Wore it in heavy rain and stayed completely dry. The sealed seams really work. Looks amazing with the tactical silhouette — gets compliments everywhere I go.", "2026-02-18T09:00:00Z"},
	{2, "jordan@example.com", "#9333ea", 5, "The Storm Jacket exceeded my expectations. Build quality is exceptional, the YKK zippers are smooth, and the internal mesh lining makes it breathable enough for layering. Worth every dollar.", "2026-02-22T16:45:00Z"},
	{5, "alex@example.com", "#c81020", 5, "Managed to grab one before they sold out. The matte nylon has such a clean look, and the quilted lining keeps it warm without bulk. The arm patch is a nice detail — very MA-1 but modernized.", "2026-02-10T11:20:00Z"},
	{8, "alex@example.com", "#c81020", 4, "Perfect everyday tee. The garment-dyed finish gives it character right out of the bag. Slightly elongated body is great for tucking or layering. Grabbed 3 in different colors.", "2026-02-12T08:30:00Z"},
	{3, "morgan@example.com", "#2563eb", 4, "Really functional vest with great pocket placement. The DWR finish handled light drizzle well. Runs true to size. Only wish the MOLLE webbing was a touch more robust.", "2026-02-19T13:00:00Z"},
	{4, "morgan@example.com", "#2563eb", 5, "Statement piece of the year. The fishtail hem gives it such a unique silhouette. Insulation is legit warm — wore it in -5°C and was comfortable. The venom embroidery is 🔥", "2026-02-25T10:00:00Z"},
}

type userFinder interface {
	FindByEmail(ctx context.Context, email string) (*users.User, error)
}

// SeedDemo writes the launch reviews once, attributing each to its demo account.
// Reviews whose author is missing are skipped.
func SeedDemo(ctx context.Context, r *Repository, accounts userFinder) (int, error) {
	n, err := r.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count reviews: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	written := 0
	for _, d := range demoReviews {
		author, err := accounts.FindByEmail(ctx, d.email)
		if err != nil {
			if repo.IsNotFound(err) {
				continue
			}
			return written, fmt.Errorf("lookup %s: %w", d.email, err)
		}
		created, err := time.Parse(time.RFC3339, d.date)
		if err != nil {
			return written, fmt.Errorf("parse seed date %q: %w", d.date, err)
		}
		review := &Review{
			ProductID:  d.productID,
			UserID:     author.ID,
			UserName:   author.Name,
			UserAvatar: d.avatar,
			Rating:     d.rating,
			Text:       d.text,
			CreatedAt:  created,
		}
		if err := r.Create(ctx, review); err != nil {
			return written, fmt.Errorf("seed review for product %d: %w", d.productID, err)
		}
		written++
	}
	return written, nil
}
