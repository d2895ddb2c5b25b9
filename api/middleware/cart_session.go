package middleware

import (
	"net/http"
	"strings"

	"github.com/kanvah/storefront-backend/internal/cart"
	"github.com/kanvah/storefront-backend/pkg/logger"
)

// CartSessionHeader carries the opaque cart session id in both directions.
const CartSessionHeader = "X-Cart-Session"

// CartSession resolves the shopper's cart session from the request header,
// issuing a fresh id when the header is missing or malformed. The id is always
// echoed back so clients can persist it.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := strings.TrimSpace(r.Header.Get(CartSessionHeader))
			if !cart.ValidSessionID(id) {
				id = cart.NewSessionID()
			}
			w.Header().Set(CartSessionHeader, id)

			ctx := WithCartSession(r.Context(), id)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, id)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
