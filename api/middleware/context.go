package middleware

import "context"

type (
	userIDKey      struct{}
	accessTokenKey struct{}
	cartSessionKey struct{}
)

func stringValue(ctx context.Context, key any) string {
	if ctx == nil {
		return ""
	}
	v, _ := ctx.Value(key).(string)
	return v
}

// UserIDFromContext returns the authenticated user's id, or "" for anonymous requests.
func UserIDFromContext(ctx context.Context) string {
	return stringValue(ctx, userIDKey{})
}

// AccessTokenFromContext returns the raw bearer token accepted by Auth.
func AccessTokenFromContext(ctx context.Context) string {
	return stringValue(ctx, accessTokenKey{})
}

// CartSessionFromContext returns the id set by CartSession.
func CartSessionFromContext(ctx context.Context) string {
	return stringValue(ctx, cartSessionKey{})
}

func WithUserID(ctx context.Context, userID string) context.Context {
	return context.WithValue(ctx, userIDKey{}, userID)
}

func WithCartSession(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, cartSessionKey{}, sessionID)
}

func withAccessToken(ctx context.Context, token string) context.Context {
	return context.WithValue(ctx, accessTokenKey{}, token)
}
