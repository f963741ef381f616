// Package utils holds small helpers shared by the transport and service
// layers: caller identity on the context, plain JSON writing, the resty
// client constructor, JWT issuing and parsing, and trace id generation.
package utils

import "context"

type contextKey string

func (c contextKey) String() string {
	return "utils context key " + string(c)
}

const (
	userIDKey contextKey = "user_id"
	issuerKey contextKey = "issuer"
)

// WithUser stores the authenticated caller on ctx.
func WithUser(ctx context.Context, userID int64, issuer string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, issuerKey, issuer)
}

// GetUserIDFromContext returns the user id stored by [WithUser]. ok is false
// for anonymous requests.
func GetUserIDFromContext(ctx context.Context) (userID int64, ok bool) {
	userID, ok = ctx.Value(userIDKey).(int64)
	return userID, ok
}

// GetIssuerFromContext returns the token issuer stored by [WithUser].
func GetIssuerFromContext(ctx context.Context) (string, bool) {
	issuer, ok := ctx.Value(issuerKey).(string)
	return issuer, ok
}
