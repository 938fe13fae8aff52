package auth

import "context"

type userIDKey struct{}

// WithUserID returns a context carrying the authenticated caller id.
// Authentication itself happens outside this service; the transport layer
// attaches whatever identity the gateway established.
func WithUserID(ctx context.Context, userID string) context.Context {
	if userID == "" {
		return ctx
	}
	return context.WithValue(ctx, userIDKey{}, userID)
}

// UserID extracts the caller id from the context; ok is false for
// anonymous callers.
func UserID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(userIDKey{}).(string)
	return id, ok && id != ""
}
