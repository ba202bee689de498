package identity

import "context"

type userKey struct{}

// NewContext returns a context carrying the given user.
func NewContext(ctx context.Context, user CurrentUser) context.Context {
	return context.WithValue(ctx, userKey{}, user)
}

// FromContext retrieves the current user from the context, falling back to
// Anonymous when none was attached.
func FromContext(ctx context.Context) CurrentUser {
	if user, ok := ctx.Value(userKey{}).(CurrentUser); ok {
		return user
	}
	return Anonymous()
}
