// Package identity exposes the calling user's identity to layers that must
// not depend on the authentication mechanism itself.
package identity

// CurrentUser is a read-only accessor for the identity on whose behalf the
// current work runs. Implementations typically read a request-scoped token or
// session; this layer only consumes the two facts below.
type CurrentUser interface {
	// UserID returns the authenticated user's identifier, empty when anonymous.
	UserID() string
	// IsAuthenticated reports whether a user identity is present.
	IsAuthenticated() bool
}

type staticUser struct {
	userID string
}

// Anonymous returns a CurrentUser representing an unauthenticated caller.
func Anonymous() CurrentUser {
	return staticUser{}
}

// Static returns a CurrentUser with a fixed identifier, useful for tests and
// background jobs acting as a system user.
func Static(userID string) CurrentUser {
	return staticUser{userID: userID}
}

func (u staticUser) UserID() string {
	return u.userID
}

func (u staticUser) IsAuthenticated() bool {
	return u.userID != ""
}
