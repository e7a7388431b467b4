// Package provider wraps the external identity provider the application
// delegates all credential, session and token handling to. Nothing in
// this codebase hashes a password or decodes a token; verification is
// always a remote call.
package provider

import "context"

// Identity is the minimal provider-side view of an authenticated user.
type Identity struct {
	ID    string
	Email string
	Name  string
}

// Session is the opaque credential bundle issued by the provider on a
// successful sign-in. The application stores the access token
// client-side and presents it as a bearer token; it never inspects it.
type Session struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int
}

// Client is the contract the application relies on from the identity
// provider. Implementations are constructed in main and injected, never
// held as package-level singletons.
type Client interface {
	// SignUp creates an account at the provider and returns the
	// provider-issued identity.
	SignUp(ctx context.Context, email, password, name string) (*Identity, error)
	// SignInWithPassword exchanges credentials for a session.
	SignInWithPassword(ctx context.Context, email, password string) (*Session, error)
	// SignOut invalidates the session behind the given access token.
	SignOut(ctx context.Context, accessToken string) error
	// UserFromToken resolves the identity behind a bearer token. This is
	// a round trip to the provider on every call.
	UserFromToken(ctx context.Context, accessToken string) (*Identity, error)
}
