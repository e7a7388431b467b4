package provider

import (
	"context"

	"github.com/supabase-community/gotrue-go"
	"github.com/supabase-community/gotrue-go/types"

	apperrors "showcase/internal/errors"
)

// GoTrue implements Client against a Supabase GoTrue deployment.
//
// The SDK manages its own HTTP client; context is accepted for
// interface symmetry but per-call deadlines are not applied, so a slow
// provider stalls the calling request.
type GoTrue struct {
	api gotrue.Client
}

var _ Client = (*GoTrue)(nil)

// NewGoTrue builds a provider client for the given GoTrue base URL and
// public API key.
func NewGoTrue(url, apiKey string) *GoTrue {
	return &GoTrue{
		api: gotrue.New("showcase", apiKey).WithCustomGoTrueURL(url),
	}
}

// SignUp requests account creation and returns the provider identity.
// The display name travels in the sign-up metadata, matching where the
// provider keeps non-credential attributes.
func (g *GoTrue) SignUp(ctx context.Context, email, password, name string) (*Identity, error) {
	resp, err := g.api.Signup(types.SignupRequest{
		Email:    email,
		Password: password,
		Data:     map[string]interface{}{"name": name},
	})
	if err != nil {
		return nil, &apperrors.ProviderError{Message: err.Error()}
	}
	return &Identity{
		ID:    resp.ID.String(),
		Email: resp.Email,
		Name:  name,
	}, nil
}

// SignInWithPassword exchanges credentials for an opaque session.
func (g *GoTrue) SignInWithPassword(ctx context.Context, email, password string) (*Session, error) {
	resp, err := g.api.SignInWithEmailPassword(email, password)
	if err != nil {
		return nil, &apperrors.ProviderError{Message: err.Error()}
	}
	return &Session{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
		ExpiresIn:    resp.ExpiresIn,
	}, nil
}

// SignOut invalidates the session at the provider.
func (g *GoTrue) SignOut(ctx context.Context, accessToken string) error {
	if err := g.api.WithToken(accessToken).Logout(); err != nil {
		return &apperrors.ProviderError{Message: err.Error()}
	}
	return nil
}

// UserFromToken verifies the token remotely and returns the identity it
// belongs to.
func (g *GoTrue) UserFromToken(ctx context.Context, accessToken string) (*Identity, error) {
	resp, err := g.api.WithToken(accessToken).GetUser()
	if err != nil {
		return nil, &apperrors.ProviderError{Message: err.Error()}
	}
	identity := &Identity{
		ID:    resp.ID.String(),
		Email: resp.Email,
	}
	if name, ok := resp.UserMetadata["name"].(string); ok {
		identity.Name = name
	}
	return identity, nil
}
