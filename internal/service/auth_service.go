package service

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	apperrors "showcase/internal/errors"
	"showcase/internal/model"
	"showcase/internal/provider"
	"showcase/internal/repository"
)

// AuthService is the gateway in front of the identity provider. It owns
// the one piece of state the application adds on top of the provider:
// the mirrored user row, created at sign-up and keyed by the
// provider-issued identifier.
type AuthService interface {
	SignUp(ctx context.Context, email, password, name string) (*model.User, error)
	SignIn(ctx context.Context, email, password string) (*provider.Session, error)
	SignOut(ctx context.Context, accessToken string) error
	CurrentUser(ctx context.Context, accessToken string) (*model.User, error)
}

type authService struct {
	users    repository.UserRepository
	provider provider.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, providerClient provider.Client) AuthService {
	return &authService{
		users:    users,
		provider: providerClient,
	}
}

// SignUp creates the account at the provider, then mirrors the identity
// locally. If the provider succeeds but the local insert fails, the
// provider account is left without a mirror row; there is no
// compensation call to undo the remote sign-up.
func (s *authService) SignUp(ctx context.Context, email, password, name string) (*model.User, error) {
	identity, err := s.provider.SignUp(ctx, email, password, name)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		ID:    identity.ID,
		Email: identity.Email,
		Name:  name,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("mirror user %s: %w", identity.ID, err)
	}

	return user, nil
}

// SignIn forwards credentials to the provider and returns the opaque
// session. Any provider rejection surfaces as invalid credentials.
func (s *authService) SignIn(ctx context.Context, email, password string) (*provider.Session, error) {
	session, err := s.provider.SignInWithPassword(ctx, email, password)
	if err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}
	return session, nil
}

// SignOut invalidates the session at the provider.
func (s *authService) SignOut(ctx context.Context, accessToken string) error {
	return s.provider.SignOut(ctx, accessToken)
}

// CurrentUser resolves the identity behind a token against the provider
// and looks up the mirrored row. A valid token must map to exactly one
// local user; a missing row means the identity cannot be used here.
func (s *authService) CurrentUser(ctx context.Context, accessToken string) (*model.User, error) {
	identity, err := s.provider.UserFromToken(ctx, accessToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.users.FindByID(ctx, identity.ID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", identity.ID, err)
	}

	return user, nil
}
