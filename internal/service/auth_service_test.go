package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "showcase/internal/errors"
	"showcase/internal/model"
	"showcase/internal/provider"
)

// MockProviderClient is a mock implementation of provider.Client.
type MockProviderClient struct {
	mock.Mock
}

func (m *MockProviderClient) SignUp(ctx context.Context, email, password, name string) (*provider.Identity, error) {
	args := m.Called(ctx, email, password, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Identity), args.Error(1)
}

func (m *MockProviderClient) SignInWithPassword(ctx context.Context, email, password string) (*provider.Session, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Session), args.Error(1)
}

func (m *MockProviderClient) SignOut(ctx context.Context, accessToken string) error {
	args := m.Called(ctx, accessToken)
	return args.Error(0)
}

func (m *MockProviderClient) UserFromToken(ctx context.Context, accessToken string) (*provider.Identity, error) {
	args := m.Called(ctx, accessToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*provider.Identity), args.Error(1)
}

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func TestAuthService_SignUp(t *testing.T) {
	tests := []struct {
		name        string
		email       string
		password    string
		displayName string
		setupMock   func(*MockProviderClient, *MockUserRepository)
		wantErr     bool
		checkUser   func(*testing.T, *model.User)
	}{
		{
			name:        "successful sign-up mirrors the provider identity",
			email:       "test@example.com",
			password:    "password123",
			displayName: "Test User",
			setupMock: func(p *MockProviderClient, u *MockUserRepository) {
				p.On("SignUp", mock.Anything, "test@example.com", "password123", "Test User").
					Return(&provider.Identity{
						ID:    "7f0c2a6e-0000-4000-8000-000000000001",
						Email: "test@example.com",
						Name:  "Test User",
					}, nil)
				u.On("Create", mock.Anything, mock.AnythingOfType("*model.User")).Return(nil)
			},
			checkUser: func(t *testing.T, user *model.User) {
				assert.Equal(t, "7f0c2a6e-0000-4000-8000-000000000001", user.ID)
				assert.Equal(t, "test@example.com", user.Email)
				assert.Equal(t, "Test User", user.Name)
			},
		},
		{
			name:        "provider rejection never touches the database",
			email:       "taken@example.com",
			password:    "password123",
			displayName: "Taken",
			setupMock: func(p *MockProviderClient, u *MockUserRepository) {
				p.On("SignUp", mock.Anything, "taken@example.com", "password123", "Taken").
					Return(nil, &apperrors.ProviderError{Message: "user already registered"})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProvider := new(MockProviderClient)
			mockUsers := new(MockUserRepository)
			tt.setupMock(mockProvider, mockUsers)

			svc := NewAuthService(mockUsers, mockProvider)
			user, err := svc.SignUp(context.Background(), tt.email, tt.password, tt.displayName)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, user)
				mockUsers.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, user)
				tt.checkUser(t, user)
			}

			mockProvider.AssertExpectations(t)
			mockUsers.AssertExpectations(t)
		})
	}
}

func TestAuthService_SignIn(t *testing.T) {
	t.Run("successful sign-in returns the provider session", func(t *testing.T) {
		mockProvider := new(MockProviderClient)
		mockProvider.On("SignInWithPassword", mock.Anything, "test@example.com", "password123").
			Return(&provider.Session{AccessToken: "access-token", RefreshToken: "refresh-token", ExpiresIn: 3600}, nil)

		svc := NewAuthService(new(MockUserRepository), mockProvider)
		session, err := svc.SignIn(context.Background(), "test@example.com", "password123")

		assert.NoError(t, err)
		assert.Equal(t, "access-token", session.AccessToken)
		mockProvider.AssertExpectations(t)
	})

	t.Run("provider rejection maps to invalid credentials", func(t *testing.T) {
		mockProvider := new(MockProviderClient)
		mockProvider.On("SignInWithPassword", mock.Anything, "test@example.com", "wrong").
			Return(nil, &apperrors.ProviderError{Message: "invalid grant"})

		svc := NewAuthService(new(MockUserRepository), mockProvider)
		session, err := svc.SignIn(context.Background(), "test@example.com", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Nil(t, session)
	})
}

func TestAuthService_CurrentUser(t *testing.T) {
	const userID = "7f0c2a6e-0000-4000-8000-000000000001"

	t.Run("valid token resolves to the mirrored user", func(t *testing.T) {
		mockProvider := new(MockProviderClient)
		mockUsers := new(MockUserRepository)
		mockProvider.On("UserFromToken", mock.Anything, "good-token").
			Return(&provider.Identity{ID: userID, Email: "test@example.com"}, nil)
		mockUsers.On("FindByID", mock.Anything, userID).
			Return(&model.User{ID: userID, Email: "test@example.com", Name: "Test User"}, nil)

		svc := NewAuthService(mockUsers, mockProvider)
		user, err := svc.CurrentUser(context.Background(), "good-token")

		assert.NoError(t, err)
		assert.Equal(t, userID, user.ID)
		mockProvider.AssertExpectations(t)
		mockUsers.AssertExpectations(t)
	})

	t.Run("provider rejection maps to invalid token", func(t *testing.T) {
		mockProvider := new(MockProviderClient)
		mockUsers := new(MockUserRepository)
		mockProvider.On("UserFromToken", mock.Anything, "bad-token").
			Return(nil, &apperrors.ProviderError{Message: "invalid JWT"})

		svc := NewAuthService(mockUsers, mockProvider)
		user, err := svc.CurrentUser(context.Background(), "bad-token")

		assert.ErrorIs(t, err, apperrors.ErrInvalidToken)
		assert.Nil(t, user)
		mockUsers.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("missing mirror row maps to user not found", func(t *testing.T) {
		mockProvider := new(MockProviderClient)
		mockUsers := new(MockUserRepository)
		mockProvider.On("UserFromToken", mock.Anything, "orphan-token").
			Return(&provider.Identity{ID: userID, Email: "test@example.com"}, nil)
		mockUsers.On("FindByID", mock.Anything, userID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(mockUsers, mockProvider)
		user, err := svc.CurrentUser(context.Background(), "orphan-token")

		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
		assert.Nil(t, user)
	})
}
