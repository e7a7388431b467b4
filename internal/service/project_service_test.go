package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "showcase/internal/errors"
	"showcase/internal/model"
)

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) List(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) UpdateTransform(ctx context.Context, id uint, position, rotation model.JSONText) error {
	args := m.Called(ctx, id, position, rotation)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

const (
	ownerID    = "7f0c2a6e-0000-4000-8000-0000000000aa"
	strangerID = "7f0c2a6e-0000-4000-8000-0000000000bb"
)

func ownedProject(id uint) *model.Project {
	return &model.Project{
		ID:          id,
		Title:       "Orbital Gallery",
		Description: "WebGL gallery",
		Image:       "https://example.com/p.png",
		UserID:      ownerID,
	}
}

func TestProjectService_Get(t *testing.T) {
	t.Run("unknown id maps to not found", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProjectService(mockRepo, nil)
		project, err := svc.Get(context.Background(), 42)

		assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
		assert.Nil(t, project)
	})

	t.Run("existing project is returned", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(ownedProject(7), nil)

		svc := NewProjectService(mockRepo, nil)
		project, err := svc.Get(context.Background(), 7)

		assert.NoError(t, err)
		assert.Equal(t, uint(7), project.ID)
	})
}

func TestProjectService_Create(t *testing.T) {
	mockRepo := new(MockProjectRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

	svc := NewProjectService(mockRepo, nil)
	project, err := svc.Create(context.Background(), ownerID, ProjectInput{
		Title:        "Orbital Gallery",
		Description:  "WebGL gallery",
		Image:        "https://example.com/p.png",
		Technologies: model.StringList{"React", "TypeScript"},
	})

	assert.NoError(t, err)
	assert.Equal(t, ownerID, project.UserID)
	assert.Equal(t, model.StringList{"React", "TypeScript"}, project.Technologies)
	mockRepo.AssertExpectations(t)
}

func TestProjectService_Update(t *testing.T) {
	t.Run("non-owner is rejected without writing", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(ownedProject(7), nil)

		svc := NewProjectService(mockRepo, nil)
		project, err := svc.Update(context.Background(), 7, strangerID, ProjectInput{Title: "Hijacked"})

		assert.ErrorIs(t, err, apperrors.ErrNotProjectOwner)
		assert.Nil(t, project)
		mockRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("owner overwrites the writable fields", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(ownedProject(7), nil)
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*model.Project")).Return(nil)

		svc := NewProjectService(mockRepo, nil)
		project, err := svc.Update(context.Background(), 7, ownerID, ProjectInput{
			Title:       "Orbital Gallery v2",
			Description: "Updated",
			Image:       "https://example.com/p2.png",
		})

		assert.NoError(t, err)
		assert.Equal(t, "Orbital Gallery v2", project.Title)
		assert.Equal(t, ownerID, project.UserID)
		mockRepo.AssertExpectations(t)
	})
}

func TestProjectService_UpdateTransform(t *testing.T) {
	position := model.JSONText(`{"x":1,"y":2,"z":3}`)
	rotation := model.JSONText(`{"x":0,"y":0,"z":0}`)

	t.Run("unknown id maps to not found", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProjectService(mockRepo, nil)
		err := svc.UpdateTransform(context.Background(), 42, ownerID, position, rotation)

		assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
		mockRepo.AssertNotCalled(t, "UpdateTransform", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("owner writes only the transform columns", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(ownedProject(42), nil)
		mockRepo.On("UpdateTransform", mock.Anything, uint(42), position, rotation).Return(nil)

		svc := NewProjectService(mockRepo, nil)
		err := svc.UpdateTransform(context.Background(), 42, ownerID, position, rotation)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}

func TestProjectService_Delete(t *testing.T) {
	t.Run("unknown id maps to not found and deletes nothing", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, uint(42)).Return(nil, gorm.ErrRecordNotFound)

		svc := NewProjectService(mockRepo, nil)
		err := svc.Delete(context.Background(), 42, ownerID)

		assert.ErrorIs(t, err, apperrors.ErrProjectNotFound)
		mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
	})

	t.Run("owner deletes the project", func(t *testing.T) {
		mockRepo := new(MockProjectRepository)
		mockRepo.On("FindByID", mock.Anything, uint(7)).Return(ownedProject(7), nil)
		mockRepo.On("Delete", mock.Anything, uint(7)).Return(nil)

		svc := NewProjectService(mockRepo, nil)
		err := svc.Delete(context.Background(), 7, ownerID)

		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})
}
