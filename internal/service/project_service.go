package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"

	"showcase/internal/cache"
	apperrors "showcase/internal/errors"
	"showcase/internal/model"
	"showcase/internal/repository"
)

const (
	projectCacheTTL     = 5 * time.Minute
	projectListCacheKey = "projects:all"
)

// ProjectInput carries the writable project fields.
type ProjectInput struct {
	Title        string
	Description  string
	Image        string
	Link         string
	Technologies model.StringList
	Position     model.JSONText
	Rotation     model.JSONText
}

// ProjectService handles project operations. Reads are served through a
// Redis cache; every mutation invalidates the affected entries so the
// next read reflects the database.
type ProjectService interface {
	List(ctx context.Context) ([]model.Project, error)
	Get(ctx context.Context, id uint) (*model.Project, error)
	Create(ctx context.Context, ownerID string, in ProjectInput) (*model.Project, error)
	Update(ctx context.Context, id uint, actorID string, in ProjectInput) (*model.Project, error)
	UpdateTransform(ctx context.Context, id uint, actorID string, position, rotation model.JSONText) error
	Delete(ctx context.Context, id uint, actorID string) error
}

type projectService struct {
	repo  repository.ProjectRepository
	cache *cache.Client
}

// NewProjectService creates a new project service.
func NewProjectService(repo repository.ProjectRepository, cache *cache.Client) ProjectService {
	return &projectService{
		repo:  repo,
		cache: cache,
	}
}

func (s *projectService) cacheKey(id uint) string {
	return fmt.Sprintf("project:%d", id)
}

// List returns all projects, cached.
func (s *projectService) List(ctx context.Context) ([]model.Project, error) {
	if data, _ := s.cache.Get(ctx, projectListCacheKey); data != nil {
		var cached []model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	if payload, err := json.Marshal(projects); err == nil {
		_ = s.cache.Set(ctx, projectListCacheKey, payload, projectCacheTTL)
	}

	return projects, nil
}

// Get retrieves a project by ID, cached.
func (s *projectService) Get(ctx context.Context, id uint) (*model.Project, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Project
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project %d: %w", id, err)
	}

	if payload, err := json.Marshal(project); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, projectCacheTTL)
	}

	return project, nil
}

// Create stores a new project owned by ownerID.
func (s *projectService) Create(ctx context.Context, ownerID string, in ProjectInput) (*model.Project, error) {
	project := &model.Project{
		Title:        in.Title,
		Description:  in.Description,
		Image:        in.Image,
		Link:         in.Link,
		Technologies: in.Technologies,
		Position:     in.Position,
		Rotation:     in.Rotation,
		UserID:       ownerID,
	}

	if err := s.repo.Create(ctx, project); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	_ = s.cache.Delete(ctx, projectListCacheKey)
	return project, nil
}

// Update overwrites the writable fields of an existing project. The
// actor must own the project. Concurrent updates are last-writer-wins;
// there is no optimistic-concurrency check.
func (s *projectService) Update(ctx context.Context, id uint, actorID string, in ProjectInput) (*model.Project, error) {
	project, err := s.loadOwned(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	project.Title = in.Title
	project.Description = in.Description
	project.Image = in.Image
	project.Link = in.Link
	project.Technologies = in.Technologies
	project.Position = in.Position
	project.Rotation = in.Rotation

	if err := s.repo.Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project %d: %w", id, err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id), projectListCacheKey)
	return project, nil
}

// UpdateTransform writes only the serialized position and rotation of
// an owned project, independent of all other fields.
func (s *projectService) UpdateTransform(ctx context.Context, id uint, actorID string, position, rotation model.JSONText) error {
	if _, err := s.loadOwned(ctx, id, actorID); err != nil {
		return err
	}

	if err := s.repo.UpdateTransform(ctx, id, position, rotation); err != nil {
		return fmt.Errorf("update transform %d: %w", id, err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id), projectListCacheKey)
	return nil
}

// Delete removes an owned project.
func (s *projectService) Delete(ctx context.Context, id uint, actorID string) error {
	if _, err := s.loadOwned(ctx, id, actorID); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete project %d: %w", id, err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id), projectListCacheKey)
	return nil
}

// loadOwned fetches a project straight from the repository and checks
// ownership. Mutations skip the cache so the check runs against current
// data.
func (s *projectService) loadOwned(ctx context.Context, id uint, actorID string) (*model.Project, error) {
	project, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project %d: %w", id, err)
	}
	if project.UserID != actorID {
		return nil, apperrors.ErrNotProjectOwner
	}
	return project, nil
}
