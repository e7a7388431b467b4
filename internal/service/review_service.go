package service

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	apperrors "showcase/internal/errors"
	"showcase/internal/model"
	"showcase/internal/repository"
)

// ReviewService handles review operations.
type ReviewService interface {
	Create(ctx context.Context, projectID uint, rating decimal.Decimal, comment string) (*model.Review, error)
	ListByProject(ctx context.Context, projectID uint) ([]model.Review, error)
}

type reviewService struct {
	reviews  repository.ReviewRepository
	projects repository.ProjectRepository
}

// NewReviewService creates a new review service.
func NewReviewService(reviews repository.ReviewRepository, projects repository.ProjectRepository) ReviewService {
	return &reviewService{
		reviews:  reviews,
		projects: projects,
	}
}

// Create stores a review against an existing project.
func (s *reviewService) Create(ctx context.Context, projectID uint, rating decimal.Decimal, comment string) (*model.Review, error) {
	if _, err := s.projects.FindByID(ctx, projectID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("find project %d: %w", projectID, err)
	}

	review := &model.Review{
		ProjectID: projectID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	return review, nil
}

// ListByProject returns all reviews for a project. An unknown project
// id yields an empty list, not an error.
func (s *reviewService) ListByProject(ctx context.Context, projectID uint) ([]model.Review, error) {
	reviews, err := s.reviews.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list reviews for project %d: %w", projectID, err)
	}
	return reviews, nil
}
