package repository

import (
	"context"

	"gorm.io/gorm"

	"showcase/internal/model"
)

// ReviewRepository defines review persistence operations. Reviews are
// append-only.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	ListByProject(ctx context.Context, projectID uint) ([]model.Review, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository creates a new review repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

// Create inserts a new review.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

// ListByProject returns a project's reviews, oldest first.
func (r *reviewRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).Where("project_id = ?", projectID).Order("id").Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}
