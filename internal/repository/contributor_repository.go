package repository

import (
	"context"

	"gorm.io/gorm"

	"softdesk/internal/model"
)

// ContributorRepository defines membership-ledger persistence operations.
type ContributorRepository interface {
	Create(ctx context.Context, contributor *model.Contributor) error
	Delete(ctx context.Context, userID, projectID uint) error
	Exists(ctx context.Context, userID, projectID uint) (bool, error)
	ListByProject(ctx context.Context, projectID uint) ([]model.Contributor, error)
	DeleteByProject(ctx context.Context, projectID uint) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type contributorRepository struct {
	db *gorm.DB
}

// NewContributorRepository creates a new contributor repository.
func NewContributorRepository(db *gorm.DB) ContributorRepository {
	return &contributorRepository{db: db}
}

// Create inserts a membership row. The composite unique index on
// (user_id, project_id) makes the loser of a concurrent invite fail with
// gorm.ErrDuplicatedKey.
func (r *contributorRepository) Create(ctx context.Context, contributor *model.Contributor) error {
	return r.db.WithContext(ctx).Create(contributor).Error
}

// Delete removes the membership row for the given pair.
func (r *contributorRepository) Delete(ctx context.Context, userID, projectID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Delete(&model.Contributor{}).Error
}

// Exists reports whether the user is a current member of the project.
func (r *contributorRepository) Exists(ctx context.Context, userID, projectID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Contributor{}).
		Where("user_id = ? AND project_id = ?", userID, projectID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListByProject lists the project's members with users preloaded.
func (r *contributorRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Contributor, error) {
	var contributors []model.Contributor
	err := r.db.WithContext(ctx).Preload("User").
		Where("project_id = ?", projectID).
		Order("created_at").
		Find(&contributors).Error
	if err != nil {
		return nil, err
	}
	return contributors, nil
}

// DeleteByProject removes every membership row of a project.
func (r *contributorRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&model.Contributor{}).Error
}

// DeleteByUser removes every membership row of a user.
func (r *contributorRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Delete(&model.Contributor{}).Error
}
