package repository

import (
	"context"

	"gorm.io/gorm"

	"softdesk/internal/model"
)

// IssueRepository defines issue persistence operations.
type IssueRepository interface {
	Create(ctx context.Context, issue *model.Issue) error
	Update(ctx context.Context, issue *model.Issue) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Issue, error)
	ListByProject(ctx context.Context, projectID uint) ([]model.Issue, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]model.Issue, error)
	DeleteByProject(ctx context.Context, projectID uint) error
	DeleteByAuthor(ctx context.Context, authorID uint) error
	ClearAssignee(ctx context.Context, userID uint) error
}

type issueRepository struct {
	db *gorm.DB
}

// NewIssueRepository creates a new issue repository.
func NewIssueRepository(db *gorm.DB) IssueRepository {
	return &issueRepository{db: db}
}

// Create creates a new issue.
func (r *issueRepository) Create(ctx context.Context, issue *model.Issue) error {
	return r.db.WithContext(ctx).Create(issue).Error
}

// Update updates an existing issue.
func (r *issueRepository) Update(ctx context.Context, issue *model.Issue) error {
	return r.db.WithContext(ctx).Save(issue).Error
}

// Delete removes an issue row.
func (r *issueRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Issue{}, id).Error
}

// FindByID finds an issue by ID with its relations preloaded.
func (r *issueRepository) FindByID(ctx context.Context, id uint) (*model.Issue, error) {
	var issue model.Issue
	err := r.db.WithContext(ctx).
		Preload("Project").Preload("Author").Preload("Assignee").
		Where("id = ?", id).First(&issue).Error
	if err != nil {
		return nil, err
	}
	return &issue, nil
}

// ListByProject lists a project's issues, newest first.
func (r *issueRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Issue, error) {
	var issues []model.Issue
	err := r.db.WithContext(ctx).
		Preload("Project").Preload("Author").Preload("Assignee").
		Where("project_id = ?", projectID).
		Order("created_at DESC").
		Find(&issues).Error
	if err != nil {
		return nil, err
	}
	return issues, nil
}

// ListByAuthor lists issues authored by the user.
func (r *issueRepository) ListByAuthor(ctx context.Context, authorID uint) ([]model.Issue, error) {
	var issues []model.Issue
	if err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Find(&issues).Error; err != nil {
		return nil, err
	}
	return issues, nil
}

// DeleteByProject removes every issue of a project.
func (r *issueRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	return r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Delete(&model.Issue{}).Error
}

// DeleteByAuthor removes every issue authored by the user.
func (r *issueRepository) DeleteByAuthor(ctx context.Context, authorID uint) error {
	return r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&model.Issue{}).Error
}

// ClearAssignee nulls the assignee field on every issue assigned to the user.
func (r *issueRepository) ClearAssignee(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&model.Issue{}).
		Where("assignee_id = ?", userID).
		Update("assignee_id", nil).Error
}
