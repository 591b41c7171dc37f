package repository

import (
	"context"

	"gorm.io/gorm"

	"softdesk/internal/model"
)

// CommentRepository defines comment persistence operations.
type CommentRepository interface {
	Create(ctx context.Context, comment *model.Comment) error
	Update(ctx context.Context, comment *model.Comment) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Comment, error)
	ListByIssue(ctx context.Context, issueID uint) ([]model.Comment, error)
	DeleteByIssue(ctx context.Context, issueID uint) error
	DeleteByProject(ctx context.Context, projectID uint) error
	DeleteByAuthor(ctx context.Context, authorID uint) error
	DeleteByIssueAuthor(ctx context.Context, authorID uint) error
}

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository creates a new comment repository.
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// Create creates a new comment.
func (r *commentRepository) Create(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

// Update updates an existing comment.
func (r *commentRepository) Update(ctx context.Context, comment *model.Comment) error {
	return r.db.WithContext(ctx).Save(comment).Error
}

// Delete removes a comment row.
func (r *commentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Comment{}, id).Error
}

// FindByID finds a comment by ID with its author preloaded.
func (r *commentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	var comment model.Comment
	err := r.db.WithContext(ctx).Preload("Author").
		Where("id = ?", id).First(&comment).Error
	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// ListByIssue lists an issue's comments, oldest first.
func (r *commentRepository) ListByIssue(ctx context.Context, issueID uint) ([]model.Comment, error) {
	var comments []model.Comment
	err := r.db.WithContext(ctx).Preload("Author").
		Where("issue_id = ?", issueID).
		Order("created_at").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// DeleteByIssue removes every comment of an issue.
func (r *commentRepository) DeleteByIssue(ctx context.Context, issueID uint) error {
	return r.db.WithContext(ctx).
		Where("issue_id = ?", issueID).
		Delete(&model.Comment{}).Error
}

// DeleteByProject removes every comment under a project's issues.
func (r *commentRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	sub := r.db.Model(&model.Issue{}).Select("id").Where("project_id = ?", projectID)
	return r.db.WithContext(ctx).
		Where("issue_id IN (?)", sub).
		Delete(&model.Comment{}).Error
}

// DeleteByAuthor removes every comment authored by the user.
func (r *commentRepository) DeleteByAuthor(ctx context.Context, authorID uint) error {
	return r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Delete(&model.Comment{}).Error
}

// DeleteByIssueAuthor removes comments belonging to issues authored by the
// user, ahead of those issues being deleted.
func (r *commentRepository) DeleteByIssueAuthor(ctx context.Context, authorID uint) error {
	sub := r.db.Model(&model.Issue{}).Select("id").Where("author_id = ?", authorID)
	return r.db.WithContext(ctx).
		Where("issue_id IN (?)", sub).
		Delete(&model.Comment{}).Error
}
