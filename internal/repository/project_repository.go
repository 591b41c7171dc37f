package repository

import (
	"context"

	"gorm.io/gorm"

	"softdesk/internal/model"
)

// ProjectRepository defines project persistence operations.
type ProjectRepository interface {
	Create(ctx context.Context, project *model.Project) error
	Update(ctx context.Context, project *model.Project) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*model.Project, error)
	ListForMember(ctx context.Context, userID uint) ([]model.Project, error)
	ListByAuthor(ctx context.Context, authorID uint) ([]model.Project, error)
	ListAll(ctx context.Context) ([]model.Project, error)
}

type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository.
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepository{db: db}
}

// Create creates a new project.
func (r *projectRepository) Create(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update updates an existing project.
func (r *projectRepository) Update(ctx context.Context, project *model.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete removes a project row. Child rows are removed explicitly by the
// service-level cascade before this runs.
func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Project{}, id).Error
}

// FindByID finds a project by ID with its author preloaded.
func (r *projectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	var project model.Project
	if err := r.db.WithContext(ctx).Preload("Author").
		Where("id = ?", id).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// ListForMember lists projects the user contributes to, newest first.
func (r *projectRepository) ListForMember(ctx context.Context, userID uint) ([]model.Project, error) {
	var projects []model.Project
	err := r.db.WithContext(ctx).Preload("Author").
		Joins("JOIN contributors ON contributors.project_id = projects.id").
		Where("contributors.user_id = ?", userID).
		Order("projects.created_at DESC").
		Find(&projects).Error
	if err != nil {
		return nil, err
	}
	return projects, nil
}

// ListByAuthor lists projects authored by the user.
func (r *projectRepository) ListByAuthor(ctx context.Context, authorID uint) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Where("author_id = ?", authorID).Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListAll lists every project, newest first. Staff and superusers only.
func (r *projectRepository) ListAll(ctx context.Context) ([]model.Project, error) {
	var projects []model.Project
	if err := r.db.WithContext(ctx).Preload("Author").
		Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
