package service

import (
	"context"
	"fmt"

	"softdesk/internal/authz"
	apperrors "softdesk/internal/errors"
	"softdesk/internal/model"
	"softdesk/internal/repository"
	"softdesk/internal/resolver"
)

// CreateProjectInput carries project creation data. The author is always the
// acting user, never client-supplied.
type CreateProjectInput struct {
	Title       string
	Description string
	Type        model.ProjectType
}

// UpdateProjectInput carries optional project field changes.
type UpdateProjectInput struct {
	Title       *string
	Description *string
	Type        *model.ProjectType
}

// ProjectService exposes project operations. Every call resolves the target
// first, then authorizes, then mutates; nothing mutates on a failed check.
type ProjectService interface {
	Create(ctx context.Context, actor authz.Actor, in CreateProjectInput) (*model.Project, error)
	List(ctx context.Context, actor authz.Actor) ([]model.Project, error)
	Get(ctx context.Context, actor authz.Actor, projectID uint) (*model.Project, error)
	Update(ctx context.Context, actor authz.Actor, projectID uint, in UpdateProjectInput) (*model.Project, error)
	Delete(ctx context.Context, actor authz.Actor, projectID uint) error
}

type projectService struct {
	store    repository.Store
	resolver *resolver.Resolver
}

// NewProjectService creates a new project service.
func NewProjectService(store repository.Store, res *resolver.Resolver) ProjectService {
	return &projectService{store: store, resolver: res}
}

// Create creates a project and the author's membership row in one
// transaction, keeping the author-is-always-a-member invariant.
func (s *projectService) Create(ctx context.Context, actor authz.Actor, in CreateProjectInput) (*model.Project, error) {
	if !actor.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}

	project := &model.Project{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		AuthorID:    actor.ID(),
	}

	err := s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Projects().Create(ctx, project); err != nil {
			return err
		}
		return tx.Contributors().Create(ctx, &model.Contributor{
			UserID:    actor.ID(),
			ProjectID: project.ID,
		})
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	project.Author = *actor.User
	return project, nil
}

// List returns the projects the actor contributes to. Elevated actors see
// every project.
func (s *projectService) List(ctx context.Context, actor authz.Actor) ([]model.Project, error) {
	if !actor.Authenticated() {
		return nil, apperrors.ErrUnauthenticated
	}
	if actor.Elevated() {
		return s.store.Projects().ListAll(ctx)
	}
	return s.store.Projects().ListForMember(ctx, actor.ID())
}

func (s *projectService) Get(ctx context.Context, actor authz.Actor, projectID uint) (*model.Project, error) {
	chain, err := s.resolver.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	m, err := membershipFacts(ctx, s.store, actor, chain.Project)
	if err != nil {
		return nil, err
	}
	if err := authz.CanReadProject(actor, m); err != nil {
		return nil, err
	}
	return chain.Project, nil
}

func (s *projectService) Update(ctx context.Context, actor authz.Actor, projectID uint, in UpdateProjectInput) (*model.Project, error) {
	chain, err := s.resolver.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	m, err := membershipFacts(ctx, s.store, actor, chain.Project)
	if err != nil {
		return nil, err
	}
	if err := authz.CanWriteProject(actor, m); err != nil {
		return nil, err
	}

	project := chain.Project
	if in.Title != nil {
		project.Title = *in.Title
	}
	if in.Description != nil {
		project.Description = *in.Description
	}
	if in.Type != nil {
		project.Type = *in.Type
	}

	if err := s.store.Projects().Update(ctx, project); err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	return project, nil
}

// Delete removes the project and all child rows, children first, in one
// transaction.
func (s *projectService) Delete(ctx context.Context, actor authz.Actor, projectID uint) error {
	chain, err := s.resolver.Project(ctx, projectID)
	if err != nil {
		return err
	}
	m, err := membershipFacts(ctx, s.store, actor, chain.Project)
	if err != nil {
		return err
	}
	if err := authz.CanWriteProject(actor, m); err != nil {
		return err
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		return deleteProjectCascade(ctx, tx, projectID)
	})
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// deleteProjectCascade removes a project's subtree inside an existing
// transaction: comments, then issues, then memberships, then the project.
func deleteProjectCascade(ctx context.Context, tx repository.Store, projectID uint) error {
	if err := tx.Comments().DeleteByProject(ctx, projectID); err != nil {
		return err
	}
	if err := tx.Issues().DeleteByProject(ctx, projectID); err != nil {
		return err
	}
	if err := tx.Contributors().DeleteByProject(ctx, projectID); err != nil {
		return err
	}
	return tx.Projects().Delete(ctx, projectID)
}
