package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"softdesk/internal/authz"
	apperrors "softdesk/internal/errors"
	"softdesk/internal/model"
	"softdesk/internal/repository"
	"softdesk/internal/resolver"
)

// CreateIssueInput carries issue creation data. The author is always the
// acting user; a client-supplied author is ignored at the handler boundary.
type CreateIssueInput struct {
	Title            string
	Description      string
	Tag              model.IssueTag
	Priority         model.IssuePriority
	Status           model.IssueStatus // empty means the "to do" default
	AssigneeUsername *string
}

// UpdateIssueInput carries optional issue field changes. AssigneeUsername
// semantics: nil leaves the assignee untouched, empty string clears it.
type UpdateIssueInput struct {
	Title            *string
	Description      *string
	Tag              *model.IssueTag
	Priority         *model.IssuePriority
	Status           *model.IssueStatus
	AssigneeUsername *string
}

// IssueService exposes issue operations scoped to a project.
type IssueService interface {
	List(ctx context.Context, actor authz.Actor, projectID uint) ([]model.Issue, error)
	Create(ctx context.Context, actor authz.Actor, projectID uint, in CreateIssueInput) (*model.Issue, error)
	Get(ctx context.Context, actor authz.Actor, projectID, issueID uint) (*model.Issue, error)
	Update(ctx context.Context, actor authz.Actor, projectID, issueID uint, in UpdateIssueInput) (*model.Issue, error)
	Delete(ctx context.Context, actor authz.Actor, projectID, issueID uint) error
}

type issueService struct {
	store    repository.Store
	resolver *resolver.Resolver
}

// NewIssueService creates a new issue service.
func NewIssueService(store repository.Store, res *resolver.Resolver) IssueService {
	return &issueService{store: store, resolver: res}
}

func (s *issueService) List(ctx context.Context, actor authz.Actor, projectID uint) ([]model.Issue, error) {
	chain, err := s.resolver.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	m, err := membershipFacts(ctx, s.store, actor, chain.Project)
	if err != nil {
		return nil, err
	}
	if err := authz.CanAccessProjectResources(actor, m); err != nil {
		return nil, err
	}
	return s.store.Issues().ListByProject(ctx, projectID)
}

func (s *issueService) Create(ctx context.Context, actor authz.Actor, projectID uint, in CreateIssueInput) (*model.Issue, error) {
	chain, err := s.resolver.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	m, err := membershipFacts(ctx, s.store, actor, chain.Project)
	if err != nil {
		return nil, err
	}
	if err := authz.CanAccessProjectResources(actor, m); err != nil {
		return nil, err
	}

	status := in.Status
	if status == "" {
		status = model.IssueStatusToDo
	}

	issue := &model.Issue{
		Title:       in.Title,
		Description: in.Description,
		Tag:         in.Tag,
		Priority:    in.Priority,
		Status:      status,
		ProjectID:   projectID,
		AuthorID:    actor.ID(),
	}

	if in.AssigneeUsername != nil && *in.AssigneeUsername != "" {
		assignee, err := s.resolveAssignee(ctx, projectID, *in.AssigneeUsername)
		if err != nil {
			return nil, err
		}
		issue.AssigneeID = &assignee.ID
		issue.Assignee = assignee
	}

	if err := s.store.Issues().Create(ctx, issue); err != nil {
		return nil, fmt.Errorf("create issue: %w", err)
	}

	issue.Project = *chain.Project
	issue.Author = *actor.User
	return issue, nil
}

func (s *issueService) Get(ctx context.Context, actor authz.Actor, projectID, issueID uint) (*model.Issue, error) {
	chain, err := s.resolver.Issue(ctx, projectID, issueID)
	if err != nil {
		return nil, err
	}
	m, err := membershipFacts(ctx, s.store, actor, chain.Project)
	if err != nil {
		return nil, err
	}
	if err := authz.CanAccessProjectResources(actor, m); err != nil {
		return nil, err
	}
	return chain.Issue, nil
}

func (s *issueService) Update(ctx context.Context, actor authz.Actor, projectID, issueID uint, in UpdateIssueInput) (*model.Issue, error) {
	chain, err := s.resolver.Issue(ctx, projectID, issueID)
	if err != nil {
		return nil, err
	}
	m, err := membershipFacts(ctx, s.store, actor, chain.Project)
	if err != nil {
		return nil, err
	}
	if err := authz.CanAccessProjectResources(actor, m); err != nil {
		return nil, err
	}
	if err := authz.CanModifyOwned(actor, chain.Issue.AuthorID); err != nil {
		return nil, err
	}

	issue := chain.Issue
	if in.Title != nil {
		issue.Title = *in.Title
	}
	if in.Description != nil {
		issue.Description = *in.Description
	}
	if in.Tag != nil {
		issue.Tag = *in.Tag
	}
	if in.Priority != nil {
		issue.Priority = *in.Priority
	}
	if in.Status != nil {
		issue.Status = *in.Status
	}
	if in.AssigneeUsername != nil {
		if *in.AssigneeUsername == "" {
			issue.AssigneeID = nil
			issue.Assignee = nil
		} else {
			assignee, err := s.resolveAssignee(ctx, projectID, *in.AssigneeUsername)
			if err != nil {
				return nil, err
			}
			issue.AssigneeID = &assignee.ID
			issue.Assignee = assignee
		}
	}

	if err := s.store.Issues().Update(ctx, issue); err != nil {
		return nil, fmt.Errorf("update issue: %w", err)
	}
	return issue, nil
}

func (s *issueService) Delete(ctx context.Context, actor authz.Actor, projectID, issueID uint) error {
	chain, err := s.resolver.Issue(ctx, projectID, issueID)
	if err != nil {
		return err
	}
	m, err := membershipFacts(ctx, s.store, actor, chain.Project)
	if err != nil {
		return err
	}
	if err := authz.CanAccessProjectResources(actor, m); err != nil {
		return err
	}
	if err := authz.CanModifyOwned(actor, chain.Issue.AuthorID); err != nil {
		return err
	}

	err = s.store.WithTransaction(ctx, func(ctx context.Context, tx repository.Store) error {
		if err := tx.Comments().DeleteByIssue(ctx, issueID); err != nil {
			return err
		}
		return tx.Issues().Delete(ctx, issueID)
	})
	if err != nil {
		return fmt.Errorf("delete issue: %w", err)
	}
	return nil
}

// resolveAssignee validates that the named user exists and is a current
// contributor of the project. Violations are field-level validation errors,
// not authorization failures.
func (s *issueService) resolveAssignee(ctx context.Context, projectID uint, username string) (*model.User, error) {
	user, err := s.store.Users().FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewValidation("assignee", "assignee user does not exist")
		}
		return nil, fmt.Errorf("find assignee: %w", err)
	}

	isMember, err := s.store.Contributors().Exists(ctx, user.ID, projectID)
	if err != nil {
		return nil, err
	}
	if !isMember {
		return nil, apperrors.NewValidation("assignee", "assignee must be a contributor to this project")
	}
	return user, nil
}
