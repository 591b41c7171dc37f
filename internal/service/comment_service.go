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

// CommentService exposes comment operations scoped to a project/issue chain.
type CommentService interface {
	List(ctx context.Context, actor authz.Actor, projectID, issueID uint) ([]model.Comment, error)
	Create(ctx context.Context, actor authz.Actor, projectID, issueID uint, description string) (*model.Comment, error)
	Get(ctx context.Context, actor authz.Actor, projectID, issueID, commentID uint) (*model.Comment, error)
	Update(ctx context.Context, actor authz.Actor, projectID, issueID, commentID uint, description string) (*model.Comment, error)
	Delete(ctx context.Context, actor authz.Actor, projectID, issueID, commentID uint) error
}

type commentService struct {
	store    repository.Store
	resolver *resolver.Resolver
}

// NewCommentService creates a new comment service.
func NewCommentService(store repository.Store, res *resolver.Resolver) CommentService {
	return &commentService{store: store, resolver: res}
}

// access resolves the issue chain and runs the collection-level membership
// check shared by every comment operation.
func (s *commentService) access(ctx context.Context, actor authz.Actor, projectID, issueID uint) (*resolver.Chain, error) {
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
	return chain, nil
}

func (s *commentService) List(ctx context.Context, actor authz.Actor, projectID, issueID uint) ([]model.Comment, error) {
	if _, err := s.access(ctx, actor, projectID, issueID); err != nil {
		return nil, err
	}
	return s.store.Comments().ListByIssue(ctx, issueID)
}

func (s *commentService) Create(ctx context.Context, actor authz.Actor, projectID, issueID uint, description string) (*model.Comment, error) {
	if _, err := s.access(ctx, actor, projectID, issueID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		Description: description,
		IssueID:     issueID,
		AuthorID:    actor.ID(),
	}
	if err := s.store.Comments().Create(ctx, comment); err != nil {
		return nil, fmt.Errorf("create comment: %w", err)
	}

	comment.Author = *actor.User
	return comment, nil
}

func (s *commentService) Get(ctx context.Context, actor authz.Actor, projectID, issueID, commentID uint) (*model.Comment, error) {
	chain, err := s.resolver.Comment(ctx, projectID, issueID, commentID)
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
	return chain.Comment, nil
}

func (s *commentService) Update(ctx context.Context, actor authz.Actor, projectID, issueID, commentID uint, description string) (*model.Comment, error) {
	chain, err := s.resolver.Comment(ctx, projectID, issueID, commentID)
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
	if err := authz.CanModifyOwned(actor, chain.Comment.AuthorID); err != nil {
		return nil, err
	}

	comment := chain.Comment
	if description == "" {
		return nil, apperrors.NewValidation("description", "description is required")
	}
	comment.Description = description

	if err := s.store.Comments().Update(ctx, comment); err != nil {
		return nil, fmt.Errorf("update comment: %w", err)
	}
	return comment, nil
}

func (s *commentService) Delete(ctx context.Context, actor authz.Actor, projectID, issueID, commentID uint) error {
	chain, err := s.resolver.Comment(ctx, projectID, issueID, commentID)
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
	if err := authz.CanModifyOwned(actor, chain.Comment.AuthorID); err != nil {
		return err
	}

	if err := s.store.Comments().Delete(ctx, commentID); err != nil {
		return fmt.Errorf("delete comment: %w", err)
	}
	return nil
}
