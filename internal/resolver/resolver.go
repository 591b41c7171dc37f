// Package resolver walks the ancestor chain of nested resource identifiers
// (project, issue, comment) strictly top-down, validating at each step that
// the child really belongs to its claimed parent. Resolution answers "does
// this path denote a real object"; authorization is decided separately on
// the resolved chain.
package resolver

import (
	"context"
	stderrors "errors"

	"gorm.io/gorm"

	"softdesk/internal/errors"
	"softdesk/internal/model"
	"softdesk/internal/repository"
)

// Chain is a fully resolved ancestor chain. Issue and Comment are nil when
// the request path stops above them.
type Chain struct {
	Project *model.Project
	Issue   *model.Issue
	Comment *model.Comment
}

// Resolver resolves nested path identifiers against the store.
type Resolver struct {
	store repository.Store
}

// New creates a Resolver over the given store.
func New(store repository.Store) *Resolver {
	return &Resolver{store: store}
}

// Project resolves a single-level chain.
func (r *Resolver) Project(ctx context.Context, projectID uint) (*Chain, error) {
	project, err := r.store.Projects().FindByID(ctx, projectID)
	if err != nil {
		return nil, notFoundAt(err, errors.LevelProject)
	}
	return &Chain{Project: project}, nil
}

// Issue resolves a project/issue chain. An issue that exists under a
// different project is treated as not found at the issue level.
func (r *Resolver) Issue(ctx context.Context, projectID, issueID uint) (*Chain, error) {
	chain, err := r.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}

	issue, err := r.store.Issues().FindByID(ctx, issueID)
	if err != nil {
		return nil, notFoundAt(err, errors.LevelIssue)
	}
	if issue.ProjectID != chain.Project.ID {
		return nil, errors.NewNotFound(errors.LevelIssue)
	}

	chain.Issue = issue
	return chain, nil
}

// Comment resolves a full project/issue/comment chain under the same
// parent-mismatch rule.
func (r *Resolver) Comment(ctx context.Context, projectID, issueID, commentID uint) (*Chain, error) {
	chain, err := r.Issue(ctx, projectID, issueID)
	if err != nil {
		return nil, err
	}

	comment, err := r.store.Comments().FindByID(ctx, commentID)
	if err != nil {
		return nil, notFoundAt(err, errors.LevelComment)
	}
	if comment.IssueID != chain.Issue.ID {
		return nil, errors.NewNotFound(errors.LevelComment)
	}

	chain.Comment = comment
	return chain, nil
}

func notFoundAt(err error, level string) error {
	if stderrors.Is(err, gorm.ErrRecordNotFound) {
		return errors.NewNotFound(level)
	}
	return err
}
