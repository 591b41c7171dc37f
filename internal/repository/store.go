package repository

import (
	"context"

	"gorm.io/gorm"
)

// Store bundles the per-aggregate repositories and provides transaction
// scoping across them. Cascading deletes span several aggregates, so the
// transaction boundary lives here rather than on a single repository.
type Store interface {
	Users() UserRepository
	Projects() ProjectRepository
	Contributors() ContributorRepository
	Issues() IssueRepository
	Comments() CommentRepository
	// WithTransaction executes fn within a database transaction. The Store
	// passed to fn is scoped to that transaction.
	WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error
}

type gormStore struct {
	db           *gorm.DB
	users        UserRepository
	projects     ProjectRepository
	contributors ContributorRepository
	issues       IssueRepository
	comments     CommentRepository
}

// NewStore creates a Store backed by the given GORM DB.
func NewStore(db *gorm.DB) Store {
	return &gormStore{
		db:           db,
		users:        NewUserRepository(db),
		projects:     NewProjectRepository(db),
		contributors: NewContributorRepository(db),
		issues:       NewIssueRepository(db),
		comments:     NewCommentRepository(db),
	}
}

func (s *gormStore) Users() UserRepository               { return s.users }
func (s *gormStore) Projects() ProjectRepository         { return s.projects }
func (s *gormStore) Contributors() ContributorRepository { return s.contributors }
func (s *gormStore) Issues() IssueRepository             { return s.issues }
func (s *gormStore) Comments() CommentRepository         { return s.comments }

func (s *gormStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, NewStore(tx))
	})
}
