package resolver

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	apperrors "softdesk/internal/errors"
	"softdesk/internal/model"
	"softdesk/internal/repository"
)

// stubStore backs the resolver with in-memory maps. Only the lookups the
// resolver performs are implemented; everything else panics if reached.
type stubStore struct {
	projects map[uint]*model.Project
	issues   map[uint]*model.Issue
	comments map[uint]*model.Comment
}

func (s *stubStore) Users() repository.UserRepository               { return nil }
func (s *stubStore) Contributors() repository.ContributorRepository { return nil }
func (s *stubStore) Projects() repository.ProjectRepository         { return stubProjects{stubStore: s} }
func (s *stubStore) Issues() repository.IssueRepository             { return stubIssues{stubStore: s} }
func (s *stubStore) Comments() repository.CommentRepository         { return stubComments{stubStore: s} }

func (s *stubStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	return fn(ctx, s)
}

type stubProjects struct {
	repository.ProjectRepository
	*stubStore
}

func (s stubProjects) FindByID(_ context.Context, id uint) (*model.Project, error) {
	if p, ok := s.projects[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubIssues struct {
	repository.IssueRepository
	*stubStore
}

func (s stubIssues) FindByID(_ context.Context, id uint) (*model.Issue, error) {
	if i, ok := s.issues[id]; ok {
		return i, nil
	}
	return nil, gorm.ErrRecordNotFound
}

type stubComments struct {
	repository.CommentRepository
	*stubStore
}

func (s stubComments) FindByID(_ context.Context, id uint) (*model.Comment, error) {
	if c, ok := s.comments[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func newStubStore() *stubStore {
	return &stubStore{
		projects: map[uint]*model.Project{
			1: {ID: 1, Title: "Tracker", AuthorID: 1},
			2: {ID: 2, Title: "Other", AuthorID: 2},
		},
		issues: map[uint]*model.Issue{
			10: {ID: 10, Title: "Crash on login", ProjectID: 1, AuthorID: 1},
			20: {ID: 20, Title: "Unrelated issue", ProjectID: 2, AuthorID: 2},
		},
		comments: map[uint]*model.Comment{
			100: {ID: 100, Description: "Reproduced", IssueID: 10, AuthorID: 1},
			200: {ID: 200, Description: "Elsewhere", IssueID: 20, AuthorID: 2},
		},
	}
}

func notFoundLevel(t *testing.T, err error) string {
	t.Helper()
	var notFound *apperrors.NotFoundError
	assert.ErrorAs(t, err, &notFound)
	return notFound.Level
}

func TestResolver_Project(t *testing.T) {
	r := New(newStubStore())

	t.Run("existing project resolves", func(t *testing.T) {
		chain, err := r.Project(context.Background(), 1)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), chain.Project.ID)
		assert.Nil(t, chain.Issue)
		assert.Nil(t, chain.Comment)
	})

	t.Run("missing project fails at the project level", func(t *testing.T) {
		_, err := r.Project(context.Background(), 99)
		assert.Equal(t, apperrors.LevelProject, notFoundLevel(t, err))
	})
}

func TestResolver_Issue(t *testing.T) {
	r := New(newStubStore())

	t.Run("issue under its own project resolves", func(t *testing.T) {
		chain, err := r.Issue(context.Background(), 1, 10)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), chain.Project.ID)
		assert.Equal(t, uint(10), chain.Issue.ID)
	})

	t.Run("missing project fails at the project level", func(t *testing.T) {
		_, err := r.Issue(context.Background(), 99, 10)
		assert.Equal(t, apperrors.LevelProject, notFoundLevel(t, err))
	})

	t.Run("missing issue fails at the issue level", func(t *testing.T) {
		_, err := r.Issue(context.Background(), 1, 99)
		assert.Equal(t, apperrors.LevelIssue, notFoundLevel(t, err))
	})

	t.Run("issue of a different project is not found, not leaked", func(t *testing.T) {
		_, err := r.Issue(context.Background(), 1, 20)
		assert.Equal(t, apperrors.LevelIssue, notFoundLevel(t, err))
	})
}

func TestResolver_Comment(t *testing.T) {
	r := New(newStubStore())

	t.Run("full chain resolves", func(t *testing.T) {
		chain, err := r.Comment(context.Background(), 1, 10, 100)
		assert.NoError(t, err)
		assert.Equal(t, uint(1), chain.Project.ID)
		assert.Equal(t, uint(10), chain.Issue.ID)
		assert.Equal(t, uint(100), chain.Comment.ID)
	})

	t.Run("missing comment fails at the comment level", func(t *testing.T) {
		_, err := r.Comment(context.Background(), 1, 10, 999)
		assert.Equal(t, apperrors.LevelComment, notFoundLevel(t, err))
	})

	t.Run("comment of a different issue is not found", func(t *testing.T) {
		_, err := r.Comment(context.Background(), 1, 10, 200)
		assert.Equal(t, apperrors.LevelComment, notFoundLevel(t, err))
	})

	t.Run("broken ancestor fails before the comment is considered", func(t *testing.T) {
		// Issue 20 is not under project 1, so resolution stops at the issue
		// level even though comment 200 exists under issue 20.
		_, err := r.Comment(context.Background(), 1, 20, 200)
		assert.Equal(t, apperrors.LevelIssue, notFoundLevel(t, err))
	})
}
