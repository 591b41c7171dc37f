package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"softdesk/internal/model"
	"softdesk/internal/repository"
)

// MockUserRepository is a mock implementation of UserRepository.
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.User), args.Error(1)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.User), args.Error(1)
}

// MockProjectRepository is a mock implementation of ProjectRepository.
type MockProjectRepository struct {
	mock.Mock
}

func (m *MockProjectRepository) Create(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Update(ctx context.Context, project *model.Project) error {
	args := m.Called(ctx, project)
	return args.Error(0)
}

func (m *MockProjectRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProjectRepository) FindByID(ctx context.Context, id uint) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepository) ListForMember(ctx context.Context, userID uint) ([]model.Project, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) ListByAuthor(ctx context.Context, authorID uint) ([]model.Project, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepository) ListAll(ctx context.Context) ([]model.Project, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

// MockContributorRepository is a mock implementation of ContributorRepository.
type MockContributorRepository struct {
	mock.Mock
}

func (m *MockContributorRepository) Create(ctx context.Context, contributor *model.Contributor) error {
	args := m.Called(ctx, contributor)
	return args.Error(0)
}

func (m *MockContributorRepository) Delete(ctx context.Context, userID, projectID uint) error {
	args := m.Called(ctx, userID, projectID)
	return args.Error(0)
}

func (m *MockContributorRepository) Exists(ctx context.Context, userID, projectID uint) (bool, error) {
	args := m.Called(ctx, userID, projectID)
	return args.Bool(0), args.Error(1)
}

func (m *MockContributorRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Contributor, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Contributor), args.Error(1)
}

func (m *MockContributorRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockContributorRepository) DeleteByUser(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockIssueRepository is a mock implementation of IssueRepository.
type MockIssueRepository struct {
	mock.Mock
}

func (m *MockIssueRepository) Create(ctx context.Context, issue *model.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockIssueRepository) Update(ctx context.Context, issue *model.Issue) error {
	args := m.Called(ctx, issue)
	return args.Error(0)
}

func (m *MockIssueRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockIssueRepository) FindByID(ctx context.Context, id uint) (*model.Issue, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Issue), args.Error(1)
}

func (m *MockIssueRepository) ListByProject(ctx context.Context, projectID uint) ([]model.Issue, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Issue), args.Error(1)
}

func (m *MockIssueRepository) ListByAuthor(ctx context.Context, authorID uint) ([]model.Issue, error) {
	args := m.Called(ctx, authorID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Issue), args.Error(1)
}

func (m *MockIssueRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockIssueRepository) DeleteByAuthor(ctx context.Context, authorID uint) error {
	args := m.Called(ctx, authorID)
	return args.Error(0)
}

func (m *MockIssueRepository) ClearAssignee(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// MockCommentRepository is a mock implementation of CommentRepository.
type MockCommentRepository struct {
	mock.Mock
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

func (m *MockCommentRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCommentRepository) FindByID(ctx context.Context, id uint) (*model.Comment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Comment), args.Error(1)
}

func (m *MockCommentRepository) ListByIssue(ctx context.Context, issueID uint) ([]model.Comment, error) {
	args := m.Called(ctx, issueID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *MockCommentRepository) DeleteByIssue(ctx context.Context, issueID uint) error {
	args := m.Called(ctx, issueID)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteByProject(ctx context.Context, projectID uint) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteByAuthor(ctx context.Context, authorID uint) error {
	args := m.Called(ctx, authorID)
	return args.Error(0)
}

func (m *MockCommentRepository) DeleteByIssueAuthor(ctx context.Context, authorID uint) error {
	args := m.Called(ctx, authorID)
	return args.Error(0)
}

// MockTokenStore is a mock implementation of TokenStoreInterface.
type MockTokenStore struct {
	mock.Mock
}

func (m *MockTokenStore) StoreRefreshToken(ctx context.Context, tokenID string, userID uint, username string, ttl time.Duration) error {
	args := m.Called(ctx, tokenID, userID, username, ttl)
	return args.Error(0)
}

func (m *MockTokenStore) GetRefreshToken(ctx context.Context, tokenID string) (uint, string, error) {
	args := m.Called(ctx, tokenID)
	return args.Get(0).(uint), args.String(1), args.Error(2)
}

func (m *MockTokenStore) DeleteRefreshToken(ctx context.Context, tokenID string) error {
	args := m.Called(ctx, tokenID)
	return args.Error(0)
}

// fakeStore bundles the mock repositories behind the Store interface.
// WithTransaction simply runs fn against the same store, which keeps cascade
// order assertions observable through the mocks.
type fakeStore struct {
	users        *MockUserRepository
	projects     *MockProjectRepository
	contributors *MockContributorRepository
	issues       *MockIssueRepository
	comments     *MockCommentRepository
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        new(MockUserRepository),
		projects:     new(MockProjectRepository),
		contributors: new(MockContributorRepository),
		issues:       new(MockIssueRepository),
		comments:     new(MockCommentRepository),
	}
}

func (s *fakeStore) Users() repository.UserRepository               { return s.users }
func (s *fakeStore) Projects() repository.ProjectRepository         { return s.projects }
func (s *fakeStore) Contributors() repository.ContributorRepository { return s.contributors }
func (s *fakeStore) Issues() repository.IssueRepository             { return s.issues }
func (s *fakeStore) Comments() repository.CommentRepository         { return s.comments }

func (s *fakeStore) WithTransaction(ctx context.Context, fn func(ctx context.Context, tx repository.Store) error) error {
	return fn(ctx, s)
}

func (s *fakeStore) assertExpectations(t mock.TestingT) {
	s.users.AssertExpectations(t)
	s.projects.AssertExpectations(t)
	s.contributors.AssertExpectations(t)
	s.issues.AssertExpectations(t)
	s.comments.AssertExpectations(t)
}
