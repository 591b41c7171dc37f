package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	apperrors "softdesk/internal/errors"
	"softdesk/internal/model"
)

// A nil cache client behaves as a permanent miss, which keeps these tests on
// the repository path.

func TestUserService_Get(t *testing.T) {
	t.Run("self access", func(t *testing.T) {
		store := newFakeStore()
		service := NewUserService(store, nil)

		store.users.On("FindByID", mock.Anything, testMember.ID()).Return(testMember.User, nil)

		user, err := service.Get(context.Background(), testMember, testMember.ID())
		assert.NoError(t, err)
		assert.Equal(t, "bob", user.Username)
		store.assertExpectations(t)
	})

	t.Run("other profiles are forbidden", func(t *testing.T) {
		store := newFakeStore()
		service := NewUserService(store, nil)

		_, err := service.Get(context.Background(), testMember, testOutsider.ID())
		var forbidden *apperrors.ForbiddenError
		assert.ErrorAs(t, err, &forbidden)
	})

	t.Run("staff can read any profile", func(t *testing.T) {
		store := newFakeStore()
		service := NewUserService(store, nil)

		store.users.On("FindByID", mock.Anything, testMember.ID()).Return(testMember.User, nil)

		_, err := service.Get(context.Background(), testStaff, testMember.ID())
		assert.NoError(t, err)
	})

	t.Run("missing user", func(t *testing.T) {
		store := newFakeStore()
		service := NewUserService(store, nil)

		store.users.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)

		_, err := service.Get(context.Background(), testStaff, 99)
		var notFound *apperrors.NotFoundError
		assert.ErrorAs(t, err, &notFound)
		assert.Equal(t, apperrors.LevelUser, notFound.Level)
	})
}

func TestUserService_Update(t *testing.T) {
	t.Run("updates only the provided fields", func(t *testing.T) {
		store := newFakeStore()
		service := NewUserService(store, nil)

		current := *testMember.User
		store.users.On("FindByID", mock.Anything, testMember.ID()).Return(&current, nil)
		store.users.On("Update", mock.Anything, mock.MatchedBy(func(u *model.User) bool {
			return u.Email == "new@example.com" && u.Age == 25
		})).Return(nil)

		email := "new@example.com"
		user, err := service.Update(context.Background(), testMember, testMember.ID(), UpdateUserInput{Email: &email})
		assert.NoError(t, err)
		assert.Equal(t, "new@example.com", user.Email)
		store.assertExpectations(t)
	})

	t.Run("age below the minimum is rejected", func(t *testing.T) {
		store := newFakeStore()
		service := NewUserService(store, nil)

		current := *testMember.User
		store.users.On("FindByID", mock.Anything, testMember.ID()).Return(&current, nil)

		age := 14
		_, err := service.Update(context.Background(), testMember, testMember.ID(), UpdateUserInput{Age: &age})
		var validation *apperrors.ValidationError
		assert.ErrorAs(t, err, &validation)
		assert.Equal(t, "age", validation.Field)
	})

	t.Run("duplicate email is a conflict", func(t *testing.T) {
		store := newFakeStore()
		service := NewUserService(store, nil)

		current := *testMember.User
		store.users.On("FindByID", mock.Anything, testMember.ID()).Return(&current, nil)
		store.users.On("Update", mock.Anything, mock.Anything).Return(gorm.ErrDuplicatedKey)

		email := "taken@example.com"
		_, err := service.Update(context.Background(), testMember, testMember.ID(), UpdateUserInput{Email: &email})
		var conflict *apperrors.ConflictError
		assert.ErrorAs(t, err, &conflict)
	})

	t.Run("cannot update someone else", func(t *testing.T) {
		store := newFakeStore()
		service := NewUserService(store, nil)

		email := "evil@example.com"
		_, err := service.Update(context.Background(), testMember, testOutsider.ID(), UpdateUserInput{Email: &email})
		var forbidden *apperrors.ForbiddenError
		assert.ErrorAs(t, err, &forbidden)
	})
}

func TestUserService_Delete(t *testing.T) {
	t.Run("removes the account and everything it owns", func(t *testing.T) {
		store := newFakeStore()
		service := NewUserService(store, nil)

		id := testMember.ID()
		store.users.On("FindByID", mock.Anything, id).Return(testMember.User, nil)

		// One authored project, which cascades like a project delete.
		authored := model.Project{ID: 7, Title: "Side project", AuthorID: id}
		store.projects.On("ListByAuthor", mock.Anything, id).Return([]model.Project{authored}, nil)

		var order []string
		record := func(step string) func(mock.Arguments) {
			return func(mock.Arguments) { order = append(order, step) }
		}

		store.comments.On("DeleteByProject", mock.Anything, authored.ID).Run(record("project comments")).Return(nil)
		store.issues.On("DeleteByProject", mock.Anything, authored.ID).Run(record("project issues")).Return(nil)
		store.contributors.On("DeleteByProject", mock.Anything, authored.ID).Run(record("project contributors")).Return(nil)
		store.projects.On("Delete", mock.Anything, authored.ID).Run(record("project")).Return(nil)

		store.comments.On("DeleteByIssueAuthor", mock.Anything, id).Run(record("comments under authored issues")).Return(nil)
		store.issues.On("DeleteByAuthor", mock.Anything, id).Run(record("authored issues")).Return(nil)
		store.comments.On("DeleteByAuthor", mock.Anything, id).Run(record("authored comments")).Return(nil)
		store.issues.On("ClearAssignee", mock.Anything, id).Run(record("clear assignee")).Return(nil)
		store.contributors.On("DeleteByUser", mock.Anything, id).Run(record("memberships")).Return(nil)
		store.users.On("Delete", mock.Anything, id).Run(record("user")).Return(nil)

		err := service.Delete(context.Background(), testMember, id)
		assert.NoError(t, err)
		assert.Equal(t, []string{
			"project comments",
			"project issues",
			"project contributors",
			"project",
			"comments under authored issues",
			"authored issues",
			"authored comments",
			"clear assignee",
			"memberships",
			"user",
		}, order)
		store.assertExpectations(t)
	})

	t.Run("cannot delete someone else", func(t *testing.T) {
		store := newFakeStore()
		service := NewUserService(store, nil)

		err := service.Delete(context.Background(), testMember, testOutsider.ID())
		var forbidden *apperrors.ForbiddenError
		assert.ErrorAs(t, err, &forbidden)
	})
}
