package authz

import (
	"testing"

	"github.com/stretchr/testify/assert"

	apperrors "softdesk/internal/errors"
	"softdesk/internal/model"
)

var (
	anonymous = Actor{}
	author    = Actor{User: &model.User{ID: 1, Username: "alice"}}
	member    = Actor{User: &model.User{ID: 2, Username: "bob"}}
	outsider  = Actor{User: &model.User{ID: 3, Username: "mallory"}}
	staff     = Actor{User: &model.User{ID: 4, Username: "ops", IsStaff: true}}
	superuser = Actor{User: &model.User{ID: 5, Username: "root", IsSuperuser: true}}
)

func membershipOf(actor Actor) Membership {
	switch actor.ID() {
	case author.ID():
		return Membership{IsAuthor: true, IsMember: true}
	case member.ID():
		return Membership{IsMember: true}
	default:
		return Membership{}
	}
}

func TestCanReadProject(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{"anonymous is unauthenticated", anonymous, apperrors.ErrUnauthenticated},
		{"author can read", author, nil},
		{"member can read", member, nil},
		{"non-member gets not found, not forbidden", outsider, apperrors.NewNotFound(apperrors.LevelProject)},
		{"staff can read any project", staff, nil},
		{"superuser can read any project", superuser, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanReadProject(tt.actor, membershipOf(tt.actor))
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanWriteProject(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{"anonymous is unauthenticated", anonymous, apperrors.ErrUnauthenticated},
		{"author can write", author, nil},
		{"member cannot write", member, apperrors.NewForbidden("only the project author can modify the project")},
		{"non-member gets not found", outsider, apperrors.NewNotFound(apperrors.LevelProject)},
		{"staff can see the project but not write it", staff, apperrors.NewForbidden("only the project author can modify the project")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanWriteProject(tt.actor, membershipOf(tt.actor))
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanAccessProjectResources(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{"anonymous is unauthenticated", anonymous, apperrors.ErrUnauthenticated},
		{"author can access", author, nil},
		{"member can access", member, nil},
		// Nested routes already confirm the project exists in their URL, so
		// the collection-level check answers Forbidden rather than NotFound.
		{"non-member gets forbidden", outsider, apperrors.NewForbidden("you are not a contributor to this project")},
		{"staff can access", staff, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanAccessProjectResources(tt.actor, membershipOf(tt.actor))
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanManageContributors(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		wantErr error
	}{
		{"author can manage", author, nil},
		{"member cannot manage", member, apperrors.NewForbidden("only the project author can manage contributors")},
		{"non-member gets not found", outsider, apperrors.NewNotFound(apperrors.LevelProject)},
		{"staff cannot manage", staff, apperrors.NewForbidden("only the project author can manage contributors")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CanManageContributors(tt.actor, membershipOf(tt.actor))
			if tt.wantErr != nil {
				assert.Equal(t, tt.wantErr, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCanRevokeContributor(t *testing.T) {
	project := &model.Project{ID: 10, AuthorID: author.ID()}

	t.Run("author can revoke a regular member", func(t *testing.T) {
		err := CanRevokeContributor(author, project, member.User, membershipOf(author))
		assert.NoError(t, err)
	})

	t.Run("removing the author is invalid even for the author", func(t *testing.T) {
		err := CanRevokeContributor(author, project, author.User, membershipOf(author))
		var invalidOp *apperrors.InvalidOperationError
		assert.ErrorAs(t, err, &invalidOp)
	})

	t.Run("invalid operation wins over forbidden when a member targets the author", func(t *testing.T) {
		err := CanRevokeContributor(member, project, author.User, membershipOf(member))
		var invalidOp *apperrors.InvalidOperationError
		assert.ErrorAs(t, err, &invalidOp)
	})

	t.Run("member cannot revoke another member", func(t *testing.T) {
		err := CanRevokeContributor(member, project, outsider.User, membershipOf(member))
		var forbidden *apperrors.ForbiddenError
		assert.ErrorAs(t, err, &forbidden)
	})
}

func TestCanModifyOwned(t *testing.T) {
	t.Run("resource author can modify", func(t *testing.T) {
		assert.NoError(t, CanModifyOwned(member, member.ID()))
	})

	t.Run("project author cannot modify another member's resource", func(t *testing.T) {
		err := CanModifyOwned(author, member.ID())
		var forbidden *apperrors.ForbiddenError
		assert.ErrorAs(t, err, &forbidden)
	})

	t.Run("anonymous is unauthenticated", func(t *testing.T) {
		assert.Equal(t, apperrors.ErrUnauthenticated, CanModifyOwned(anonymous, member.ID()))
	})
}

func TestCanAccessUser(t *testing.T) {
	t.Run("self access allowed", func(t *testing.T) {
		assert.NoError(t, CanAccessUser(member, member.ID()))
	})

	t.Run("other users forbidden", func(t *testing.T) {
		err := CanAccessUser(member, outsider.ID())
		var forbidden *apperrors.ForbiddenError
		assert.ErrorAs(t, err, &forbidden)
	})

	t.Run("staff can access any profile", func(t *testing.T) {
		assert.NoError(t, CanAccessUser(staff, member.ID()))
	})
}

func TestActorElevated(t *testing.T) {
	assert.False(t, anonymous.Elevated())
	assert.False(t, member.Elevated())
	assert.True(t, staff.Elevated())
	assert.True(t, superuser.Elevated())
}
