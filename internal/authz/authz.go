// Package authz implements the access-control engine. Decisions are pure
// functions over the actor, the already-resolved resource, and membership
// facts supplied by the caller; nothing here touches storage, and nothing is
// cached between requests.
package authz

import (
	"softdesk/internal/errors"
	"softdesk/internal/model"
)

// Actor is the identity performing a request. A nil User means anonymous.
type Actor struct {
	User *model.User
}

// Authenticated reports whether the actor carries a resolved user.
func (a Actor) Authenticated() bool {
	return a.User != nil
}

// ID returns the actor's user id, or 0 for anonymous actors.
func (a Actor) ID() uint {
	if a.User == nil {
		return 0
	}
	return a.User.ID
}

// Elevated reports whether the actor bypasses membership scoping. Elevated
// actors may see every project but still cannot write resources they do not
// author, which is how a staff request ends in Forbidden where an ordinary
// non-member would get NotFound.
func (a Actor) Elevated() bool {
	return a.User != nil && (a.User.IsStaff || a.User.IsSuperuser)
}

// Membership carries the actor's relation to a project, resolved by the
// caller before any decision runs.
type Membership struct {
	IsAuthor bool
	IsMember bool
}

// CanReadProject decides object-level read access to a project. Non-members
// get NotFound rather than Forbidden: their project listing never contains
// the object, so confirming its existence would leak it.
func CanReadProject(actor Actor, m Membership) error {
	if !actor.Authenticated() {
		return errors.ErrUnauthenticated
	}
	if actor.Elevated() || m.IsAuthor || m.IsMember {
		return nil
	}
	return errors.NewNotFound(errors.LevelProject)
}

// CanWriteProject decides update/delete access to a project's own fields.
// Only the author may write; members and elevated actors can read the
// project, so they receive Forbidden instead of NotFound.
func CanWriteProject(actor Actor, m Membership) error {
	if !actor.Authenticated() {
		return errors.ErrUnauthenticated
	}
	if m.IsAuthor {
		return nil
	}
	if actor.Elevated() || m.IsMember {
		return errors.NewForbidden("only the project author can modify the project")
	}
	return errors.NewNotFound(errors.LevelProject)
}

// CanAccessProjectResources is the collection-level check for everything
// scoped under a project: issue and comment listings, creates, and the
// contributor listing. It runs before any object is loaded.
func CanAccessProjectResources(actor Actor, m Membership) error {
	if !actor.Authenticated() {
		return errors.ErrUnauthenticated
	}
	if actor.Elevated() || m.IsAuthor || m.IsMember {
		return nil
	}
	return errors.NewForbidden("you are not a contributor to this project")
}

// CanManageContributors decides who may add or remove project members.
func CanManageContributors(actor Actor, m Membership) error {
	if !actor.Authenticated() {
		return errors.ErrUnauthenticated
	}
	if m.IsAuthor {
		return nil
	}
	if actor.Elevated() || m.IsMember {
		return errors.NewForbidden("only the project author can manage contributors")
	}
	return errors.NewNotFound(errors.LevelProject)
}

// CanRevokeContributor decides removal of a member from a project. Removing
// the author is refused for every actor, the author included, and that
// refusal takes precedence over the author-only management rule.
func CanRevokeContributor(actor Actor, project *model.Project, target *model.User, m Membership) error {
	if !actor.Authenticated() {
		return errors.ErrUnauthenticated
	}
	if target.ID == project.AuthorID {
		return errors.NewInvalidOperation("the project author cannot be removed from contributors")
	}
	return CanManageContributors(actor, m)
}

// CanModifyOwned decides update/delete access to an authored resource such
// as an issue or a comment. Membership is checked separately at the
// collection level; being a member is necessary but not sufficient here.
func CanModifyOwned(actor Actor, authorID uint) error {
	if !actor.Authenticated() {
		return errors.ErrUnauthenticated
	}
	if actor.ID() == authorID {
		return nil
	}
	return errors.NewForbidden("only the author can modify this resource")
}

// CanAccessUser decides access to a user profile: the user themself, staff,
// or superusers.
func CanAccessUser(actor Actor, targetID uint) error {
	if !actor.Authenticated() {
		return errors.ErrUnauthenticated
	}
	if actor.ID() == targetID || actor.Elevated() {
		return nil
	}
	return errors.NewForbidden("you can only manage your own profile")
}
