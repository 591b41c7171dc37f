package service

import (
	"context"

	"softdesk/internal/authz"
	"softdesk/internal/model"
	"softdesk/internal/repository"
)

// membershipFacts resolves the actor's relation to a project for the
// access-control engine. Facts are recomputed on every request; decisions
// are never cached.
func membershipFacts(ctx context.Context, store repository.Store, actor authz.Actor, project *model.Project) (authz.Membership, error) {
	var m authz.Membership
	if !actor.Authenticated() {
		return m, nil
	}
	m.IsAuthor = actor.ID() == project.AuthorID
	isMember, err := store.Contributors().Exists(ctx, actor.ID(), project.ID)
	if err != nil {
		return m, err
	}
	m.IsMember = isMember
	return m, nil
}
