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

// MembershipService manages the contributor ledger of a project.
type MembershipService interface {
	List(ctx context.Context, actor authz.Actor, projectID uint) ([]model.Contributor, error)
	// Invite adds the named user as contributor. Only the project author may
	// invite; inviting a current member is a conflict.
	Invite(ctx context.Context, actor authz.Actor, projectID uint, username string) (*model.Contributor, error)
	// Revoke removes the named user from the ledger. Only the project author
	// may revoke, and the author can never be removed, not even by themself.
	Revoke(ctx context.Context, actor authz.Actor, projectID uint, username string) error
}

type membershipService struct {
	store    repository.Store
	resolver *resolver.Resolver
}

// NewMembershipService creates a new membership service.
func NewMembershipService(store repository.Store, res *resolver.Resolver) MembershipService {
	return &membershipService{store: store, resolver: res}
}

func (s *membershipService) List(ctx context.Context, actor authz.Actor, projectID uint) ([]model.Contributor, error) {
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
	return s.store.Contributors().ListByProject(ctx, projectID)
}

func (s *membershipService) Invite(ctx context.Context, actor authz.Actor, projectID uint, username string) (*model.Contributor, error) {
	chain, err := s.resolver.Project(ctx, projectID)
	if err != nil {
		return nil, err
	}
	m, err := membershipFacts(ctx, s.store, actor, chain.Project)
	if err != nil {
		return nil, err
	}
	if err := authz.CanManageContributors(actor, m); err != nil {
		return nil, err
	}

	user, err := s.store.Users().FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFound(apperrors.LevelUser)
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	isMember, err := s.store.Contributors().Exists(ctx, user.ID, projectID)
	if err != nil {
		return nil, err
	}
	if isMember {
		return nil, apperrors.NewConflict("user is already a contributor to this project")
	}

	contributor := &model.Contributor{
		UserID:    user.ID,
		ProjectID: projectID,
	}
	if err := s.store.Contributors().Create(ctx, contributor); err != nil {
		// Loser of a concurrent invite race on (user, project).
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflict("user is already a contributor to this project")
		}
		return nil, fmt.Errorf("add contributor: %w", err)
	}

	contributor.User = *user
	contributor.Project = *chain.Project
	return contributor, nil
}

func (s *membershipService) Revoke(ctx context.Context, actor authz.Actor, projectID uint, username string) error {
	chain, err := s.resolver.Project(ctx, projectID)
	if err != nil {
		return err
	}
	m, err := membershipFacts(ctx, s.store, actor, chain.Project)
	if err != nil {
		return err
	}

	user, err := s.store.Users().FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.NewNotFound(apperrors.LevelUser)
		}
		return fmt.Errorf("find user: %w", err)
	}

	if err := authz.CanRevokeContributor(actor, chain.Project, user, m); err != nil {
		return err
	}

	isMember, err := s.store.Contributors().Exists(ctx, user.ID, projectID)
	if err != nil {
		return err
	}
	if !isMember {
		return apperrors.NewNotFound(apperrors.LevelContributor)
	}

	if err := s.store.Contributors().Delete(ctx, user.ID, projectID); err != nil {
		return fmt.Errorf("remove contributor: %w", err)
	}
	return nil
}
