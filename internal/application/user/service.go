package user

import (
	"context"
	"fmt"

	"learnhub/internal/domain/accesscontrol"
	userDomain "learnhub/internal/domain/user"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
)

// Authorizer gates capability-protected operations.
type Authorizer interface {
	Authorize(ctx context.Context, userID uint, required ...accesscontrol.Capability) error
}

// PasswordHasher re-hashes passwords on update.
type PasswordHasher interface {
	Hash(password string) (string, error)
}

var capUsersUpdate = accesscontrol.MustCapability("users:update")

type Service struct {
	userRepo userDomain.Repository
	roleRepo accesscontrol.RoleRepository
	authz    Authorizer
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewService(
	userRepo userDomain.Repository,
	roleRepo accesscontrol.RoleRepository,
	authz Authorizer,
	hasher PasswordHasher,
	log logger.Interface,
) *Service {
	return &Service{
		userRepo: userRepo,
		roleRepo: roleRepo,
		authz:    authz,
		hasher:   hasher,
		logger:   log,
	}
}

func (s *Service) List(ctx context.Context) ([]View, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]View, 0, len(users))
	for _, u := range users {
		views = append(views, NewView(u))
	}
	return views, nil
}

func (s *Service) Get(ctx context.Context, id uint) (*View, error) {
	u, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	view := NewView(u)
	return &view, nil
}

// Update applies the provided fields. A role change always requires the
// users:update capability, even on a self-update where everything else
// is allowed without it.
func (s *Service) Update(ctx context.Context, actorID, targetID uint, input UpdateInput) (*View, error) {
	u, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.NewNotFoundError("user not found")
	}

	if input.RoleID != nil && *input.RoleID != u.RoleID() {
		if err := s.authz.Authorize(ctx, actorID, capUsersUpdate); err != nil {
			return nil, err
		}

		exists, err := s.roleRepo.Exists(ctx, *input.RoleID)
		if err != nil {
			return nil, fmt.Errorf("failed to check role existence: %w", err)
		}
		if !exists {
			return nil, errors.NewNotFoundError("role not found")
		}
		if err := u.AssignRole(*input.RoleID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if input.Email != nil && *input.Email != u.Email() {
		inUse, err := s.userRepo.EmailInUse(ctx, *input.Email, u.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
		}
		if inUse {
			return nil, errors.NewConflictError("email already in use")
		}
		if err := u.ChangeEmail(*input.Email); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if input.Username != nil && *input.Username != u.Username() {
		inUse, err := s.userRepo.UsernameInUse(ctx, *input.Username, u.ID())
		if err != nil {
			return nil, fmt.Errorf("failed to check username uniqueness: %w", err)
		}
		if inUse {
			return nil, errors.NewConflictError("username already in use")
		}
		if err := u.ChangeUsername(*input.Username); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	firstName := u.FirstName()
	lastName := u.LastName()
	if input.FirstName != nil {
		firstName = *input.FirstName
	}
	if input.LastName != nil {
		lastName = *input.LastName
	}
	if firstName != u.FirstName() || lastName != u.LastName() {
		u.UpdateProfile(firstName, lastName)
	}

	if input.Password != nil && *input.Password != "" {
		hash, err := s.hasher.Hash(*input.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		if err := u.ChangePasswordHash(hash); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := s.userRepo.Update(ctx, u); err != nil {
		return nil, err
	}

	s.logger.Infow("user updated", "user_id", u.ID(), "actor_id", actorID)

	view := NewView(u)
	return &view, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Infow("user deleted", "user_id", id)
	return nil
}
