// Package auth implements signup and login. Both paths mint the same
// stateless token; login deliberately reports one error for every
// failure mode so responses carry no account-enumeration signal.
package auth

import (
	"context"
	"fmt"

	"learnhub/internal/application/user"
	"learnhub/internal/domain/accesscontrol"
	userDomain "learnhub/internal/domain/user"
	"learnhub/internal/shared/constants"
	"learnhub/internal/shared/errors"
	"learnhub/internal/shared/logger"
)

// TokenIssuer mints the session token for an authenticated user.
type TokenIssuer interface {
	Generate(userID, roleID uint) (string, error)
}

// PasswordHasher hashes and verifies credentials.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) error
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
	RoleName  string
}

type LoginInput struct {
	Identifier string
	Password   string
}

// Result is the successful outcome of either auth operation.
type Result struct {
	Token string    `json:"token"`
	User  user.View `json:"user"`
}

type Service struct {
	userRepo userDomain.Repository
	roleRepo accesscontrol.RoleRepository
	tokens   TokenIssuer
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewService(
	userRepo userDomain.Repository,
	roleRepo accesscontrol.RoleRepository,
	tokens TokenIssuer,
	hasher PasswordHasher,
	log logger.Interface,
) *Service {
	return &Service{
		userRepo: userRepo,
		roleRepo: roleRepo,
		tokens:   tokens,
		hasher:   hasher,
		logger:   log,
	}
}

// Register creates the user under the requested role (default
// "Employee") and returns a freshly minted token.
func (s *Service) Register(ctx context.Context, input RegisterInput) (*Result, error) {
	if input.Password == "" {
		return nil, errors.NewValidationError("password is required")
	}

	roleName := input.RoleName
	if roleName == "" {
		roleName = constants.DefaultSignupRole
	}

	role, err := s.roleRepo.GetByName(ctx, roleName)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve role: %w", err)
	}
	if role == nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("role %q not found", roleName))
	}

	if inUse, err := s.userRepo.EmailInUse(ctx, input.Email, 0); err != nil {
		return nil, fmt.Errorf("failed to check email uniqueness: %w", err)
	} else if inUse {
		return nil, errors.NewConflictError("email already registered")
	}
	if inUse, err := s.userRepo.UsernameInUse(ctx, input.Username, 0); err != nil {
		return nil, fmt.Errorf("failed to check username uniqueness: %w", err)
	} else if inUse {
		return nil, errors.NewConflictError("username already registered")
	}

	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	u, err := userDomain.NewUser(input.FirstName, input.LastName, input.Username, input.Email, hash, role.ID())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := s.userRepo.Create(ctx, u); err != nil {
		return nil, err
	}

	token, err := s.tokens.Generate(u.ID(), u.RoleID())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Infow("user registered", "user_id", u.ID(), "role", roleName)

	return &Result{Token: token, User: user.NewView(u)}, nil
}

// Login authenticates by email or username. The same Unauthorized
// error covers unknown identifiers and wrong passwords.
func (s *Service) Login(ctx context.Context, input LoginInput) (*Result, error) {
	if input.Identifier == "" || input.Password == "" {
		return nil, errors.NewValidationError("identifier and password are required")
	}

	u, err := s.userRepo.GetByIdentifier(ctx, input.Identifier)
	if err != nil {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}
	if u == nil {
		return nil, errors.NewUnauthorizedError(constants.ErrMsgInvalidCredentials)
	}

	if err := s.hasher.Verify(input.Password, u.PasswordHash()); err != nil {
		return nil, errors.NewUnauthorizedError(constants.ErrMsgInvalidCredentials)
	}

	token, err := s.tokens.Generate(u.ID(), u.RoleID())
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	s.logger.Infow("user logged in", "user_id", u.ID())

	return &Result{Token: token, User: user.NewView(u)}, nil
}
