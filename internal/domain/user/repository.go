package user

import "context"

type Repository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	// GetByIdentifier matches the identifier against email OR username
	// in a single lookup, for login.
	GetByIdentifier(ctx context.Context, identifier string) (*User, error)
	List(ctx context.Context) ([]*User, error)
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id uint) error

	// EmailInUse and UsernameInUse probe uniqueness, excluding the given
	// user id (zero to check all rows).
	EmailInUse(ctx context.Context, email string, excludeID uint) (bool, error)
	UsernameInUse(ctx context.Context, username string, excludeID uint) (bool, error)
}
