// Package user holds the account entity used for authentication. A user
// always references exactly one role.
package user

import (
	"fmt"
	"strings"
	"time"
)

type User struct {
	id           uint
	firstName    string
	lastName     string
	username     string
	email        string
	passwordHash string
	roleID       uint
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(firstName, lastName, username, email, passwordHash string, roleID uint) (*User, error) {
	if firstName == "" {
		return nil, fmt.Errorf("first name is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("a valid email is required")
	}
	if passwordHash == "" {
		return nil, fmt.Errorf("password hash is required")
	}
	if roleID == 0 {
		return nil, fmt.Errorf("role ID is required")
	}

	now := time.Now()
	return &User{
		firstName:    firstName,
		lastName:     lastName,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		roleID:       roleID,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(id uint, firstName, lastName, username, email, passwordHash string, roleID uint, createdAt, updatedAt time.Time) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if roleID == 0 {
		return nil, fmt.Errorf("user must have a role")
	}
	return &User{
		id:           id,
		firstName:    firstName,
		lastName:     lastName,
		username:     username,
		email:        email,
		passwordHash: passwordHash,
		roleID:       roleID,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint {
	return u.id
}

func (u *User) SetID(id uint) error {
	if u.id != 0 {
		return fmt.Errorf("user ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("user ID cannot be zero")
	}
	u.id = id
	return nil
}

func (u *User) FirstName() string {
	return u.firstName
}

func (u *User) LastName() string {
	return u.lastName
}

func (u *User) Username() string {
	return u.username
}

func (u *User) Email() string {
	return u.email
}

func (u *User) PasswordHash() string {
	return u.passwordHash
}

func (u *User) RoleID() uint {
	return u.roleID
}

func (u *User) CreatedAt() time.Time {
	return u.createdAt
}

func (u *User) UpdatedAt() time.Time {
	return u.updatedAt
}

func (u *User) UpdateProfile(firstName, lastName string) {
	if firstName != "" {
		u.firstName = firstName
	}
	u.lastName = lastName
	u.updatedAt = time.Now()
}

func (u *User) ChangeUsername(username string) error {
	if username == "" {
		return fmt.Errorf("username cannot be empty")
	}
	u.username = username
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangeEmail(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("a valid email is required")
	}
	u.email = email
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangePasswordHash(hash string) error {
	if hash == "" {
		return fmt.Errorf("password hash cannot be empty")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

// AssignRole reassigns the user's single role. Callers must verify the
// role exists before committing.
func (u *User) AssignRole(roleID uint) error {
	if roleID == 0 {
		return fmt.Errorf("role ID cannot be zero")
	}
	u.roleID = roleID
	u.updatedAt = time.Now()
	return nil
}

// FullName joins first and last name for display.
func (u *User) FullName() string {
	if u.lastName == "" {
		return u.firstName
	}
	return u.firstName + " " + u.lastName
}
