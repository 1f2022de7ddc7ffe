package user

import (
	"time"

	"learnhub/internal/domain/user"
)

// View is the public shape of a user. The password hash never leaves
// the application layer.
type View struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	RoleID    uint      `json:"roleId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func NewView(u *user.User) View {
	return View{
		ID:        u.ID(),
		FirstName: u.FirstName(),
		LastName:  u.LastName(),
		Username:  u.Username(),
		Email:     u.Email(),
		RoleID:    u.RoleID(),
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

// UpdateInput carries the optional fields of a user update. Nil means
// "leave unchanged".
type UpdateInput struct {
	FirstName *string
	LastName  *string
	Username  *string
	Email     *string
	Password  *string
	RoleID    *uint
}
