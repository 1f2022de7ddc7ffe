package course

import "context"

type Repository interface {
	Create(ctx context.Context, course *Course) error
	GetByID(ctx context.Context, id uint) (*Course, error)
	List(ctx context.Context) ([]*Course, error)
	Update(ctx context.Context, course *Course) error
	// SoftDelete marks the course deleted, recording who deleted it.
	SoftDelete(ctx context.Context, id uint, deletedBy *uint) error
}
