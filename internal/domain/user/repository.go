package user

import "context"

type UserRepository interface {
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, newUser User) (User, error)
	SetAccessActive(ctx context.Context, id string, active bool) error
	SetRole(ctx context.Context, id string, role Role) error
}
