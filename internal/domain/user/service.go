package user

import "context"

// AccessService is the admin-facing user management surface.
type AccessService interface {
	Create(ctx context.Context, actorRole Role, req CreateUserRequest) (UserResponse, error)
	List(ctx context.Context, actorRole Role) ([]UserResponse, error)
	SetAccess(ctx context.Context, req SetAccessRequest) (UserResponse, error)
	SetRole(ctx context.Context, req SetRoleRequest) (UserResponse, error)
}
