package access

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sanadhr/backoffice-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
)

type AccessServiceImpl struct {
	userRepo user.UserRepository
}

func NewAccessService(userRepo user.UserRepository) user.AccessService {
	return &AccessServiceImpl{userRepo: userRepo}
}

func (s *AccessServiceImpl) Create(ctx context.Context, actorRole user.Role, req user.CreateUserRequest) (user.UserResponse, error) {
	if !user.HasPermission(actorRole, user.PermissionUserManage) {
		return user.UserResponse{}, user.ErrAdminPrivilegeRequired
	}
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	role, _ := user.ParseRole(req.Role)
	if !user.CanModify(actorRole, role, user.ActionChangeRole) {
		return user.UserResponse{}, user.ErrCannotModifyUser
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}
	passwordHash := string(hash)

	created, err := s.userRepo.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		FullName:     req.FullName,
		PasswordHash: &passwordHash,
		Role:         role,
		AccessActive: true,
	})
	if err != nil {
		return user.UserResponse{}, err
	}
	return mapToUserResponse(created), nil
}

func (s *AccessServiceImpl) List(ctx context.Context, actorRole user.Role) ([]user.UserResponse, error) {
	if !user.HasPermission(actorRole, user.PermissionUserManage) {
		return nil, user.ErrAdminPrivilegeRequired
	}

	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]user.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, mapToUserResponse(u))
	}
	return result, nil
}

func (s *AccessServiceImpl) SetAccess(ctx context.Context, req user.SetAccessRequest) (user.UserResponse, error) {
	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	action := user.ActionDisableAccess
	if req.Active {
		action = user.ActionEnableAccess
	}
	if !user.CanModify(req.ActorRole, target.Role, action) {
		return user.UserResponse{}, user.ErrCannotModifyUser
	}

	if err := s.userRepo.SetAccessActive(ctx, req.UserID, req.Active); err != nil {
		return user.UserResponse{}, err
	}
	target.AccessActive = req.Active
	return mapToUserResponse(target), nil
}

func (s *AccessServiceImpl) SetRole(ctx context.Context, req user.SetRoleRequest) (user.UserResponse, error) {
	if err := req.Validate(); err != nil {
		return user.UserResponse{}, err
	}

	target, err := s.userRepo.GetByID(ctx, req.UserID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if !user.CanModify(req.ActorRole, target.Role, user.ActionChangeRole) {
		return user.UserResponse{}, user.ErrCannotModifyUser
	}

	newRole, _ := user.ParseRole(req.Role)
	// Promoting above the actor's own rank is never allowed.
	if !user.CanModify(req.ActorRole, newRole, user.ActionChangeRole) {
		return user.UserResponse{}, user.ErrCannotModifyUser
	}

	if err := s.userRepo.SetRole(ctx, req.UserID, newRole); err != nil {
		return user.UserResponse{}, err
	}
	target.Role = newRole
	return mapToUserResponse(target), nil
}

func mapToUserResponse(u user.User) user.UserResponse {
	return user.UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		FullName:     u.FullName,
		Role:         string(u.Role),
		AccessActive: u.AccessActive,
	}
}
