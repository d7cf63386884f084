package user

import "github.com/sanadhr/backoffice-go/internal/pkg/validator"

type UserResponse struct {
	ID           string `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Role         string `json:"role"`
	AccessActive bool   `json:"access_active"`
}

// SetAccessRequest enables or disables a user's back-office access.
type SetAccessRequest struct {
	UserID    string `json:"-"`
	ActorID   string `json:"-"`
	ActorRole Role   `json:"-"`
	Active    bool   `json:"active"`
}

type SetRoleRequest struct {
	UserID    string `json:"-"`
	ActorID   string `json:"-"`
	ActorRole Role   `json:"-"`
	Role      string `json:"role"`
}

func (r *SetRoleRequest) Validate() error {
	if _, ok := ParseRole(r.Role); !ok {
		return validator.ValidationErrors{
			{Field: "role", Message: "must be super_admin, admin, finance or operations"},
		}
	}
	return nil
}

type CreateUserRequest struct {
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func (r *CreateUserRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{Field: "full_name", Message: "is required"})
	}
	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 8 characters"})
	}
	if _, ok := ParseRole(r.Role); !ok {
		errs = append(errs, validator.ValidationError{Field: "role", Message: "must be super_admin, admin, finance or operations"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}
