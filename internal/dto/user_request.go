package dto

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role" validate:"required,oneof=admin editor viewer"`
}

type UpdateUserRequest struct {
	Role     *string `json:"role" validate:"omitempty,oneof=admin editor viewer"`
	IsActive *bool   `json:"isActive"`
}

func (r UpdateUserRequest) IsEmpty() bool {
	return r.Role == nil && r.IsActive == nil
}
