package user

import (
	"strings"

	"github.com/Sohail342/task-management/internal/auth"
)

// CreateUserDTO is the admin-initiated variant of signup.
type CreateUserDTO struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number"`
	Password    string    `json:"password"`
	Role        auth.Role `json:"role,omitempty"`
}

func (d *CreateUserDTO) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return auth.ValidationError{Msg: "name is required"}
	}
	if d.Email == "" || !strings.Contains(d.Email, "@") {
		return auth.ValidationError{Msg: "email is invalid"}
	}
	if d.PhoneNumber == "" {
		return auth.ValidationError{Msg: "phone_number is required"}
	}
	if len(d.Password) < 8 {
		return auth.ValidationError{Msg: "password must be at least 8 characters"}
	}
	if d.Role == "" {
		d.Role = auth.RoleEmployee
	}
	if !d.Role.Valid() {
		return auth.ValidationError{Msg: "role is invalid"}
	}
	return nil
}

// UpdateUserDTO is an explicit patch: each field is independently
// optional and applied field by field. Password is re-hashed, never
// copied into the record as-is.
type UpdateUserDTO struct {
	Name        *string    `json:"name,omitempty"`
	Email       *string    `json:"email,omitempty"`
	PhoneNumber *string    `json:"phone_number,omitempty"`
	Role        *auth.Role `json:"role,omitempty"`
	Password    *string    `json:"password,omitempty"`
	IsActive    *bool      `json:"is_active,omitempty"`
}

func (d UpdateUserDTO) Validate() error {
	if d.Name != nil && strings.TrimSpace(*d.Name) == "" {
		return auth.ValidationError{Msg: "name cannot be empty"}
	}
	if d.Email != nil && !strings.Contains(*d.Email, "@") {
		return auth.ValidationError{Msg: "email is invalid"}
	}
	if d.PhoneNumber != nil && *d.PhoneNumber == "" {
		return auth.ValidationError{Msg: "phone_number cannot be empty"}
	}
	if d.Role != nil && !d.Role.Valid() {
		return auth.ValidationError{Msg: "role is invalid"}
	}
	if d.Password != nil && len(*d.Password) < 8 {
		return auth.ValidationError{Msg: "password must be at least 8 characters"}
	}
	return nil
}
