package user

import (
	"time"

	"github.com/Sohail342/task-management/internal/auth"
	userDatamodel "github.com/Sohail342/task-management/internal/core/datamodel/user"
)

// User is the full identity record. The password hash never serializes.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PhoneNumber  string    `json:"phone_number"`
	Role         auth.Role `json:"role"`
	PasswordHash string    `json:"-"`
	IsActive     bool      `json:"is_active"`
	IsSuperuser  bool      `json:"is_superuser"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func ToDataModel(u *User) *userDatamodel.User {
	return &userDatamodel.User{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		Role:         string(u.Role),
		PasswordHash: u.PasswordHash,
		IsActive:     u.IsActive,
		IsSuperuser:  u.IsSuperuser,
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func FromDataModel(row *userDatamodel.User) *User {
	return &User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PhoneNumber:  row.PhoneNumber,
		Role:         auth.Role(row.Role),
		PasswordHash: row.PasswordHash,
		IsActive:     row.IsActive,
		IsSuperuser:  row.IsSuperuser,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}

func FromDataModelSlice(rows []*userDatamodel.User) []*User {
	result := make([]*User, len(rows))
	for i, row := range rows {
		result[i] = FromDataModel(row)
	}
	return result
}
