package postgres

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Sohail342/task-management/internal"
	"github.com/Sohail342/task-management/internal/auth"
	userDatamodel "github.com/Sohail342/task-management/internal/core/datamodel/user"
)

// Repository is the identity store backing the authenticator and the
// access gate.
type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetByEmail(email string) (*auth.User, string, error) {
	var row userDatamodel.User
	if err := r.db.Where("email = ?", email).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", internal.ErrUserNotFound
		}
		return nil, "", err
	}
	return toDomain(&row), row.PasswordHash, nil
}

func (r *Repository) GetByPhone(phone string) (*auth.User, error) {
	var row userDatamodel.User
	if err := r.db.Where("phone_number = ?", phone).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return toDomain(&row), nil
}

func (r *Repository) GetByID(userID int64) (*auth.User, error) {
	var row userDatamodel.User
	if err := r.db.Where("id = ?", userID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, internal.ErrUserNotFound
		}
		return nil, err
	}
	return toDomain(&row), nil
}

func (r *Repository) Create(u *auth.User, passwordHash string) (*auth.User, error) {
	row := &userDatamodel.User{
		Name:         u.Name,
		Email:        u.Email,
		PhoneNumber:  u.PhoneNumber,
		Role:         string(u.Role),
		PasswordHash: passwordHash,
		IsActive:     u.IsActive,
		IsSuperuser:  u.IsSuperuser,
	}
	if err := r.db.Create(row).Error; err != nil {
		return nil, err
	}
	return toDomain(row), nil
}

func toDomain(row *userDatamodel.User) *auth.User {
	return &auth.User{
		ID:          row.ID,
		Name:        row.Name,
		Email:       row.Email,
		PhoneNumber: row.PhoneNumber,
		Role:        auth.Role(row.Role),
		IsActive:    row.IsActive,
		IsSuperuser: row.IsSuperuser,
	}
}
