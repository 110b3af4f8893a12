package user

import (
	"log/slog"

	"github.com/Sohail342/task-management/internal"
	"github.com/Sohail342/task-management/internal/auth"
)

type Repository interface {
	GetByID(userID int64) (*User, error)
	GetByEmail(email string) (*User, error)
	GetByPhone(phone string) (*User, error)
	Create(u *User) (*User, error)
	Update(u *User) error
	ListActiveByRole(role auth.Role) ([]*User, error)
	ListActive() ([]*User, error)
}

// Service covers the user-facing profile/listing surface and the
// admin-only user management operations.
type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

func (s *Service) GetByID(userID int64) (*User, error) {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// ListEmployees returns active employees. Admins see all active users
// regardless of role. An empty result is an empty list, not an error.
func (s *Service) ListEmployees(requester *auth.User) ([]*User, error) {
	if requester.IsAdmin() {
		return s.repo.ListActive()
	}
	return s.repo.ListActiveByRole(auth.RoleEmployee)
}

// Create is the admin-initiated user creation; uniqueness rules match
// signup.
func (s *Service) Create(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		return nil, internal.ErrEmailTaken
	}
	if existing, err := s.repo.GetByPhone(dto.PhoneNumber); err == nil && existing != nil {
		return nil, internal.ErrPhoneTaken
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	created, err := s.repo.Create(&User{
		Name:         dto.Name,
		Email:        dto.Email,
		PhoneNumber:  dto.PhoneNumber,
		Role:         dto.Role,
		PasswordHash: hash,
		IsActive:     true,
		IsSuperuser:  dto.Role == auth.RoleAdmin,
	})
	if err != nil {
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user created by admin", "user_id", created.ID, "role", created.Role)
	return created, nil
}

// Update applies an explicit patch to a user record.
func (s *Service) Update(userID int64, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}

	if dto.Email != nil && *dto.Email != u.Email {
		if existing, err := s.repo.GetByEmail(*dto.Email); err == nil && existing != nil {
			return nil, internal.ErrEmailTaken
		}
		u.Email = *dto.Email
	}
	if dto.PhoneNumber != nil && *dto.PhoneNumber != u.PhoneNumber {
		if existing, err := s.repo.GetByPhone(*dto.PhoneNumber); err == nil && existing != nil {
			return nil, internal.ErrPhoneTaken
		}
		u.PhoneNumber = *dto.PhoneNumber
	}
	if dto.Name != nil {
		u.Name = *dto.Name
	}
	if dto.Role != nil {
		u.Role = *dto.Role
		u.IsSuperuser = *dto.Role == auth.RoleAdmin
	}
	if dto.IsActive != nil {
		u.IsActive = *dto.IsActive
	}
	if dto.Password != nil {
		hash, err := auth.HashPassword(*dto.Password, s.bcryptCost)
		if err != nil {
			return nil, internal.NewInternalError("failed to hash password", err)
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Update(u); err != nil {
		return nil, internal.NewInternalError("failed to update user", err)
	}

	s.logger.Info("user updated", "user_id", u.ID)
	return u, nil
}

// Deactivate soft-deletes a user by clearing the active flag. The row
// stays to preserve task history.
func (s *Service) Deactivate(userID int64) error {
	u, err := s.repo.GetByID(userID)
	if err != nil {
		return err
	}

	if !u.IsActive {
		return nil
	}

	u.IsActive = false
	if err := s.repo.Update(u); err != nil {
		return internal.NewInternalError("failed to deactivate user", err)
	}

	s.logger.Info("user deactivated", "user_id", u.ID)
	return nil
}
