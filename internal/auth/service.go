package auth

import (
	"log/slog"
	"strconv"

	"github.com/Sohail342/task-management/internal"
)

// Service orchestrates signup, signin, token refresh, and the access-gate
// identity resolution.
type Service struct {
	store      IdentityStore
	codec      TokenCodec
	bcryptCost int
	logger     *slog.Logger
}

func NewService(store IdentityStore, codec TokenCodec, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		store:      store,
		codec:      codec,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Signup registers a new user. Email and phone number must both be
// unused; the password is stored only as a bcrypt digest.
func (s *Service) Signup(dto SignupDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, _, err := s.store.GetByEmail(dto.Email); err == nil && existing != nil {
		return nil, internal.ErrEmailTaken
	}
	if existing, err := s.store.GetByPhone(dto.PhoneNumber); err == nil && existing != nil {
		return nil, internal.ErrPhoneTaken
	}

	hash, err := HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		return nil, internal.NewInternalError("failed to hash password", err)
	}

	u := &User{
		Name:        dto.Name,
		Email:       dto.Email,
		PhoneNumber: dto.PhoneNumber,
		Role:        dto.Role,
		IsActive:    true,
		IsSuperuser: dto.Role == RoleAdmin,
	}

	created, err := s.store.Create(u, hash)
	if err != nil {
		return nil, internal.NewInternalError("failed to create user", err)
	}

	s.logger.Info("user registered", "user_id", created.ID, "role", created.Role)
	return created, nil
}

// Signin exchanges credentials for an access/refresh token pair. Unknown
// email and wrong password produce the identical rejection so accounts
// cannot be enumerated.
func (s *Service) Signin(dto LoginDTO) (AuthTokens, error) {
	if err := dto.Validate(); err != nil {
		return AuthTokens{}, err
	}

	u, passwordHash, err := s.store.GetByEmail(dto.Email)
	if err != nil || u == nil {
		return AuthTokens{}, internal.ErrInvalidCredentials
	}

	if !VerifyPassword(passwordHash, dto.Password) {
		return AuthTokens{}, internal.ErrInvalidCredentials
	}

	subject := strconv.FormatInt(u.ID, 10)

	accessToken, err := s.codec.CreateAccessToken(subject)
	if err != nil {
		return AuthTokens{}, internal.NewInternalError("failed to sign access token", err)
	}

	refreshToken, err := s.codec.CreateRefreshToken(subject)
	if err != nil {
		return AuthTokens{}, internal.NewInternalError("failed to sign refresh token", err)
	}

	return AuthTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "bearer",
	}, nil
}

// Refresh mints a new access token from a valid refresh token. The
// subject must still resolve to an existing, active user.
func (s *Service) Refresh(refreshToken string) (AccessTokenResponse, error) {
	claims, err := s.codec.Decode(refreshToken)
	if err != nil {
		return AccessTokenResponse{}, err
	}

	if claims.TokenType != TokenTypeRefresh {
		return AccessTokenResponse{}, internal.ErrInvalidTokenType
	}

	if claims.Subject == "" {
		return AccessTokenResponse{}, internal.ErrInvalidRefresh
	}

	if _, err := s.resolveSubject(claims.Subject); err != nil {
		return AccessTokenResponse{}, err
	}

	accessToken, err := s.codec.CreateAccessToken(claims.Subject)
	if err != nil {
		return AccessTokenResponse{}, internal.NewInternalError("failed to sign access token", err)
	}

	return AccessTokenResponse{AccessToken: accessToken}, nil
}

// Authenticate is the access gate: it decodes a bearer token and resolves
// it to an active user. Refresh tokens are rejected here; they are only
// good for the refresh endpoint.
func (s *Service) Authenticate(tokenString string) (*User, error) {
	claims, err := s.codec.Decode(tokenString)
	if err != nil {
		return nil, err
	}

	if claims.TokenType == TokenTypeRefresh {
		return nil, internal.ErrInvalidTokenType
	}

	return s.resolveSubject(claims.Subject)
}

func (s *Service) resolveSubject(subject string) (*User, error) {
	userID, err := strconv.ParseInt(subject, 10, 64)
	if err != nil || subject == "" {
		return nil, internal.ErrInvalidAuthSubject
	}

	u, err := s.store.GetByID(userID)
	if err != nil || u == nil {
		return nil, internal.ErrAuthUserNotFound
	}

	if !u.IsActive {
		return nil, internal.ErrUserInactive
	}

	return u, nil
}
