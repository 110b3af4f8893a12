package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

// Role is the closed set of roles a user can hold.
type Role string

const (
	RoleAdmin      Role = "Admin"
	RoleSupervisor Role = "Supervisor"
	RoleEmployee   Role = "Employee"
	RoleCompliance Role = "Compliance"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleSupervisor, RoleEmployee, RoleCompliance:
		return true
	}
	return false
}

// TokenTypeRefresh is the type claim carried only by refresh tokens.
// Access tokens carry no type claim at all.
const TokenTypeRefresh = "refresh"

// User is the identity the access gate attaches to the request context.
type User struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	Role        Role   `json:"role"`
	IsActive    bool   `json:"is_active"`
	IsSuperuser bool   `json:"is_superuser"`
}

func (u *User) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if u.Role == r {
			return true
		}
	}
	return false
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// Claims is the JWT payload shared by access and refresh tokens; the
// TokenType field is only populated on refresh tokens.
type Claims struct {
	TokenType string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type AccessTokenResponse struct {
	AccessToken string `json:"access_token"`
}

// TokenCodec creates and verifies signed bearer tokens.
type TokenCodec interface {
	CreateAccessToken(subject string) (string, error)
	CreateRefreshToken(subject string) (string, error)
	Decode(tokenString string) (*Claims, error)
}

// IdentityStore is the slice of user storage the gate and authenticator need.
type IdentityStore interface {
	GetByEmail(email string) (*User, string, error)
	GetByPhone(phone string) (*User, error)
	GetByID(userID int64) (*User, error)
	Create(u *User, passwordHash string) (*User, error)
}

type ctxKey string

const ContextUserKey ctxKey = "user"

func UserFromContext(ctx context.Context) (*User, bool) {
	u, ok := ctx.Value(ContextUserKey).(*User)
	return u, ok
}

func ContextWithUser(ctx context.Context, u *User) context.Context {
	return context.WithValue(ctx, ContextUserKey, u)
}
