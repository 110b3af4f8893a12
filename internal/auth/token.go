package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Sohail342/task-management/internal"
)

// JWTTokenCodec signs and verifies bearer tokens with a single shared
// HMAC secret. Access and refresh tokens differ only in lifetime and in
// the refresh type claim.
type JWTTokenCodec struct {
	Secret     []byte
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

func NewJWTTokenCodec(secret string, accessTTL, refreshTTL time.Duration) *JWTTokenCodec {
	if accessTTL <= 0 {
		accessTTL = time.Hour
	}
	if refreshTTL <= 0 {
		refreshTTL = 24 * time.Hour
	}
	return &JWTTokenCodec{
		Secret:     []byte(secret),
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}
}

// CreateAccessToken issues a short-lived token carrying only the subject.
func (c *JWTTokenCodec) CreateAccessToken(subject string) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.AccessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.Secret)
}

// CreateRefreshToken issues a longer-lived token tagged with the refresh
// type claim so the two kinds cannot be swapped.
func (c *JWTTokenCodec) CreateRefreshToken(subject string) (string, error) {
	now := time.Now()
	claims := &Claims{
		TokenType: TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.RefreshTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.Secret)
}

// Decode verifies signature and expiry. Every failure collapses into the
// same generic unauthorized error so callers cannot learn which check
// rejected the token.
func (c *JWTTokenCodec) Decode(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.Secret, nil
	})

	if err != nil {
		return nil, internal.ErrCouldNotValidate.WithCause(err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, internal.ErrCouldNotValidate
	}

	return claims, nil
}
