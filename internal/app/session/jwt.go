package session

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/agrilease/agrilease/internal/app/domain/user"
)

// JWTValidator signs session records with HS256 and rejects expired or
// tampered tokens on restore. This is the production-shaped replacement for
// StaticValidator.
type JWTValidator struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTValidator creates a validator with the given signing secret and
// session lifetime.
func NewJWTValidator(secret []byte, ttl time.Duration) *JWTValidator {
	return &JWTValidator{secret: secret, ttl: ttl, now: time.Now}
}

type sessionClaims struct {
	Mobile string    `json:"mobile"`
	Role   user.Role `json:"role"`
	jwt.RegisteredClaims
}

// Issue signs a token binding the user id, mobile and role.
func (v *JWTValidator) Issue(u user.User) (string, error) {
	now := v.now()
	claims := sessionClaims{
		Mobile: u.Mobile,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(v.ttl)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return signed, nil
}

// Validate checks signature, expiry and that the token belongs to the
// stored user.
func (v *JWTValidator) Validate(token string, u user.User) error {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return v.secret, nil
	}, jwt.WithTimeFunc(v.now))
	if err != nil {
		return fmt.Errorf("parse session token: %w", err)
	}
	if !parsed.Valid {
		return fmt.Errorf("session token invalid")
	}
	if claims.Subject != u.ID {
		return fmt.Errorf("session token subject %q does not match stored user %q", claims.Subject, u.ID)
	}
	if claims.Mobile != u.Mobile {
		return fmt.Errorf("session token mobile does not match stored user")
	}
	return nil
}
