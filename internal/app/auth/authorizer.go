package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"

	"github.com/mmsswimming/go_academy_backend/internal/domain/user"
)

var (
	ErrTokenInvalid = errors.New("invalid or expired token")
)

// Authorizer hashes passwords and issues HS256 bearer tokens carrying
// {id, email, role}. The secret comes from configuration; the shipped
// default is a development placeholder only.
type Authorizer struct {
	Cost     int
	Secret   string
	TokenTTL time.Duration
}

func (a *Authorizer) Hash(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), a.Cost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

// Verify reports the same error for a mismatched password as login does for
// an unknown email, so callers cannot learn which part was wrong.
func (a *Authorizer) Verify(passwordHash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password)); err != nil {
		return user.ErrInvalidCredentials
	}
	return nil
}

func (a *Authorizer) GenerateToken(u *user.User) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"id":    u.ID,
		"email": u.Email,
		"role":  u.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(a.TokenTTL).Unix(),
	})
	return token.SignedString([]byte(a.Secret))
}

// Claims are the decoded token payload attached to the request context for
// downstream handlers.
type Claims struct {
	ID    int
	Email string
	Role  string
}

func (a *Authorizer) ValidateToken(accessToken string) (*Claims, error) {
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(a.Secret), nil
	})
	if err != nil {
		return nil, ErrTokenInvalid
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, ErrTokenInvalid
	}
	email, ok := claims["email"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}
	role, ok := claims["role"].(string)
	if !ok {
		return nil, ErrTokenInvalid
	}

	return &Claims{
		ID:    int(id),
		Email: email,
		Role:  role,
	}, nil
}
