package user

import (
	"errors"
	"fmt"
	"time"

	"github.com/mmsswimming/go_academy_backend/internal/domain"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrEmailDuplicate     = fmt.Errorf("%w: email is not unique", ErrUserExists)
	ErrInvalidCredentials = errors.New("invalid credentials")
)

const (
	RoleMember = "member"
	RoleCoach  = "coach"
	RoleAdmin  = "admin"
)

const (
	EventRegistered = "user.registered"
	EventLogin      = "user.login"
)

type Hasher interface {
	Hash(password string) string
}

type User struct {
	domain.Aggregate `json:"-" diff:"-"`

	ID           int       `json:"id" diff:"-"`
	Email        string    `json:"email" diff:"email"`
	PasswordHash string    `json:"-" diff:"password_hash"`
	Role         string    `json:"role" diff:"role"`
	CreatedAt    time.Time `json:"createdAt" diff:"-"`
}

func New(email, password, role string, hasher Hasher) *User {
	if role == "" {
		role = RoleMember
	}
	u := &User{
		Email:        email,
		PasswordHash: hasher.Hash(password),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	u.PushEvent(RegisteredEvent{
		At:    u.CreatedAt,
		Email: u.Email,
		Role:  u.Role,
	})
	return u
}

// Device describes the client a login came from, parsed out of the request
// user agent. It only travels on login events for audit logging.
type Device struct {
	Browser   string
	OS        string
	Model     string
	IPAddress string
}

type RegisteredEvent struct {
	At    time.Time
	Email string
	Role  string
}

func (e RegisteredEvent) Type() string {
	return EventRegistered
}

func (e RegisteredEvent) PublishedAt() time.Time {
	return e.At
}

type LoginEvent struct {
	At     time.Time
	UserID int
	Email  string
	Device Device
}

func (e LoginEvent) Type() string {
	return EventLogin
}

func (e LoginEvent) PublishedAt() time.Time {
	return e.At
}
