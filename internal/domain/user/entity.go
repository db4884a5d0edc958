package user

import (
	"errors"
	"regexp"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidEmail = errors.New("invalid email format")
	ErrMissingName  = errors.New("name is required")
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

type Email struct {
	value string
}

func NewEmail(raw string) (Email, error) {
	if !emailPattern.MatchString(raw) {
		return Email{}, ErrInvalidEmail
	}
	return Email{value: raw}, nil
}

func (e Email) String() string { return e.value }

type User struct {
	id             uuid.UUID
	email          Email
	hashedPassword string
	name           string
	isActive       bool
	createdAt      time.Time
}

func NewUser(email Email, hashedPassword, name string) (*User, error) {
	if name == "" {
		return nil, ErrMissingName
	}
	return &User{
		id:             uuid.New(),
		email:          email,
		hashedPassword: hashedPassword,
		name:           name,
		isActive:       true,
	}, nil
}

func ReconstructUser(id uuid.UUID, email Email, hashedPassword, name string, isActive bool, createdAt time.Time) *User {
	return &User{
		id:             id,
		email:          email,
		hashedPassword: hashedPassword,
		name:           name,
		isActive:       isActive,
		createdAt:      createdAt,
	}
}

func (u *User) ID() uuid.UUID          { return u.id }
func (u *User) Email() Email           { return u.email }
func (u *User) HashedPassword() string { return u.hashedPassword }
func (u *User) Name() string           { return u.name }
func (u *User) IsActive() bool         { return u.isActive }
func (u *User) CreatedAt() time.Time   { return u.createdAt }
