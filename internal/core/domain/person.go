package domain

import (
	"errors"
	"time"
)

var ErrPersonNotFound = errors.New("person not found")
var ErrLoginTaken = errors.New("login already taken")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid token")
var ErrTokenExpired = errors.New("token expired")
var ErrTooManyAttempts = errors.New("too many login attempts")

// Person is the stored account record. PasswordHash is always the output of
// the password hasher, never raw input, and is never serialized to clients.
type Person struct {
	ID           int64     `json:"id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
