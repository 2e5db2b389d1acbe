package services

import "errors"

// Request-terminal failures. Controllers map these to HTTP status codes;
// anything else is a storage fault and surfaces as a generic 500.
var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrPasswordTooShort   = errors.New("password too short (min 4 chars)")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidGoal        = errors.New("goal values must be positive")
	ErrUnknownBowlSize    = errors.New("unknown bowl size")
	ErrInvalidImage       = errors.New("invalid base64 image")
)
