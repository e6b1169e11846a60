package services

import "errors"

// Error sentinel yang dipetakan ke status HTTP di layer controller.
var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrFileTypeNotAllowed = errors.New("file type not allowed")
)
