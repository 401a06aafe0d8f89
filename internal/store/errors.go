package store

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserNotApproved    = errors.New("user not approved")
	ErrSessionNotFound    = errors.New("session not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrRequestNotFound    = errors.New("registration request not found")
	ErrRequestNotPending  = errors.New("registration request not pending")
	ErrContentNotFound    = errors.New("content not found")
	ErrUnknownContentType = errors.New("unknown content type")
)
