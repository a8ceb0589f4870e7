package model

import "errors"

// Common errors used across the application
var (
	// User errors
	ErrUserNotFound = errors.New("user not found")
	ErrHandleTaken  = errors.New("handle is already registered")

	// Score errors
	ErrScoreNotFound = errors.New("score not found")
	ErrNotScoreOwner = errors.New("score is owned by another handle")
	ErrInvalidScore  = errors.New("score must be a non-negative number")
)
