package storage

import "errors"

// Common storage errors
var (
	// ErrUserNotFound indicates that user was not found in storage
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists indicates that user with this email or username already exists
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrProductNotFound indicates that product was not found in catalog
	ErrProductNotFound = errors.New("product not found")

	// ErrReviewNotFound indicates that review was not found
	ErrReviewNotFound = errors.New("review not found")
)
