package storage

import (
	"context"

	"github.com/iudanet/storefront/internal/models"
)

//go:generate moq -out user_mock.go . UserStorage

// UserStorage defines interface for user data persistence
type UserStorage interface {
	// CreateUser creates a new user in the storage
	// Returns ErrUserAlreadyExists if email or username is taken
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves user by email (case-insensitive)
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves user by ID
	// Returns ErrUserNotFound if user doesn't exist
	GetUserByID(ctx context.Context, userID string) (*models.User, error)

	// UpdateProfile updates full name and avatar
	// Returns ErrUserNotFound if user doesn't exist
	UpdateProfile(ctx context.Context, user *models.User) error

	// GetUserActivity returns favorites and reviews counters for the profile
	GetUserActivity(ctx context.Context, userID string) (models.UserActivity, error)
}
