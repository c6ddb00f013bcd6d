package services

import (
	"context"

	"github.com/bekzodm/erp-ledger/internal/core/domain"
	"github.com/bekzodm/erp-ledger/internal/dto"
)

// UserReaderSvc defines read operations for user data
type UserReaderSvc interface {
	// GetUserByID retrieves a specific user by ID.
	GetUserByID(ctx context.Context, userID string) (*domain.User, error)

	// ListUsers retrieves all users.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// UserWriterSvc defines write operations for user data
type UserWriterSvc interface {
	// CreateUser registers a new user with a hashed password.
	CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error)

	// UpdateUser updates an existing user's details.
	UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error)

	// DeactivateUser marks a user as inactive.
	DeactivateUser(ctx context.Context, userID string, requestingUserID string) error
}

// AuthSvc defines authentication operations
type AuthSvc interface {
	// Authenticate verifies credentials and returns the user on success.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)

	// GenerateAccessToken issues a signed JWT for an authenticated user.
	GenerateAccessToken(ctx context.Context, user *domain.User) (string, error)
}

// UserSvcFacade combines all user-related service interfaces
type UserSvcFacade interface {
	UserReaderSvc
	UserWriterSvc
	AuthSvc
}
