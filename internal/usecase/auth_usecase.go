// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"chalet/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created user together with a freshly issued token.
type RegisterOutput struct {
	User      *entity.User
	Token     string
	ExpiresIn time.Duration
}

// LoginOutput returns the issued token after a successful login.
type LoginOutput struct {
	Token     string
	ExpiresIn time.Duration
}

// AuthUsecase defines the interface for authentication-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates a new account and logs it in. A duplicate email yields
	// a conflict error regardless of concurrent registration attempts.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies the email/password pair and issues a token. Unknown email
	// and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// CurrentUser resolves the authenticated principal back to its full user
	// record, confirming the account still exists.
	CurrentUser(ctx context.Context, principal *entity.Principal) (*entity.User, error)
}
