// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"vidtube/internal/domain/entity"
	"vidtube/internal/domain/service"

	"github.com/google/uuid"
)

// LoginInput defines the data required for a user to log in.
// Either Email or Username identifies the account.
type LoginInput struct {
	Email    string
	Username string
	Password string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	User   *entity.User
	Tokens *service.TokenPair
}

// ChangePasswordInput defines the data required to replace a password.
type ChangePasswordInput struct {
	OldPassword string
	NewPassword string
}

// SessionUsecase manages the refresh-token session of a user.
type SessionUsecase interface {
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)
	Refresh(ctx context.Context, refreshToken string) (*service.TokenPair, error)
	Logout(ctx context.Context, userID uuid.UUID) error
	ChangePassword(ctx context.Context, userID uuid.UUID, input ChangePasswordInput) error
}
