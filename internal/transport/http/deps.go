package http

import (
	"context"

	"github.com/go-auth-profile/internal/domain"
	"github.com/go-auth-profile/internal/infrastructure/google"
)

// ProfileRepository is the minimal interface the router requires from the
// user directory.
type ProfileRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	Put(ctx context.Context, u *domain.UserProfile) error
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

// IdentityVerifier is the minimal interface the router requires from the
// ID-token verification service.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (*google.Payload, error)
}
