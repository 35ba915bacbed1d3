package google

import (
	"context"
	"fmt"
	"time"

	"github.com/go-auth-profile/internal/domain"
	"google.golang.org/api/idtoken"
)

// Payload holds the verified claims extracted from a Google ID token.
type Payload struct {
	Sub   string
	Email string
	Name  string
}

// Verifier verifies Google ID tokens against a specific client ID.
// Verification calls are bounded by the configured timeout.
type Verifier struct {
	clientID string
	timeout  time.Duration
}

func NewVerifier(clientID string, timeout time.Duration) *Verifier {
	return &Verifier{clientID: clientID, timeout: timeout}
}

// Verify validates the Google ID token and returns the extracted payload.
// Returns a domain.ErrUnauthorized-wrapped error if the token is invalid;
// the underlying verification failure is never surfaced to callers.
func (v *Verifier) Verify(ctx context.Context, token string) (*Payload, error) {
	ctx, cancel := context.WithTimeout(ctx, v.timeout)
	defer cancel()

	p, err := idtoken.Validate(ctx, token, v.clientID)
	if err != nil {
		return nil, fmt.Errorf("invalid google token: %w", domain.ErrUnauthorized)
	}
	email, _ := p.Claims["email"].(string)
	name, _ := p.Claims["name"].(string)
	return &Payload{
		Sub:   p.Subject,
		Email: email,
		Name:  name,
	}, nil
}
