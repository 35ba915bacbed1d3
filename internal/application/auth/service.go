package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-auth-profile/internal/domain"
	"github.com/go-auth-profile/internal/infrastructure/google"
	"github.com/go-auth-profile/internal/infrastructure/smtp"
	"github.com/go-auth-profile/internal/otp"
	"github.com/go-auth-profile/internal/pkg/id"
)

// RequestOTPMessage is returned for every issuance request, whether or
// not the email belongs to a known user.
const RequestOTPMessage = "If an account exists for that address, a sign-in code has been sent."

type Service interface {
	// IdentitySignIn verifies a Google ID token and returns the matching
	// profile, creating a minimal one on first sign-in.
	IdentitySignIn(ctx context.Context, token string) (*domain.UserProfile, error)
	// RequestOTP issues a sign-in code to a known email. Unknown emails
	// succeed without sending anything.
	RequestOTP(ctx context.Context, email string) error
	// VerifyOTP validates a previously issued code and consumes it.
	VerifyOTP(ctx context.Context, email, code string) (*domain.UserProfile, error)
}

type profileStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	Put(ctx context.Context, u *domain.UserProfile) error
}

type identityVerifier interface {
	Verify(ctx context.Context, token string) (*google.Payload, error)
}

type service struct {
	profileRepo profileStore
	registry    otp.Registry
	mailer      smtp.Mailer
	verifier    identityVerifier
	otpTTL      time.Duration
}

type ServiceDeps struct {
	ProfileRepo profileStore
	Registry    otp.Registry
	Mailer      smtp.Mailer
	Verifier    identityVerifier
	OTPTTL      time.Duration
}

func NewService(deps ServiceDeps) Service {
	return &service{
		profileRepo: deps.ProfileRepo,
		registry:    deps.Registry,
		mailer:      deps.Mailer,
		verifier:    deps.Verifier,
		otpTTL:      deps.OTPTTL,
	}
}

func (s *service) IdentitySignIn(ctx context.Context, token string) (*domain.UserProfile, error) {
	payload, err := s.verifier.Verify(ctx, token)
	if err != nil {
		return nil, err
	}

	u, err := s.profileRepo.GetByEmail(ctx, payload.Email)
	if err == nil {
		// Existing profile is never touched; name is first-write-wins.
		return u, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	now := time.Now().UTC()
	u = &domain.UserProfile{
		UserID:    id.New(),
		Email:     payload.Email,
		Name:      payload.Name,
		GoogleSub: &payload.Sub,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.profileRepo.Put(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) RequestOTP(ctx context.Context, email string) error {
	if email == "" {
		return fmt.Errorf("email required: %w", domain.ErrBadRequest)
	}

	u, err := s.profileRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		// Unknown email: respond exactly as on success, send nothing,
		// store nothing.
		slog.Debug("otp requested for unknown email", "email", email)
		return nil
	}
	if err != nil {
		return err
	}

	secret, err := otp.NewSecret()
	if err != nil {
		return err
	}
	now := time.Now()
	code, err := otp.GenerateCode(secret, now)
	if err != nil {
		return err
	}
	s.registry.Put(email, domain.OTPEntry{
		Email:     email,
		Secret:    secret,
		ExpiresAt: now.Add(s.otpTTL),
	})

	greeting := "Hi"
	if u.Name != "" {
		greeting = "Hi " + u.Name
	}
	body := fmt.Sprintf("%s,\n\nYour sign-in code is %s.\n\nIt is valid for %.0f minutes. If you did not request a code, you can ignore this email.\n",
		greeting, code, s.otpTTL.Minutes())

	if err := s.mailer.SendEmail(u.Email, "Your sign-in code", body); err != nil {
		// The entry stays in the registry; a new request overwrites it.
		return fmt.Errorf("send otp email: %v: %w", err, domain.ErrNotification)
	}
	return nil
}

func (s *service) VerifyOTP(ctx context.Context, email, code string) (*domain.UserProfile, error) {
	if email == "" || code == "" {
		return nil, fmt.Errorf("email and otp required: %w", domain.ErrBadRequest)
	}

	e, ok := s.registry.Get(email)
	if !ok {
		// Covers both never-requested and already-consumed codes.
		return nil, domain.ErrInvalidOTP
	}

	now := time.Now()
	if now.After(e.ExpiresAt) {
		s.registry.Delete(email)
		return nil, domain.ErrExpiredOTP
	}

	match, err := otp.ValidateCode(code, e.Secret, now)
	if err != nil {
		return nil, err
	}
	if !match {
		// Entry is kept so the user can retry until expiry.
		return nil, domain.ErrInvalidOTP
	}
	s.registry.Delete(email)

	u, err := s.profileRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("profile for verified otp: %w", err)
	}
	return u, nil
}
