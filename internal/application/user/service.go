package user

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-auth-profile/internal/domain"
	"github.com/go-auth-profile/internal/pkg/id"
)

// DynamoDB attribute names used in partial update maps. Only these
// fields can ever be assigned through a profile update.
const (
	fieldName           = "name"
	fieldAge            = "age"
	fieldRole           = "role"
	fieldPhone          = "phone"
	fieldExperience     = "experience"
	fieldSpecialization = "specialization"
	fieldSkills         = "skills"
)

type Service interface {
	// CheckEmail reports whether a profile exists for the email.
	// No side effects; unauthenticated by design, which permits email
	// enumeration (documented product decision).
	CheckEmail(ctx context.Context, email string) (*domain.UserProfile, bool, error)
	// GetProfile returns the profile for the email or ErrNotFound.
	GetProfile(ctx context.Context, email string) (*domain.UserProfile, error)
	// UpdateProfile applies an allow-listed partial update, creating a
	// bare profile first if the email is unseen.
	UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (*domain.UserProfile, error)
}

type profileStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.UserProfile, error)
	Get(ctx context.Context, userID string) (*domain.UserProfile, error)
	Put(ctx context.Context, u *domain.UserProfile) error
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type service struct {
	repo profileStore
}

type ServiceDeps struct {
	ProfileRepo profileStore
}

func NewService(deps ServiceDeps) Service {
	return &service{repo: deps.ProfileRepo}
}

func (s *service) CheckEmail(ctx context.Context, email string) (*domain.UserProfile, bool, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return u, true, nil
}

func (s *service) GetProfile(ctx context.Context, email string) (*domain.UserProfile, error) {
	if email == "" {
		return nil, fmt.Errorf("email required: %w", domain.ErrBadRequest)
	}
	return s.repo.GetByEmail(ctx, email)
}

func (s *service) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) (*domain.UserProfile, error) {
	if req.Email == "" {
		return nil, fmt.Errorf("email required: %w", domain.ErrBadRequest)
	}

	u, err := s.repo.GetByEmail(ctx, req.Email)
	if errors.Is(err, domain.ErrNotFound) {
		// Upsert: unseen email gets a bare profile keyed only by email.
		now := time.Now().UTC()
		u = &domain.UserProfile{
			UserID:    id.New(),
			Email:     req.Email,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.repo.Put(ctx, u); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates[fieldName] = *req.Name
	}
	if req.Age != nil {
		updates[fieldAge] = *req.Age
	}
	if req.Role != nil {
		switch *req.Role {
		case domain.RoleStudent, domain.RoleProfessional:
			updates[fieldRole] = *req.Role
		default:
			return nil, fmt.Errorf("invalid role: %w", domain.ErrBadRequest)
		}
	}
	if req.Phone != nil {
		updates[fieldPhone] = *req.Phone
	}
	if req.Experience != nil {
		updates[fieldExperience] = *req.Experience
	}
	if req.Specialization != nil {
		updates[fieldSpecialization] = *req.Specialization
	}
	if req.Skills != nil {
		updates[fieldSkills] = *req.Skills
	}

	// updated_at is refreshed unconditionally, even for an empty field set.
	if err := s.repo.Update(ctx, u.UserID, updates); err != nil {
		return nil, err
	}
	// Re-read by primary key; the email GSI may lag behind the update.
	return s.repo.Get(ctx, u.UserID)
}
