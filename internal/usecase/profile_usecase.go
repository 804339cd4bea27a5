package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/skill"
	"career-guide/internal/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ProfileInput is a partial profile. Nil fields are left untouched.
type ProfileInput struct {
	Skills          *[]string
	TargetRoles     *[]string
	ExperienceLevel *string
	Availability    *string
	Education       *[]profile.Education
	Projects        *[]profile.Project
	Languages       *[]profile.Language
	Address         *profile.Address
	Bio             *string
	Headline        *string
	CVText          *string
	IsPublic        *bool
}

type ProfileUsecase interface {
	Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error)
	Create(ctx context.Context, userID uuid.UUID, in ProfileInput) (profile.Profile, error)
	Update(ctx context.Context, userID uuid.UUID, in ProfileInput) (profile.Profile, error)
	SaveCV(ctx context.Context, userID uuid.UUID, cvText string) (profile.Profile, error)
}

type recommendationInvalidator interface {
	InvalidateUser(ctx context.Context, userID uuid.UUID)
}

type Profiles struct {
	profiles    profile.Repository
	invalidator recommendationInvalidator
	log         *zap.Logger
	now         func() time.Time
}

func NewProfileUsecase(profiles profile.Repository, invalidator recommendationInvalidator, log *zap.Logger) *Profiles {
	return &Profiles{profiles: profiles, invalidator: invalidator, log: logger.OrNop(log), now: time.Now}
}

func (u *Profiles) Get(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	p, err := u.profiles.FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, ErrNotFound
		}
		return profile.Profile{}, ErrInternal
	}
	return p, nil
}

func (u *Profiles) Create(ctx context.Context, userID uuid.UUID, in ProfileInput) (profile.Profile, error) {
	if userID == uuid.Nil {
		return profile.Profile{}, ErrUnauthorized
	}
	if _, err := u.profiles.FindByUserID(ctx, userID); err == nil {
		return profile.Profile{}, ErrConflict
	} else if !errors.Is(err, profile.ErrNotFound) {
		return profile.Profile{}, ErrInternal
	}

	var p profile.Profile
	if err := applyProfileInput(&p, in, true); err != nil {
		return profile.Profile{}, err
	}
	p = profile.New(userID, p)
	p.LastProfileUpdateAt = u.now().UTC()

	created, err := u.profiles.Create(ctx, p)
	if err != nil {
		if errors.Is(err, profile.ErrAlreadyExists) {
			return profile.Profile{}, ErrConflict
		}
		return profile.Profile{}, ErrInternal
	}
	return created, nil
}

func (u *Profiles) Update(ctx context.Context, userID uuid.UUID, in ProfileInput) (profile.Profile, error) {
	p, err := u.Get(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	if err := applyProfileInput(&p, in, true); err != nil {
		return profile.Profile{}, err
	}
	return u.save(ctx, p)
}

func (u *Profiles) SaveCV(ctx context.Context, userID uuid.UUID, cvText string) (profile.Profile, error) {
	cvText = strings.TrimSpace(cvText)
	if cvText == "" {
		return profile.Profile{}, ErrInvalidInput
	}
	p, err := u.Get(ctx, userID)
	if err != nil {
		return profile.Profile{}, err
	}
	p.CVText = cvText
	return u.save(ctx, p)
}

// Merge applies in to the user's profile, creating the profile when it does
// not exist yet. Unknown enum values fall back to their defaults.
func (u *Profiles) Merge(ctx context.Context, userID uuid.UUID, in ProfileInput) (profile.Profile, error) {
	p, err := u.profiles.FindByUserID(ctx, userID)
	switch {
	case err == nil:
		if err := applyProfileInput(&p, in, false); err != nil {
			return profile.Profile{}, err
		}
		return u.save(ctx, p)
	case errors.Is(err, profile.ErrNotFound):
		var fresh profile.Profile
		if err := applyProfileInput(&fresh, in, false); err != nil {
			return profile.Profile{}, err
		}
		fresh = profile.New(userID, fresh)
		fresh.LastProfileUpdateAt = u.now().UTC()
		created, err := u.profiles.Create(ctx, fresh)
		if err != nil {
			return profile.Profile{}, ErrInternal
		}
		u.invalidate(ctx, userID)
		return created, nil
	default:
		return profile.Profile{}, ErrInternal
	}
}

func (u *Profiles) save(ctx context.Context, p profile.Profile) (profile.Profile, error) {
	p.Normalize()
	p.LastProfileUpdateAt = u.now().UTC()
	updated, err := u.profiles.Update(ctx, p)
	if err != nil {
		if errors.Is(err, profile.ErrNotFound) {
			return profile.Profile{}, ErrNotFound
		}
		return profile.Profile{}, ErrInternal
	}
	u.invalidate(ctx, p.UserID)
	return updated, nil
}

func (u *Profiles) invalidate(ctx context.Context, userID uuid.UUID) {
	if u.invalidator == nil {
		return
	}
	u.invalidator.InvalidateUser(ctx, userID)
}

func applyProfileInput(p *profile.Profile, in ProfileInput, strict bool) error {
	if in.ExperienceLevel != nil {
		if strict && *in.ExperienceLevel != "" && !skill.ValidExperienceLevel(*in.ExperienceLevel) {
			return ErrInvalidInput
		}
		p.ExperienceLevel = skill.ParseExperienceLevel(*in.ExperienceLevel)
	}
	if in.Availability != nil {
		a, ok := profile.ParseAvailability(*in.Availability)
		if !ok && strict && strings.TrimSpace(*in.Availability) != "" {
			return ErrInvalidInput
		}
		p.Availability = a
	}
	if in.Skills != nil {
		p.Skills = *in.Skills
	}
	if in.TargetRoles != nil {
		p.TargetRoles = *in.TargetRoles
	}
	if in.Education != nil {
		p.Education = *in.Education
	}
	if in.Projects != nil {
		p.Projects = *in.Projects
	}
	if in.Languages != nil {
		p.Languages = *in.Languages
	}
	if in.Address != nil {
		p.Address = *in.Address
	}
	if in.Bio != nil {
		p.Bio = strings.TrimSpace(*in.Bio)
	}
	if in.Headline != nil {
		p.Headline = strings.TrimSpace(*in.Headline)
	}
	if in.CVText != nil {
		p.CVText = strings.TrimSpace(*in.CVText)
	}
	if in.IsPublic != nil {
		p.IsPublic = *in.IsPublic
	}
	return nil
}
