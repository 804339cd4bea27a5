package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/skill"

	"github.com/google/uuid"
)

func strPtr(s string) *string { return &s }

func TestProfileUsecase_CreateAndConflict(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewProfileUsecase(repo, nil, nil)
	userID := uuid.New()
	skills := []string{" Go ", "go", "SQL"}

	p, err := uc.Create(context.Background(), userID, ProfileInput{Skills: &skills, ExperienceLevel: strPtr("junior")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(p.Skills) != 2 || p.ExperienceLevel != skill.Junior || p.Availability != profile.AvailabilityOpenToWork {
		t.Fatalf("profile not normalized: %+v", p)
	}

	if _, err := uc.Create(context.Background(), userID, ProfileInput{}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestProfileUsecase_UpdateRejectsUnknownEnums(t *testing.T) {
	userID := uuid.New()
	uc := NewProfileUsecase(newFakeProfileRepo(profile.New(userID, profile.Profile{})), nil, nil)

	if _, err := uc.Update(context.Background(), userID, ProfileInput{ExperienceLevel: strPtr("guru")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for experience, got %v", err)
	}
	if _, err := uc.Update(context.Background(), userID, ProfileInput{Availability: strPtr("retired")}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for availability, got %v", err)
	}
}

func TestProfileUsecase_UpdateBumpsTimestampAndInvalidates(t *testing.T) {
	userID := uuid.New()
	inv := &fakeInvalidator{}
	uc := NewProfileUsecase(newFakeProfileRepo(profile.New(userID, profile.Profile{Bio: "old"})), inv, nil)
	fixed := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	uc.now = func() time.Time { return fixed }

	roles := []string{"Backend", "backend", " Data "}
	p, err := uc.Update(context.Background(), userID, ProfileInput{TargetRoles: &roles, Availability: strPtr("student")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Bio != "old" {
		t.Fatalf("untouched fields must survive, got bio %q", p.Bio)
	}
	if len(p.TargetRoles) != 3 || p.PreferredTrack() != "Backend" {
		t.Fatalf("unexpected roles %v", p.TargetRoles)
	}
	if !p.LastProfileUpdateAt.Equal(fixed) {
		t.Fatalf("expected lastProfileUpdateAt to be bumped")
	}
	if len(inv.users) != 1 || inv.users[0] != userID {
		t.Fatalf("expected recommendations to be invalidated")
	}
}

func TestProfileUsecase_SaveCV(t *testing.T) {
	userID := uuid.New()
	uc := NewProfileUsecase(newFakeProfileRepo(profile.New(userID, profile.Profile{})), nil, nil)

	if _, err := uc.SaveCV(context.Background(), userID, "   "); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	p, err := uc.SaveCV(context.Background(), userID, "  my cv  ")
	if err != nil || p.CVText != "my cv" {
		t.Fatalf("expected cv saved, got %q err=%v", p.CVText, err)
	}
	if _, err := uc.SaveCV(context.Background(), uuid.New(), "cv"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestProfileUsecase_MergeCreatesMissingProfile(t *testing.T) {
	repo := newFakeProfileRepo()
	uc := NewProfileUsecase(repo, nil, nil)
	userID := uuid.New()
	skills := []string{"React"}

	p, err := uc.Merge(context.Background(), userID, ProfileInput{Skills: &skills, Availability: strPtr("retired")})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if p.Availability != profile.AvailabilityOpenToWork || p.Skills[0] != "react" {
		t.Fatalf("unexpected merged profile %+v", p)
	}
	if _, ok := repo.byUser[userID]; !ok {
		t.Fatalf("expected profile to be created")
	}
}
