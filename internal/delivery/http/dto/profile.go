package dto

import (
	"time"

	"career-guide/internal/domain/profile"
	"career-guide/internal/usecase"

	"github.com/google/uuid"
)

// ProfileRequest is used for both create and partial update. Absent fields
// are left untouched on update.
type ProfileRequest struct {
	Skills          *[]string            `json:"skills"`
	TargetRoles     *[]string            `json:"targetRoles"`
	ExperienceLevel *string              `json:"experienceLevel"`
	Availability    *string              `json:"availability"`
	Education       *[]profile.Education `json:"education"`
	Projects        *[]profile.Project   `json:"projects"`
	Languages       *[]profile.Language  `json:"languages"`
	Address         *profile.Address     `json:"address"`
	Bio             *string              `json:"bio"`
	Headline        *string              `json:"headline"`
	IsPublic        *bool                `json:"isPublic"`
}

func (r ProfileRequest) Input() usecase.ProfileInput {
	return usecase.ProfileInput{
		Skills:          r.Skills,
		TargetRoles:     r.TargetRoles,
		ExperienceLevel: r.ExperienceLevel,
		Availability:    r.Availability,
		Education:       r.Education,
		Projects:        r.Projects,
		Languages:       r.Languages,
		Address:         r.Address,
		Bio:             r.Bio,
		Headline:        r.Headline,
		IsPublic:        r.IsPublic,
	}
}

type CVTextRequest struct {
	CVText string `json:"cvText"`
}

type ProfileResponse struct {
	ID                  uuid.UUID           `json:"id"`
	UserID              uuid.UUID           `json:"userId"`
	Skills              []string            `json:"skills"`
	TargetRoles         []string            `json:"targetRoles"`
	ExperienceLevel     string              `json:"experienceLevel"`
	Availability        string              `json:"availability"`
	Education           []profile.Education `json:"education"`
	Projects            []profile.Project   `json:"projects"`
	Languages           []profile.Language  `json:"languages"`
	Address             profile.Address     `json:"address"`
	Bio                 string              `json:"bio"`
	Headline            string              `json:"headline"`
	CVText              string              `json:"cvText"`
	IsPublic            bool                `json:"isPublic"`
	LastProfileUpdateAt time.Time           `json:"lastProfileUpdateAt"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

func FromProfile(p profile.Profile) ProfileResponse {
	return ProfileResponse{
		ID:                  p.ID,
		UserID:              p.UserID,
		Skills:              nonNil(p.Skills),
		TargetRoles:         nonNil(p.TargetRoles),
		ExperienceLevel:     string(p.ExperienceLevel),
		Availability:        string(p.Availability),
		Education:           nonNil(p.Education),
		Projects:            nonNil(p.Projects),
		Languages:           nonNil(p.Languages),
		Address:             p.Address,
		Bio:                 p.Bio,
		Headline:            p.Headline,
		CVText:              p.CVText,
		IsPublic:            p.IsPublic,
		LastProfileUpdateAt: p.LastProfileUpdateAt,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

func nonNil[T any](in []T) []T {
	if in == nil {
		return []T{}
	}
	return in
}
