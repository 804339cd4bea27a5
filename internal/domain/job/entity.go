package job

import (
	"errors"
	"strings"
	"time"

	"career-guide/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrNotFound       = errors.New("job not found")
	ErrAlreadyApplied = errors.New("already applied")
	ErrDuplicate      = errors.New("job already exists")
)

type Type string

const (
	TypeInternship Type = "Internship"
	TypePartTime   Type = "Part-time"
	TypeFullTime   Type = "Full-time"
	TypeFreelance  Type = "Freelance"
)

var types = []Type{TypeInternship, TypePartTime, TypeFullTime, TypeFreelance}

// ParseType matches case-insensitively. Unknown values report false.
func ParseType(s string) (Type, bool) {
	s = strings.TrimSpace(s)
	for _, t := range types {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

type Job struct {
	ID                    uuid.UUID
	Title                 string
	Company               string
	Location              string
	RequiredSkills        []string
	RecommendedExperience skill.ExperienceLevel
	JobType               Type
	Description           string
	Track                 string
	ApplyURL              string
	Tags                  []string
	// CreatedBy is nil for seeded postings.
	CreatedBy *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

func New(j Job) Job {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	j.Normalize()
	return j
}

func (j *Job) Normalize() {
	j.Title = strings.TrimSpace(j.Title)
	j.Company = strings.TrimSpace(j.Company)
	j.Location = strings.TrimSpace(j.Location)
	j.Track = strings.TrimSpace(j.Track)
	j.ApplyURL = strings.TrimSpace(j.ApplyURL)
	j.RequiredSkills = skill.Normalize(j.RequiredSkills)
	j.Tags = skill.Dedupe(j.Tags)
	j.RecommendedExperience = skill.ParseExperienceLevel(string(j.RecommendedExperience))
	if t, ok := ParseType(string(j.JobType)); ok {
		j.JobType = t
	} else {
		j.JobType = TypeFullTime
	}
}

func (j Job) Validate() error {
	switch {
	case j.Title == "":
		return errors.New("title is required")
	case j.Company == "":
		return errors.New("company is required")
	case j.Location == "":
		return errors.New("location is required")
	}
	return nil
}

type Application struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	UserID    uuid.UUID
	CreatedAt time.Time
}

type ListFilter struct {
	Track    string
	Location string
	JobType  Type
	// Patterns are ILIKE patterns matched against title, company and description.
	Patterns []string
	Limit    int
	Offset   int
}
