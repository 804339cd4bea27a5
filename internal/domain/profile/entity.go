package profile

import (
	"errors"
	"strings"
	"time"

	"career-guide/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("profile not found")
	ErrAlreadyExists = errors.New("profile already exists")
)

type Availability string

const (
	AvailabilityStudent    Availability = "student"
	AvailabilityEmployed   Availability = "employed"
	AvailabilityUnemployed Availability = "unemployed"
	AvailabilityLooking    Availability = "looking"
	AvailabilityOpenToWork Availability = "open_to_work"
	AvailabilityNotLooking Availability = "not_looking"
)

var availabilities = []Availability{
	AvailabilityStudent,
	AvailabilityEmployed,
	AvailabilityUnemployed,
	AvailabilityLooking,
	AvailabilityOpenToWork,
	AvailabilityNotLooking,
}

func ParseAvailability(s string) (Availability, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for _, a := range availabilities {
		if string(a) == s {
			return a, true
		}
	}
	return "", false
}

type LanguageProficiency string

const (
	ProficiencyBasic          LanguageProficiency = "Basic"
	ProficiencyConversational LanguageProficiency = "Conversational"
	ProficiencyFluent         LanguageProficiency = "Fluent"
	ProficiencyNative         LanguageProficiency = "Native"
)

type Education struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartYear    int    `json:"startYear,omitempty"`
	EndYear      int    `json:"endYear,omitempty"`
	Grade        string `json:"grade"`
}

type Project struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Link        string   `json:"link"`
	TechStack   []string `json:"techStack"`
	StartDate   string   `json:"startDate,omitempty"`
	EndDate     string   `json:"endDate,omitempty"`
	IsOngoing   bool     `json:"isOngoing"`
}

type Language struct {
	Name        string              `json:"name"`
	Proficiency LanguageProficiency `json:"proficiency"`
}

type Address struct {
	Country    string `json:"country"`
	State      string `json:"state"`
	City       string `json:"city"`
	Street     string `json:"street"`
	PostalCode string `json:"postalCode"`
}

type Profile struct {
	ID                  uuid.UUID
	UserID              uuid.UUID
	Skills              []string
	TargetRoles         []string
	ExperienceLevel     skill.ExperienceLevel
	Availability        Availability
	Education           []Education
	Projects            []Project
	Languages           []Language
	Address             Address
	CVText              string
	Bio                 string
	Headline            string
	IsPublic            bool
	LastProfileUpdateAt time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// New builds a normalized profile for userID.
func New(userID uuid.UUID, p Profile) Profile {
	p.UserID = userID
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	p.Normalize()
	return p
}

// Normalize applies the write-time rules: skills and project tech stacks are
// lowercased and de-duplicated, target roles are trimmed and de-duplicated,
// enums fall back to their defaults.
func (p *Profile) Normalize() {
	p.Skills = skill.Normalize(p.Skills)
	p.TargetRoles = skill.Dedupe(p.TargetRoles)
	p.ExperienceLevel = skill.ParseExperienceLevel(string(p.ExperienceLevel))
	if a, ok := ParseAvailability(string(p.Availability)); ok {
		p.Availability = a
	} else {
		p.Availability = AvailabilityOpenToWork
	}

	if p.Education == nil {
		p.Education = []Education{}
	}
	for i := range p.Education {
		e := &p.Education[i]
		e.Institution = strings.TrimSpace(e.Institution)
		e.Degree = strings.TrimSpace(e.Degree)
		e.FieldOfStudy = strings.TrimSpace(e.FieldOfStudy)
		e.Grade = strings.TrimSpace(e.Grade)
	}

	projects := make([]Project, 0, len(p.Projects))
	for _, pr := range p.Projects {
		pr.Title = strings.TrimSpace(pr.Title)
		if pr.Title == "" {
			continue
		}
		pr.TechStack = skill.Normalize(pr.TechStack)
		projects = append(projects, pr)
	}
	p.Projects = projects

	langs := make([]Language, 0, len(p.Languages))
	for _, l := range p.Languages {
		l.Name = strings.TrimSpace(l.Name)
		if l.Name == "" {
			continue
		}
		switch l.Proficiency {
		case ProficiencyBasic, ProficiencyConversational, ProficiencyFluent, ProficiencyNative:
		default:
			l.Proficiency = ProficiencyConversational
		}
		langs = append(langs, l)
	}
	p.Languages = langs

	p.Address.Country = strings.TrimSpace(p.Address.Country)
	p.Address.State = strings.TrimSpace(p.Address.State)
	p.Address.City = strings.TrimSpace(p.Address.City)
	p.Address.Street = strings.TrimSpace(p.Address.Street)
	p.Address.PostalCode = strings.TrimSpace(p.Address.PostalCode)
}

// PreferredTrack is the first target role, or "" when none is set.
func (p Profile) PreferredTrack() string {
	if len(p.TargetRoles) == 0 {
		return ""
	}
	return p.TargetRoles[0]
}

func (p Profile) FieldsOfStudy() []string {
	out := make([]string, 0, len(p.Education))
	for _, e := range p.Education {
		if e.FieldOfStudy != "" {
			out = append(out, e.FieldOfStudy)
		}
	}
	return out
}

func (p Profile) ProjectTechStack() []string {
	var all []string
	for _, pr := range p.Projects {
		all = append(all, pr.TechStack...)
	}
	return skill.Normalize(all)
}
