package resource

import (
	"errors"
	"strings"
	"time"

	"career-guide/internal/domain/skill"

	"github.com/google/uuid"
)

var (
	ErrNotFound  = errors.New("resource not found")
	ErrDuplicate = errors.New("resource already exists")
)

type Cost string

const (
	CostFree  Cost = "Free"
	CostPaid  Cost = "Paid"
	CostMixed Cost = "Mixed"
)

func ParseCost(s string) (Cost, bool) {
	s = strings.TrimSpace(s)
	for _, c := range []Cost{CostFree, CostPaid, CostMixed} {
		if strings.EqualFold(string(c), s) {
			return c, true
		}
	}
	return "", false
}

type Resource struct {
	ID            uuid.UUID
	Title         string
	Platform      string
	URL           string
	RelatedSkills []string
	Cost          Cost
	Description   string
	CreatedBy     *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func New(r Resource) Resource {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.Normalize()
	return r
}

func (r *Resource) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Platform = strings.TrimSpace(r.Platform)
	r.URL = strings.TrimSpace(r.URL)
	r.RelatedSkills = skill.Normalize(r.RelatedSkills)
	if c, ok := ParseCost(string(r.Cost)); ok {
		r.Cost = c
	} else {
		r.Cost = CostFree
	}
}

func (r Resource) Validate() error {
	if r.Title == "" || r.URL == "" {
		return errors.New("title and url are required")
	}
	return nil
}

type MarkStatus string

const (
	MarkCompleted MarkStatus = "completed"
	MarkSaved     MarkStatus = "saved"
)

func ParseMarkStatus(s string) (MarkStatus, bool) {
	switch MarkStatus(strings.ToLower(strings.TrimSpace(s))) {
	case MarkCompleted:
		return MarkCompleted, true
	case MarkSaved:
		return MarkSaved, true
	}
	return "", false
}

// Mark records a user's status against a resource. One per (user, resource).
type Mark struct {
	UserID     uuid.UUID
	ResourceID uuid.UUID
	Status     MarkStatus
	UpdatedAt  time.Time
}

type ListFilter struct {
	Skill    string
	Cost     Cost
	Platform string
	Patterns []string
	Limit    int
	Offset   int
}
