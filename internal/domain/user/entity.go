package user

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Type string

const (
	TypeGeneral        Type = "general"
	TypeRecruiter      Type = "recruiter"
	TypeCourseProvider Type = "course_provider"
)

// ParseType returns general for empty input and false for unknown values.
func ParseType(s string) (Type, bool) {
	switch Type(strings.ToLower(strings.TrimSpace(s))) {
	case "", TypeGeneral:
		return TypeGeneral, true
	case TypeRecruiter:
		return TypeRecruiter, true
	case TypeCourseProvider:
		return TypeCourseProvider, true
	}
	return "", false
}

type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	UserType     Type
	IsVerified   bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
