package profile

import (
	"testing"

	"career-guide/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Normalizes(t *testing.T) {
	uid := uuid.New()
	p := New(uid, Profile{
		Skills:      []string{" React", "react", "SQL"},
		TargetRoles: []string{" Web Developer ", "Web Developer", "Data Analyst"},
		Projects: []Project{
			{Title: "Portfolio", TechStack: []string{"React ", "CSS", "css"}},
			{Title: "   "},
		},
		Languages:    []Language{{Name: "English", Proficiency: "Excellent"}, {Name: ""}},
		Availability: "STUDENT",
	})

	require.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, uid, p.UserID)
	assert.Equal(t, []string{"react", "sql"}, p.Skills)
	assert.Equal(t, []string{"Web Developer", "Data Analyst"}, p.TargetRoles)
	require.Len(t, p.Projects, 1)
	assert.Equal(t, []string{"react", "css"}, p.Projects[0].TechStack)
	require.Len(t, p.Languages, 1)
	assert.Equal(t, ProficiencyConversational, p.Languages[0].Proficiency)
	assert.Equal(t, AvailabilityStudent, p.Availability)
	assert.Equal(t, skill.Fresher, p.ExperienceLevel)
	assert.NotNil(t, p.Education)
}

func TestNormalize_UnknownAvailabilityDefaults(t *testing.T) {
	p := Profile{Availability: "retired"}
	p.Normalize()
	assert.Equal(t, AvailabilityOpenToWork, p.Availability)
}

func TestDerivedFields(t *testing.T) {
	p := New(uuid.New(), Profile{
		TargetRoles: []string{"Backend Developer", "SRE"},
		Education:   []Education{{FieldOfStudy: "Computer Science"}, {Institution: "X"}},
		Projects: []Project{
			{Title: "a", TechStack: []string{"Go", "Docker"}},
			{Title: "b", TechStack: []string{"docker", "Redis"}},
		},
	})
	assert.Equal(t, "Backend Developer", p.PreferredTrack())
	assert.Equal(t, []string{"Computer Science"}, p.FieldsOfStudy())
	assert.Equal(t, []string{"go", "docker", "redis"}, p.ProjectTechStack())
	assert.Equal(t, "", Profile{}.PreferredTrack())
}
