package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_NormalizesSkillsAndCost(t *testing.T) {
	r := New(Resource{
		Title:         " SQL for Beginners ",
		URL:           "https://example.com/sql",
		RelatedSkills: []string{"SQL", " sql", "Excel"},
		Cost:          "paid",
	})
	assert.Equal(t, "SQL for Beginners", r.Title)
	assert.Equal(t, []string{"sql", "excel"}, r.RelatedSkills)
	assert.Equal(t, CostPaid, r.Cost)
	assert.NoError(t, r.Validate())

	r = New(Resource{Title: "x"})
	assert.Equal(t, CostFree, r.Cost)
	assert.Error(t, r.Validate())
}

func TestParseMarkStatus(t *testing.T) {
	s, ok := ParseMarkStatus(" Completed")
	assert.True(t, ok)
	assert.Equal(t, MarkCompleted, s)
	_, ok = ParseMarkStatus("archived")
	assert.False(t, ok)
}
