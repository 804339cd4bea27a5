package skill

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	got := Normalize([]string{" React ", "node", "REACT", "", "  ", "Node"})
	assert.Equal(t, []string{"react", "node"}, got)
}

func TestNormalize_Nil(t *testing.T) {
	got := Normalize(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestDedupe_KeepsCase(t *testing.T) {
	got := Dedupe([]string{" Frontend Developer", "Frontend Developer", "Data Analyst "})
	assert.Equal(t, []string{"Frontend Developer", "Data Analyst"}, got)
}

func TestSet_Has(t *testing.T) {
	s := NewSet([]string{"SQL", " Excel "})
	assert.True(t, s.Has("sql"))
	assert.True(t, s.Has("EXCEL"))
	assert.False(t, s.Has("python"))
}

func TestExperienceLevel(t *testing.T) {
	cases := []struct {
		in   string
		want ExperienceLevel
		rank int
	}{
		{"Fresher", Fresher, 0},
		{"junior", Junior, 1},
		{" MID ", Mid, 2},
		{"Senior", Senior, 3},
		{"", Fresher, 0},
		{"principal", Fresher, 0},
	}
	for _, tc := range cases {
		lvl := ParseExperienceLevel(tc.in)
		assert.Equal(t, tc.want, lvl, tc.in)
		assert.Equal(t, tc.rank, lvl.Rank(), tc.in)
	}
	assert.True(t, ValidExperienceLevel("senior"))
	assert.False(t, ValidExperienceLevel("lead"))
}
