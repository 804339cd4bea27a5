package skill

import "strings"

type ExperienceLevel string

const (
	Fresher ExperienceLevel = "Fresher"
	Junior  ExperienceLevel = "Junior"
	Mid     ExperienceLevel = "Mid"
	Senior  ExperienceLevel = "Senior"
)

var experienceRanks = map[ExperienceLevel]int{
	Fresher: 0,
	Junior:  1,
	Mid:     2,
	Senior:  3,
}

// ParseExperienceLevel matches case-insensitively. Empty or unknown input maps to Fresher.
func ParseExperienceLevel(s string) ExperienceLevel {
	s = strings.TrimSpace(s)
	for lvl := range experienceRanks {
		if strings.EqualFold(string(lvl), s) {
			return lvl
		}
	}
	return Fresher
}

func ValidExperienceLevel(s string) bool {
	s = strings.TrimSpace(s)
	for lvl := range experienceRanks {
		if strings.EqualFold(string(lvl), s) {
			return true
		}
	}
	return false
}

// Rank returns the ordinal of the level, Fresher=0 through Senior=3.
func (l ExperienceLevel) Rank() int {
	return experienceRanks[ParseExperienceLevel(string(l))]
}
