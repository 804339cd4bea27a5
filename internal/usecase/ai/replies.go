package ai

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"career-guide/internal/domain/profile"
)

// Year accepts a year written as a JSON number or a string. Anything that is
// not a whole number decodes to 0.
type Year int

func (y *Year) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*y = 0
		return nil
	}
	s := strings.Trim(string(b), `"`)
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		*y = 0
		return nil
	}
	*y = Year(n)
	return nil
}

type ParsedEducation struct {
	Institution  string `json:"institution"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldOfStudy"`
	StartYear    Year   `json:"startYear"`
	EndYear      Year   `json:"endYear"`
	Grade        string `json:"grade"`
}

// ParsedCV is the profile extracted from a CV.
type ParsedCV struct {
	Skills          []string           `json:"skills"`
	Education       []ParsedEducation  `json:"education"`
	Projects        []profile.Project  `json:"projects"`
	Languages       []profile.Language `json:"languages"`
	Address         *profile.Address   `json:"address"`
	Bio             string             `json:"bio"`
	Headline        string             `json:"headline"`
	TargetRoles     []string           `json:"targetRoles"`
	ExperienceLevel string             `json:"experienceLevel"`
	Availability    string             `json:"availability"`
}

func (p ParsedCV) ProfileEducation() []profile.Education {
	out := make([]profile.Education, 0, len(p.Education))
	for _, e := range p.Education {
		out = append(out, profile.Education{
			Institution:  e.Institution,
			Degree:       e.Degree,
			FieldOfStudy: e.FieldOfStudy,
			StartYear:    int(e.StartYear),
			EndYear:      int(e.EndYear),
			Grade:        e.Grade,
		})
	}
	return out
}

type SkillsRadar struct {
	Labels []string  `json:"labels"`
	User   []float64 `json:"user"`
	Job    []float64 `json:"job"`
}

type GapBar struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

type Charts struct {
	SkillsRadar SkillsRadar `json:"skillsRadar"`
	GapBar      GapBar      `json:"gapBar"`
}

type Comparison struct {
	MatchScore     float64  `json:"matchScore"`
	SkillMatch     []string `json:"skillMatch"`
	MissingSkills  []string `json:"missingSkills"`
	ExperienceNote string   `json:"experienceNote"`
	Strengths      []string `json:"strengths"`
	Weaknesses     []string `json:"weaknesses"`
	FitSummary     string   `json:"fitSummary"`
	Charts         Charts   `json:"charts"`
}

// ChatMessage is one turn of a conversation with the assistant.
type ChatMessage struct {
	Role string `json:"role"`
	Text string `json:"text"`
}

// MaxChatHistory is how many of the latest messages are sent to the model.
const MaxChatHistory = 20

func LastMessages(conv []ChatMessage) []ChatMessage {
	if len(conv) <= MaxChatHistory {
		return conv
	}
	return conv[len(conv)-MaxChatHistory:]
}

// MustJSON renders v for embedding in a prompt.
func MustJSON(v any) string {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
