package matching

import (
	"strings"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/resource"
	"career-guide/internal/domain/skill"
)

// User is the scoring view of a profile. Missing fields are neutral.
type User struct {
	Skills           []string
	PreferredTrack   string
	ExperienceLevel  skill.ExperienceLevel
	TargetRoles      []string
	FieldsOfStudy    []string
	ProjectTechStack []string
	Availability     profile.Availability
	City             string
}

func UserFromProfile(p profile.Profile) *User {
	return &User{
		Skills:           p.Skills,
		PreferredTrack:   p.PreferredTrack(),
		ExperienceLevel:  p.ExperienceLevel,
		TargetRoles:      p.TargetRoles,
		FieldsOfStudy:    p.FieldsOfStudy(),
		ProjectTechStack: p.ProjectTechStack(),
		Availability:     p.Availability,
		City:             p.Address.City,
	}
}

type JobMatch struct {
	Score   int      `json:"score"`
	Matches []string `json:"matches"`
	// TrackMatch and ExperienceGap explain the non-skill terms.
	TrackMatch    bool `json:"trackMatch"`
	ExperienceGap int  `json:"experienceGap"`
}

type ResourceDetails struct {
	ImprovementSkills []string `json:"improvementSkills"`
	NewSkills         []string `json:"newSkills"`
	CareerMatch       bool     `json:"careerMatch"`
	EducationMatch    bool     `json:"educationMatch"`
	ProjectMatch      bool     `json:"projectMatch"`
	FreeForBudget     bool     `json:"freeForBudget"`
}

type ResourceMatch struct {
	Score   int             `json:"score"`
	Details ResourceDetails `json:"details"`
}

type Engine struct {
	weights WeightSet
}

func NewEngine(ws WeightSet) *Engine {
	return &Engine{weights: ws}
}

func (e *Engine) Weights() WeightSet { return e.weights }

func (e *Engine) ScoreJob(j job.Job, u User) JobMatch {
	w := e.weights.Job
	userSkills := skill.NewSet(u.Skills)

	matches := make([]string, 0)
	for _, s := range skill.Normalize(j.RequiredSkills) {
		if userSkills.Has(s) {
			matches = append(matches, s)
		}
	}

	score := w.SkillWeight * len(matches)

	res := JobMatch{Matches: matches}
	track := strings.TrimSpace(j.Track)
	pref := strings.TrimSpace(u.PreferredTrack)
	if track != "" && pref != "" && strings.EqualFold(track, pref) {
		score += w.TrackBonus
		res.TrackMatch = true
	}

	res.ExperienceGap = j.RecommendedExperience.Rank() - u.ExperienceLevel.Rank()
	if res.ExperienceGap > w.ExperienceGap {
		score -= w.ExperiencePenalty
	}

	res.Score = clamp(score, w.Clamp)
	return res
}

func (e *Engine) ScoreResource(r resource.Resource, u User) ResourceMatch {
	w := e.weights.Resource
	userSkills := skill.NewSet(u.Skills)
	resSkills := skill.Normalize(r.RelatedSkills)

	d := ResourceDetails{ImprovementSkills: make([]string, 0), NewSkills: make([]string, 0)}
	var newSkills []string
	for _, s := range resSkills {
		if userSkills.Has(s) {
			d.ImprovementSkills = append(d.ImprovementSkills, s)
		} else {
			newSkills = append(newSkills, s)
		}
	}
	score := w.ImprovementSkillWeight*len(d.ImprovementSkills) + w.NewSkillWeight*len(newSkills)
	shown := len(newSkills)
	if w.NewSkillsShown > 0 && shown > w.NewSkillsShown {
		shown = w.NewSkillsShown
	}
	d.NewSkills = append(d.NewSkills, newSkills[:shown]...)

	title := strings.ToLower(r.Title)
	desc := strings.ToLower(r.Description)

	for _, role := range u.TargetRoles {
		role = strings.ToLower(strings.TrimSpace(role))
		if role == "" {
			continue
		}
		if strings.Contains(title, role) || strings.Contains(desc, role) || containsAny(role, resSkills) {
			d.CareerMatch = true
			break
		}
	}
	if d.CareerMatch {
		score += w.CareerMatchBonus
	}

	for _, field := range u.FieldsOfStudy {
		field = strings.ToLower(strings.TrimSpace(field))
		if field == "" {
			continue
		}
		if strings.Contains(title, field) || containsAny(field, resSkills) {
			d.EducationMatch = true
			break
		}
	}
	if d.EducationMatch {
		score += w.EducationMatchBonus
	}

	stack := skill.NewSet(u.ProjectTechStack)
	techMatches := 0
	for _, s := range resSkills {
		if stack.Has(s) {
			techMatches++
		}
	}
	if techMatches > 0 {
		score += w.ProjectSkillWeight * techMatches
		d.ProjectMatch = true
	}

	if (u.Availability == profile.AvailabilityStudent || u.Availability == profile.AvailabilityUnemployed) &&
		r.Cost == resource.CostFree {
		score += w.BudgetBonus
		d.FreeForBudget = true
	}

	return ResourceMatch{Score: clamp(score, w.Clamp), Details: d}
}

// containsAny reports whether s contains any of the needles.
func containsAny(s string, needles []string) bool {
	for _, n := range needles {
		if n != "" && strings.Contains(s, n) {
			return true
		}
	}
	return false
}

func clamp(score int, on bool) int {
	if !on {
		return score
	}
	return max(0, min(100, score))
}
