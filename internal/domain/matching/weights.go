package matching

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Weights holds every constant the scorer uses. A zero field contributes nothing.
type Weights struct {
	SkillWeight       int `yaml:"skill_weight"`
	TrackBonus        int `yaml:"track_bonus"`
	ExperiencePenalty int `yaml:"experience_penalty"`
	// ExperienceGap is the largest tolerated rank gap before the penalty applies.
	ExperienceGap int `yaml:"experience_gap"`

	ImprovementSkillWeight int `yaml:"improvement_skill_weight"`
	NewSkillWeight         int `yaml:"new_skill_weight"`
	CareerMatchBonus       int `yaml:"career_match_bonus"`
	EducationMatchBonus    int `yaml:"education_match_bonus"`
	ProjectSkillWeight     int `yaml:"project_skill_weight"`
	BudgetBonus            int `yaml:"budget_bonus"`
	NewSkillsShown         int `yaml:"new_skills_shown"`

	// Clamp bounds the final score to [0, 100].
	Clamp bool `yaml:"clamp"`
}

func DefaultJobWeights() Weights {
	return Weights{
		SkillWeight:       10,
		TrackBonus:        5,
		ExperiencePenalty: 5,
		ExperienceGap:     1,
	}
}

func DefaultResourceWeights() Weights {
	return Weights{
		ImprovementSkillWeight: 8,
		NewSkillWeight:         5,
		CareerMatchBonus:       12,
		EducationMatchBonus:    10,
		ProjectSkillWeight:     6,
		BudgetBonus:            5,
		NewSkillsShown:         5,
		Clamp:                  true,
	}
}

// WeightSet groups the two scoring profiles.
type WeightSet struct {
	Job      Weights `yaml:"job"`
	Resource Weights `yaml:"resource"`
}

func DefaultWeightSet() WeightSet {
	return WeightSet{Job: DefaultJobWeights(), Resource: DefaultResourceWeights()}
}

// LoadWeights overlays the YAML file at path onto the defaults. Keys absent
// from the file keep their default value. An empty path returns the defaults.
func LoadWeights(path string) (WeightSet, error) {
	ws := DefaultWeightSet()
	if path == "" {
		return ws, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return ws, fmt.Errorf("read weights file: %w", err)
	}
	if err := yaml.Unmarshal(b, &ws); err != nil {
		return DefaultWeightSet(), fmt.Errorf("parse weights file: %w", err)
	}
	return ws, nil
}
