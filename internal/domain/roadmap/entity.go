package roadmap

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound      = errors.New("roadmap not found")
	ErrPhaseNotFound = errors.New("roadmap phase not found")
)

type Phase struct {
	PhaseNumber     int      `json:"phaseNumber"`
	Title           string   `json:"title"`
	StartWeek       int      `json:"startWeek"`
	EndWeek         int      `json:"endWeek"`
	Topics          []string `json:"topics"`
	Technologies    []string `json:"technologies"`
	ProjectIdeas    []string `json:"projectIdeas"`
	ExpectedOutcome string   `json:"expectedOutcome"`
	IsCompleted     bool     `json:"isCompleted"`
	Score           int      `json:"score"`
}

type Overview struct {
	Summary             string   `json:"summary"`
	SkillsToDevelop     []string `json:"skillsToDevelop"`
	TechnologiesToLearn []string `json:"technologiesToLearn"`
	Prerequisites       []string `json:"prerequisites"`
}

type ApplicationGuidance struct {
	RecommendedStartWeek int      `json:"recommendedStartWeek"`
	WhatToHaveReady      []string `json:"whatToHaveReady"`
	HowToApply           []string `json:"howToApply"`
}

type LearningResource struct {
	Title    string `json:"title"`
	Type     string `json:"type"`
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

type ExtraRecommendations struct {
	LearningResources []LearningResource `json:"learningResources"`
	CommonMistakes    []string           `json:"commonMistakes"`
	Motivation        string             `json:"motivation"`
}

// Content is the generated body of a roadmap. Its JSON shape is the one the
// generator is asked to produce.
type Content struct {
	JobTitle             string               `json:"jobTitle"`
	TargetRole           string               `json:"targetRole"`
	TotalDurationWeeks   int                  `json:"totalDurationWeeks"`
	Overview             Overview             `json:"overview"`
	Phases               []Phase              `json:"phases"`
	ApplicationGuidance  ApplicationGuidance  `json:"applicationGuidance"`
	ExtraRecommendations ExtraRecommendations `json:"extraRecommendations"`
}

type Roadmap struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TargetJob string
	Timeframe string
	Content   Content
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CompletePhase marks phase n complete and records its score.
func (r *Roadmap) CompletePhase(n, score int) error {
	for i := range r.Content.Phases {
		if r.Content.Phases[i].PhaseNumber == n {
			r.Content.Phases[i].IsCompleted = true
			if score < 0 {
				score = 0
			}
			if score > 100 {
				score = 100
			}
			r.Content.Phases[i].Score = score
			return nil
		}
	}
	return ErrPhaseNotFound
}

// Progress is the percentage of completed phases.
func (r Roadmap) Progress() int {
	if len(r.Content.Phases) == 0 {
		return 0
	}
	done := 0
	for _, p := range r.Content.Phases {
		if p.IsCompleted {
			done++
		}
	}
	return done * 100 / len(r.Content.Phases)
}
