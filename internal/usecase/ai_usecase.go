package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"career-guide/internal/cvtext"
	"career-guide/internal/domain/job"
	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/roadmap"
	"career-guide/internal/infrastructure/llm"
	"career-guide/internal/pkg/logger"
	"career-guide/internal/pkg/metrics"
	"career-guide/internal/usecase/ai"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxDocumentSize caps uploaded CVs and other files.
const MaxDocumentSize = 5 << 20

type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type CompareResult struct {
	Job        job.Job
	Comparison ai.Comparison
	Match      matching.JobMatch
}

type AIUsecase interface {
	ParseCV(ctx context.Context, userID uuid.UUID, cvText string) (profile.Profile, error)
	ParseCVDocument(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (profile.Profile, error)
	Compare(ctx context.Context, userID, jobID uuid.UUID) (CompareResult, error)
	GenerateRoadmap(ctx context.Context, userID uuid.UUID, targetJob, timeframe string) (roadmap.Roadmap, error)
	Roadmaps(ctx context.Context, userID uuid.UUID) ([]roadmap.Roadmap, error)
	Roadmap(ctx context.Context, userID, id uuid.UUID) (roadmap.Roadmap, error)
	CompletePhase(ctx context.Context, userID, id uuid.UUID, phase, score int) (roadmap.Roadmap, error)
	Chat(ctx context.Context, userID uuid.UUID, conversation []ai.ChatMessage) (string, error)
}

type AI struct {
	gen      Generator
	profiles *Profiles
	jobs     job.Repository
	roadmaps roadmap.Repository
	engine   *matching.Engine
	log      *zap.Logger
}

// NewAIUsecase wires the generator backed features. gen may be nil, in which
// case every generating call returns ErrUnavailable.
func NewAIUsecase(gen Generator, profiles *Profiles, jobs job.Repository, roadmaps roadmap.Repository, engine *matching.Engine, log *zap.Logger) *AI {
	return &AI{gen: gen, profiles: profiles, jobs: jobs, roadmaps: roadmaps, engine: engine, log: logger.OrNop(log)}
}

func (u *AI) ParseCV(ctx context.Context, userID uuid.UUID, cvText string) (profile.Profile, error) {
	cvText = strings.TrimSpace(cvText)
	if cvText == "" {
		return profile.Profile{}, ErrInvalidInput
	}

	var parsed ai.ParsedCV
	if err := u.generateJSON(ctx, "cv", ai.CVPrompt(cvText), &parsed, ai.CVSchema); err != nil {
		return profile.Profile{}, err
	}

	in := ProfileInput{CVText: &cvText}
	if parsed.Skills != nil {
		in.Skills = &parsed.Skills
	}
	if parsed.TargetRoles != nil {
		in.TargetRoles = &parsed.TargetRoles
	}
	if parsed.Education != nil {
		edu := parsed.ProfileEducation()
		in.Education = &edu
	}
	if parsed.Projects != nil {
		in.Projects = &parsed.Projects
	}
	if parsed.Languages != nil {
		in.Languages = &parsed.Languages
	}
	if parsed.Address != nil {
		in.Address = parsed.Address
	}
	if parsed.Bio != "" {
		in.Bio = &parsed.Bio
	}
	if parsed.Headline != "" {
		in.Headline = &parsed.Headline
	}
	if parsed.ExperienceLevel != "" {
		in.ExperienceLevel = &parsed.ExperienceLevel
	}
	if parsed.Availability != "" {
		in.Availability = &parsed.Availability
	}

	return u.profiles.Merge(ctx, userID, in)
}

func (u *AI) ParseCVDocument(ctx context.Context, userID uuid.UUID, filename, contentType string, data []byte) (profile.Profile, error) {
	if len(data) > MaxDocumentSize {
		return profile.Profile{}, ErrTooLarge
	}
	text, err := cvtext.Extract(cvtext.DetectMime(filename, contentType), data)
	if err != nil {
		return profile.Profile{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return u.ParseCV(ctx, userID, text)
}

func (u *AI) Compare(ctx context.Context, userID, jobID uuid.UUID) (CompareResult, error) {
	p, err := u.profile(ctx, userID)
	if err != nil {
		return CompareResult{}, err
	}
	j, err := u.jobs.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return CompareResult{}, ErrNotFound
		}
		return CompareResult{}, ErrInternal
	}

	var cmp ai.Comparison
	prompt := ai.ComparePrompt(ai.MustJSON(jobView(j)), ai.MustJSON(profileView(p)))
	if err := u.generateJSON(ctx, "compare", prompt, &cmp, ai.CompareSchema); err != nil {
		return CompareResult{}, err
	}

	return CompareResult{
		Job:        j,
		Comparison: cmp,
		Match:      u.engine.ScoreJob(j, *matching.UserFromProfile(p)),
	}, nil
}

func (u *AI) GenerateRoadmap(ctx context.Context, userID uuid.UUID, targetJob, timeframe string) (roadmap.Roadmap, error) {
	targetJob = strings.TrimSpace(targetJob)
	if targetJob == "" {
		return roadmap.Roadmap{}, ErrInvalidInput
	}
	p, err := u.profile(ctx, userID)
	if err != nil {
		return roadmap.Roadmap{}, err
	}

	var content roadmap.Content
	prompt := ai.RoadmapPrompt(ai.MustJSON(profileView(p)), targetJob, timeframe)
	if err := u.generateJSON(ctx, "roadmap", prompt, &content, ai.RoadmapSchema); err != nil {
		return roadmap.Roadmap{}, err
	}
	for i := range content.Phases {
		content.Phases[i].IsCompleted = false
		content.Phases[i].Score = 0
	}

	created, err := u.roadmaps.Create(ctx, roadmap.Roadmap{
		ID:        uuid.New(),
		UserID:    userID,
		TargetJob: targetJob,
		Timeframe: strings.TrimSpace(timeframe),
		Content:   content,
	})
	if err != nil {
		return roadmap.Roadmap{}, ErrInternal
	}
	return created, nil
}

func (u *AI) Roadmaps(ctx context.Context, userID uuid.UUID) ([]roadmap.Roadmap, error) {
	items, err := u.roadmaps.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func (u *AI) Roadmap(ctx context.Context, userID, id uuid.UUID) (roadmap.Roadmap, error) {
	r, err := u.roadmaps.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, roadmap.ErrNotFound) {
			return roadmap.Roadmap{}, ErrNotFound
		}
		return roadmap.Roadmap{}, ErrInternal
	}
	return r, nil
}

func (u *AI) CompletePhase(ctx context.Context, userID, id uuid.UUID, phase, score int) (roadmap.Roadmap, error) {
	r, err := u.Roadmap(ctx, userID, id)
	if err != nil {
		return roadmap.Roadmap{}, err
	}
	if err := r.CompletePhase(phase, score); err != nil {
		return roadmap.Roadmap{}, ErrNotFound
	}
	if err := u.roadmaps.UpdateContent(ctx, r); err != nil {
		return roadmap.Roadmap{}, ErrInternal
	}
	return r, nil
}

func (u *AI) Chat(ctx context.Context, userID uuid.UUID, conversation []ai.ChatMessage) (string, error) {
	if len(conversation) == 0 {
		return "", ErrInvalidInput
	}
	p, err := u.profile(ctx, userID)
	if err != nil {
		return "", err
	}

	prompt := ai.ChatPrompt(ai.MustJSON(profileView(p)), ai.MustJSON(ai.LastMessages(conversation)))
	raw, err := u.generate(ctx, "chat", prompt)
	if err != nil {
		return "", err
	}
	text := strings.TrimSpace(strings.ReplaceAll(llm.StripCodeFences(raw), "```", ""))
	if text == "" {
		return "", ErrUpstream
	}
	return text, nil
}

func (u *AI) profile(ctx context.Context, userID uuid.UUID) (profile.Profile, error) {
	p, err := u.profiles.Get(ctx, userID)
	if errors.Is(err, ErrNotFound) {
		return profile.Profile{}, ErrNoProfile
	}
	return p, err
}

func (u *AI) generate(ctx context.Context, feature, prompt string) (string, error) {
	if u.gen == nil {
		return "", ErrUnavailable
	}
	start := time.Now()
	raw, err := u.gen.Generate(ctx, prompt)
	metrics.ObserveLLM(feature, start, err)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			return "", ErrUnavailable
		}
		u.log.Warn("generation failed", zap.String("feature", feature), zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return raw, nil
}

// generateJSON returns *llm.DecodeError when the reply cannot be decoded.
func (u *AI) generateJSON(ctx context.Context, feature, prompt string, out any, schema string) error {
	raw, err := u.generate(ctx, feature, prompt)
	if err != nil {
		return err
	}
	if err := llm.DecodeJSON(raw, out, schema); err != nil {
		u.log.Warn("generated reply rejected", zap.String("feature", feature), zap.Error(err))
		return err
	}
	return nil
}

type promptProfile struct {
	Skills          []string            `json:"skills"`
	TargetRoles     []string            `json:"targetRoles"`
	ExperienceLevel string              `json:"experienceLevel"`
	Availability    string              `json:"availability"`
	Education       []profile.Education `json:"education"`
	Projects        []profile.Project   `json:"projects"`
	Languages       []profile.Language  `json:"languages"`
	Headline        string              `json:"headline"`
	Bio             string              `json:"bio"`
	City            string              `json:"city"`
}

func profileView(p profile.Profile) promptProfile {
	return promptProfile{
		Skills:          p.Skills,
		TargetRoles:     p.TargetRoles,
		ExperienceLevel: string(p.ExperienceLevel),
		Availability:    string(p.Availability),
		Education:       p.Education,
		Projects:        p.Projects,
		Languages:       p.Languages,
		Headline:        p.Headline,
		Bio:             p.Bio,
		City:            p.Address.City,
	}
}

type promptJob struct {
	Title                 string   `json:"title"`
	Company               string   `json:"company"`
	Location              string   `json:"location"`
	RequiredSkills        []string `json:"requiredSkills"`
	RecommendedExperience string   `json:"recommendedExperience"`
	JobType               string   `json:"jobType"`
	Track                 string   `json:"track"`
	Description           string   `json:"description"`
}

func jobView(j job.Job) promptJob {
	return promptJob{
		Title:                 j.Title,
		Company:               j.Company,
		Location:              j.Location,
		RequiredSkills:        j.RequiredSkills,
		RecommendedExperience: string(j.RecommendedExperience),
		JobType:               string(j.JobType),
		Track:                 j.Track,
		Description:           j.Description,
	}
}
