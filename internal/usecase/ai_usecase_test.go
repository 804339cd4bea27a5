package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
	"career-guide/internal/infrastructure/llm"
	"career-guide/internal/usecase/ai"

	"github.com/google/uuid"
)

type aiFixture struct {
	uc       *AI
	gen      *fakeGenerator
	profiles *fakeProfileRepo
	jobs     *fakeJobRepo
	roadmaps *fakeRoadmapRepo
	userID   uuid.UUID
}

func newAIFixture(withProfile bool) *aiFixture {
	f := &aiFixture{
		gen:      &fakeGenerator{},
		profiles: newFakeProfileRepo(),
		jobs:     &fakeJobRepo{},
		roadmaps: newFakeRoadmapRepo(),
		userID:   uuid.New(),
	}
	if withProfile {
		f.profiles.byUser[f.userID] = reactProfile(f.userID)
	}
	f.uc = NewAIUsecase(f.gen, NewProfileUsecase(f.profiles, nil, nil), f.jobs, f.roadmaps, matching.NewEngine(matching.DefaultWeightSet()), nil)
	return f
}

func TestAI_NotConfigured(t *testing.T) {
	f := newAIFixture(true)
	uc := NewAIUsecase(nil, NewProfileUsecase(f.profiles, nil, nil), f.jobs, f.roadmaps, matching.NewEngine(matching.DefaultWeightSet()), nil)
	if _, err := uc.Chat(context.Background(), f.userID, []ai.ChatMessage{{Role: "user", Text: "hi"}}); !errors.Is(err, ErrUnavailable) {
		t.Fatalf("expected ErrUnavailable, got %v", err)
	}
}

func TestAI_ParseCV_MergesIntoNewProfile(t *testing.T) {
	f := newAIFixture(false)
	f.gen.reply = "```json\n{\"skills\":[\"Go\",\"Docker\"],\"targetRoles\":[\"Backend Engineer\"],\"education\":[{\"fieldOfStudy\":\"Computer Science\",\"startYear\":\"2019\"}],\"experienceLevel\":\"junior\",\"availability\":\"student\"}\n```"

	p, err := f.uc.ParseCV(context.Background(), f.userID, "Go developer with Docker experience")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(p.Skills) != 2 || p.Skills[0] != "go" {
		t.Fatalf("unexpected skills %v", p.Skills)
	}
	if p.CVText != "Go developer with Docker experience" {
		t.Fatalf("expected cv text to be stored")
	}
	if p.Availability != profile.AvailabilityStudent || p.Education[0].StartYear != 2019 {
		t.Fatalf("unexpected profile %+v", p)
	}
	if !strings.Contains(f.gen.prompts[0], "Go developer with Docker experience") {
		t.Fatalf("expected cv text in prompt")
	}
}

func TestAI_ParseCV_InvalidJSON(t *testing.T) {
	f := newAIFixture(true)
	f.gen.reply = "sorry, I cannot help with that"

	_, err := f.uc.ParseCV(context.Background(), f.userID, "cv")
	var decErr *llm.DecodeError
	if !errors.As(err, &decErr) || !errors.Is(err, llm.ErrInvalidJSON) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if decErr.Raw != f.gen.reply {
		t.Fatalf("expected raw reply to be kept, got %q", decErr.Raw)
	}
}

func TestAI_ParseCVDocument(t *testing.T) {
	f := newAIFixture(true)
	f.gen.reply = `{"skills":["sql"]}`

	if _, err := f.uc.ParseCVDocument(context.Background(), f.userID, "cv.png", "image/png", []byte{1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	big := make([]byte, MaxDocumentSize+1)
	if _, err := f.uc.ParseCVDocument(context.Background(), f.userID, "cv.txt", "text/plain", big); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("expected ErrTooLarge, got %v", err)
	}
	p, err := f.uc.ParseCVDocument(context.Background(), f.userID, "cv.txt", "", []byte("SQL analyst"))
	if err != nil || p.CVText != "SQL analyst" {
		t.Fatalf("unexpected result %q err=%v", p.CVText, err)
	}
}

func TestAI_Compare(t *testing.T) {
	f := newAIFixture(true)
	j := job.New(job.Job{Title: "Frontend Dev", Company: "Acme", Location: "Remote", RequiredSkills: []string{"react", "vue"}})
	f.jobs.items = []job.Job{j}
	f.gen.reply = `{"matchScore": 72, "skillMatch": ["react"], "missingSkills": ["vue"]}`

	res, err := f.uc.Compare(context.Background(), f.userID, j.ID)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if res.Comparison.MatchScore != 72 || res.Comparison.MissingSkills[0] != "vue" {
		t.Fatalf("unexpected comparison %+v", res.Comparison)
	}
	if res.Match.Score != 10 || len(res.Match.Matches) != 1 {
		t.Fatalf("unexpected deterministic match %+v", res.Match)
	}

	if _, err := f.uc.Compare(context.Background(), f.userID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := f.uc.Compare(context.Background(), uuid.New(), j.ID); !errors.Is(err, ErrNoProfile) {
		t.Fatalf("expected ErrNoProfile, got %v", err)
	}

	f.gen.reply = `{"skillMatch": []}`
	if _, err := f.uc.Compare(context.Background(), f.userID, j.ID); !errors.Is(err, llm.ErrInvalidJSON) {
		t.Fatalf("expected schema failure, got %v", err)
	}
}

func TestAI_RoadmapLifecycle(t *testing.T) {
	f := newAIFixture(true)
	f.gen.reply = `{"jobTitle":"Frontend Developer","totalDurationWeeks":8,"phases":[{"phaseNumber":1,"title":"Basics","startWeek":1,"endWeek":4,"isCompleted":true},{"phaseNumber":2,"title":"Projects","startWeek":5,"endWeek":8}]}`

	if _, err := f.uc.GenerateRoadmap(context.Background(), f.userID, " ", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	rm, err := f.uc.GenerateRoadmap(context.Background(), f.userID, "Frontend Developer", "2 months")
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if len(rm.Content.Phases) != 2 || rm.Content.Phases[0].IsCompleted {
		t.Fatalf("expected fresh phases, got %+v", rm.Content.Phases)
	}
	if !strings.Contains(f.gen.prompts[0], "2 months") {
		t.Fatalf("expected timeframe in prompt")
	}

	list, _ := f.uc.Roadmaps(context.Background(), f.userID)
	if len(list) != 1 {
		t.Fatalf("expected 1 roadmap, got %d", len(list))
	}

	updated, err := f.uc.CompletePhase(context.Background(), f.userID, rm.ID, 2, 150)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if !updated.Content.Phases[1].IsCompleted || updated.Content.Phases[1].Score != 100 || updated.Progress() != 50 {
		t.Fatalf("unexpected phase state %+v", updated.Content.Phases[1])
	}
	if _, err := f.uc.CompletePhase(context.Background(), f.userID, rm.ID, 9, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown phase, got %v", err)
	}
	if _, err := f.uc.Roadmap(context.Background(), uuid.New(), rm.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("roadmaps must be scoped to their owner, got %v", err)
	}
}

func TestAI_Chat(t *testing.T) {
	f := newAIFixture(true)
	f.gen.reply = "```\nTry building a small React portfolio site.\n```"

	conv := make([]ai.ChatMessage, 30)
	for i := range conv {
		conv[i] = ai.ChatMessage{Role: "user", Text: "msg"}
	}
	reply, err := f.uc.Chat(context.Background(), f.userID, conv)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if reply != "Try building a small React portfolio site." {
		t.Fatalf("unexpected reply %q", reply)
	}

	if _, err := f.uc.Chat(context.Background(), f.userID, nil); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	f.gen.err = errors.New("quota exceeded")
	if _, err := f.uc.Chat(context.Background(), f.userID, conv); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}
