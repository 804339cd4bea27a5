package handler

import (
	"context"
	"errors"
	"fmt"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/matching"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/roadmap"
	"career-guide/internal/usecase"
	"career-guide/internal/usecase/ai"

	"github.com/google/uuid"
)

var errNotImplemented = errors.New("not implemented in fake")

type fakeJobUsecase struct {
	page       usecase.Page[job.Job]
	listParams usecase.JobListParams
	created    bool
	applyErr   error
}

func (f *fakeJobUsecase) List(_ context.Context, p usecase.JobListParams) (usecase.Page[job.Job], error) {
	f.listParams = p
	return f.page, nil
}

func (f *fakeJobUsecase) Get(_ context.Context, id uuid.UUID) (job.Job, error) {
	for _, j := range f.page.Items {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, usecase.ErrNotFound
}

func (f *fakeJobUsecase) Create(_ context.Context, creator uuid.UUID, in usecase.JobInput) (job.Job, error) {
	if in.Title == "" {
		return job.Job{}, fmt.Errorf("%w: title is required", usecase.ErrInvalidInput)
	}
	return job.New(job.Job{Title: in.Title, Company: in.Company, Location: in.Location, CreatedBy: &creator}), nil
}

func (f *fakeJobUsecase) Mine(context.Context, uuid.UUID) ([]job.Job, error) {
	return f.page.Items, nil
}

func (f *fakeJobUsecase) Apply(_ context.Context, userID, jobID uuid.UUID) (job.Application, bool, error) {
	if f.applyErr != nil {
		return job.Application{}, false, f.applyErr
	}
	return job.Application{ID: uuid.New(), JobID: jobID, UserID: userID}, f.created, nil
}

func (f *fakeJobUsecase) Applications(context.Context, uuid.UUID) ([]job.Application, error) {
	return nil, nil
}

type fakeRecommender struct {
	jobs      []matching.RankedJob
	err       error
	lastLimit int
}

func (f *fakeRecommender) RecommendJobs(_ context.Context, _ uuid.UUID, limit int) ([]matching.RankedJob, error) {
	f.lastLimit = limit
	return f.jobs, f.err
}

func (f *fakeRecommender) RecommendResources(_ context.Context, _ uuid.UUID, limit int) ([]matching.RankedResource, error) {
	f.lastLimit = limit
	return nil, f.err
}

type fakeAIUsecase struct {
	err      error
	gotText  string
	gotFile  string
	gotBytes int
}

func (f *fakeAIUsecase) ParseCV(_ context.Context, userID uuid.UUID, cvText string) (profile.Profile, error) {
	f.gotText = cvText
	if f.err != nil {
		return profile.Profile{}, f.err
	}
	return profile.New(userID, profile.Profile{CVText: cvText}), nil
}

func (f *fakeAIUsecase) ParseCVDocument(_ context.Context, userID uuid.UUID, filename, _ string, data []byte) (profile.Profile, error) {
	f.gotFile = filename
	f.gotBytes = len(data)
	if f.err != nil {
		return profile.Profile{}, f.err
	}
	return profile.New(userID, profile.Profile{}), nil
}

func (f *fakeAIUsecase) Compare(context.Context, uuid.UUID, uuid.UUID) (usecase.CompareResult, error) {
	return usecase.CompareResult{}, f.err
}

func (f *fakeAIUsecase) GenerateRoadmap(context.Context, uuid.UUID, string, string) (roadmap.Roadmap, error) {
	return roadmap.Roadmap{}, errNotImplemented
}

func (f *fakeAIUsecase) Roadmaps(context.Context, uuid.UUID) ([]roadmap.Roadmap, error) {
	return nil, errNotImplemented
}

func (f *fakeAIUsecase) Roadmap(context.Context, uuid.UUID, uuid.UUID) (roadmap.Roadmap, error) {
	return roadmap.Roadmap{}, errNotImplemented
}

func (f *fakeAIUsecase) CompletePhase(_ context.Context, _ uuid.UUID, id uuid.UUID, phase, score int) (roadmap.Roadmap, error) {
	rm := roadmap.Roadmap{ID: id, Content: roadmap.Content{Phases: []roadmap.Phase{{PhaseNumber: 1}, {PhaseNumber: 2}}}}
	if err := rm.CompletePhase(phase, score); err != nil {
		return roadmap.Roadmap{}, usecase.ErrNotFound
	}
	return rm, nil
}

func (f *fakeAIUsecase) Chat(context.Context, uuid.UUID, []ai.ChatMessage) (string, error) {
	return "keep going", f.err
}

type fakeUploadUsecase struct {
	called bool
}

func (f *fakeUploadUsecase) Upload(_ context.Context, filename, _ string, _ []byte) (string, error) {
	f.called = true
	return "https://files.example.com/" + filename, nil
}

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(context.Context) error { return f.err }
