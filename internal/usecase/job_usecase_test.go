package usecase

import (
	"context"
	"errors"
	"testing"

	"career-guide/internal/domain/job"

	"github.com/google/uuid"
)

func TestJobUsecase_List_InvalidParams(t *testing.T) {
	uc := NewJobUsecase(&fakeJobRepo{}, &fakeApplicationRepo{}, nil, nil, nil)
	if _, err := uc.List(context.Background(), JobListParams{Limit: -1}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative limit, got %v", err)
	}
	if _, err := uc.List(context.Background(), JobListParams{Type: "contract"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown type, got %v", err)
	}
}

func TestJobUsecase_List_Pagination(t *testing.T) {
	repo := &fakeJobRepo{}
	for i := 0; i < 5; i++ {
		repo.items = append(repo.items, job.New(job.Job{Title: "Job", Company: "Acme", Location: "Remote", JobType: job.TypeInternship}))
	}
	uc := NewJobUsecase(repo, &fakeApplicationRepo{}, nil, nil, nil)

	page, err := uc.List(context.Background(), JobListParams{Type: "internship", Limit: 2, Skip: 2})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if page.Total != 5 || len(page.Items) != 2 || !page.HasMore || page.Limit != 2 || page.Skip != 2 {
		t.Fatalf("unexpected page %+v", page)
	}

	last, _ := uc.List(context.Background(), JobListParams{Limit: 2, Skip: 4})
	if last.HasMore || len(last.Items) != 1 {
		t.Fatalf("expected final page, got %+v", last)
	}

	def, _ := uc.List(context.Background(), JobListParams{})
	if def.Limit != defaultPageLimit {
		t.Fatalf("expected default limit %d, got %d", defaultPageLimit, def.Limit)
	}
}

func TestJobUsecase_Create(t *testing.T) {
	repo := &fakeJobRepo{}
	notifier := &fakeNotifier{}
	inv := &fakeInvalidator{}
	uc := NewJobUsecase(repo, &fakeApplicationRepo{}, notifier, inv, nil)
	recruiter := uuid.New()

	if _, err := uc.Create(context.Background(), recruiter, JobInput{Title: "Dev"}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	j, err := uc.Create(context.Background(), recruiter, JobInput{
		Title:          " Go Engineer ",
		Company:        "Acme",
		Location:       "Remote",
		RequiredSkills: []string{"Go", "go", "SQL"},
		JobType:        "part-time",
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if j.Title != "Go Engineer" || j.JobType != job.TypePartTime || len(j.RequiredSkills) != 2 {
		t.Fatalf("job not normalized: %+v", j)
	}
	if j.CreatedBy == nil || *j.CreatedBy != recruiter {
		t.Fatalf("expected creator to be recorded")
	}
	if len(notifier.jobs) != 1 || inv.jobs != 1 {
		t.Fatalf("expected one notification and one invalidation, got %d/%d", len(notifier.jobs), inv.jobs)
	}

	mine, _ := uc.Mine(context.Background(), recruiter)
	if len(mine) != 1 {
		t.Fatalf("expected 1 own job, got %d", len(mine))
	}
}

func TestJobUsecase_CreateDuplicateIsConflict(t *testing.T) {
	notifier := &fakeNotifier{}
	uc := NewJobUsecase(&fakeJobRepo{err: job.ErrDuplicate}, &fakeApplicationRepo{}, notifier, nil, nil)

	_, err := uc.Create(context.Background(), uuid.New(), JobInput{Title: "Backend Developer", Company: "Acme", Location: "Remote"})
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
	if len(notifier.jobs) != 0 {
		t.Fatalf("expected no notification for a rejected job")
	}

	uc = NewJobUsecase(&fakeJobRepo{err: errors.New("connection reset")}, &fakeApplicationRepo{}, nil, nil, nil)
	if _, err := uc.Create(context.Background(), uuid.New(), JobInput{Title: "Dev", Company: "Acme", Location: "Remote"}); !errors.Is(err, ErrInternal) {
		t.Fatalf("expected ErrInternal, got %v", err)
	}
}

func TestJobUsecase_ApplyIsIdempotent(t *testing.T) {
	j := job.New(job.Job{Title: "Dev", Company: "Acme", Location: "Remote"})
	apps := &fakeApplicationRepo{}
	uc := NewJobUsecase(&fakeJobRepo{items: []job.Job{j}}, apps, nil, nil, nil)
	userID := uuid.New()

	first, created, err := uc.Apply(context.Background(), userID, j.ID)
	if err != nil || !created {
		t.Fatalf("expected created application, err=%v", err)
	}
	second, created, err := uc.Apply(context.Background(), userID, j.ID)
	if err != nil || created {
		t.Fatalf("expected existing application, created=%v err=%v", created, err)
	}
	if first.ID != second.ID {
		t.Fatalf("expected same application id")
	}

	list, _ := uc.Applications(context.Background(), userID)
	if len(list) != 1 {
		t.Fatalf("expected 1 application, got %d", len(list))
	}

	if _, _, err := uc.Apply(context.Background(), userID, uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestJobUsecase_Get(t *testing.T) {
	uc := NewJobUsecase(&fakeJobRepo{}, &fakeApplicationRepo{}, nil, nil, nil)
	if _, err := uc.Get(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
