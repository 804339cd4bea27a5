package usecase

import (
	"context"
	"errors"
	"fmt"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/skill"
	"career-guide/internal/pkg/logger"
	"career-guide/internal/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

type JobListParams struct {
	Track    string
	Location string
	Type     string
	Search   string
	Limit    int
	Skip     int
}

type Page[T any] struct {
	Items   []T
	Total   int
	Limit   int
	Skip    int
	HasMore bool
}

type JobInput struct {
	Title                 string
	Company               string
	Location              string
	RequiredSkills        []string
	RecommendedExperience string
	JobType               string
	Description           string
	Track                 string
	ApplyURL              string
	Tags                  []string
}

type JobUsecase interface {
	List(ctx context.Context, p JobListParams) (Page[job.Job], error)
	Get(ctx context.Context, id uuid.UUID) (job.Job, error)
	Create(ctx context.Context, creator uuid.UUID, in JobInput) (job.Job, error)
	Mine(ctx context.Context, creator uuid.UUID) ([]job.Job, error)
	Apply(ctx context.Context, userID, jobID uuid.UUID) (job.Application, bool, error)
	Applications(ctx context.Context, userID uuid.UUID) ([]job.Application, error)
}

type Jobs struct {
	jobs         job.Repository
	applications job.ApplicationRepository
	notifier     Notifier
	invalidator  catalogueInvalidator
	log          *zap.Logger
}

func NewJobUsecase(jobs job.Repository, applications job.ApplicationRepository, notifier Notifier, invalidator catalogueInvalidator, log *zap.Logger) *Jobs {
	return &Jobs{
		jobs:         jobs,
		applications: applications,
		notifier:     notifier,
		invalidator:  invalidator,
		log:          logger.OrNop(log),
	}
}

func (u *Jobs) List(ctx context.Context, p JobListParams) (Page[job.Job], error) {
	limit, skip, err := pageBounds(p.Limit, p.Skip)
	if err != nil {
		return Page[job.Job]{}, err
	}

	f := job.ListFilter{
		Track:    p.Track,
		Location: p.Location,
		Limit:    limit,
		Offset:   skip,
	}
	if p.Type != "" {
		t, ok := job.ParseType(p.Type)
		if !ok {
			return Page[job.Job]{}, ErrInvalidInput
		}
		f.JobType = t
	}
	q := search.ProcessQuery(p.Search)
	f.Patterns = search.Patterns(p.Search)

	items, total, err := u.jobs.List(ctx, f)
	if err != nil {
		return Page[job.Job]{}, ErrInternal
	}
	items = search.Rank(items, q.Variants, jobDocument)

	return newPage(items, total, limit, skip), nil
}

func (u *Jobs) Get(ctx context.Context, id uuid.UUID) (job.Job, error) {
	j, err := u.jobs.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, job.ErrNotFound) {
			return job.Job{}, ErrNotFound
		}
		return job.Job{}, ErrInternal
	}
	return j, nil
}

func (u *Jobs) Create(ctx context.Context, creator uuid.UUID, in JobInput) (job.Job, error) {
	if creator == uuid.Nil {
		return job.Job{}, ErrUnauthorized
	}
	j := job.New(job.Job{
		Title:                 in.Title,
		Company:               in.Company,
		Location:              in.Location,
		RequiredSkills:        in.RequiredSkills,
		RecommendedExperience: skill.ExperienceLevel(in.RecommendedExperience),
		JobType:               job.Type(in.JobType),
		Description:           in.Description,
		Track:                 in.Track,
		ApplyURL:              in.ApplyURL,
		Tags:                  in.Tags,
		CreatedBy:             &creator,
	})
	if err := j.Validate(); err != nil {
		return job.Job{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := u.jobs.Create(ctx, j)
	if err != nil {
		if errors.Is(err, job.ErrDuplicate) {
			return job.Job{}, ErrConflict
		}
		return job.Job{}, ErrInternal
	}
	u.log.Info("job created", zap.String("job_id", created.ID.String()), zap.String("created_by", creator.String()))

	if u.invalidator != nil {
		u.invalidator.InvalidateJobs(ctx)
	}
	if u.notifier != nil {
		u.notifier.JobCreated(created)
	}
	return created, nil
}

func (u *Jobs) Mine(ctx context.Context, creator uuid.UUID) ([]job.Job, error) {
	items, err := u.jobs.ListByCreator(ctx, creator)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// Apply records an application. Applying twice returns the first
// application with created=false.
func (u *Jobs) Apply(ctx context.Context, userID, jobID uuid.UUID) (job.Application, bool, error) {
	if _, err := u.Get(ctx, jobID); err != nil {
		return job.Application{}, false, err
	}
	a, err := u.applications.Apply(ctx, job.Application{ID: uuid.New(), JobID: jobID, UserID: userID})
	if err != nil {
		if errors.Is(err, job.ErrAlreadyApplied) {
			return a, false, nil
		}
		return job.Application{}, false, ErrInternal
	}
	return a, true, nil
}

func (u *Jobs) Applications(ctx context.Context, userID uuid.UUID) ([]job.Application, error) {
	items, err := u.applications.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func jobDocument(j job.Job) search.Document {
	return search.Document{
		Title:       j.Title,
		Owner:       j.Company,
		Description: j.Description,
		Tags:        append(append([]string{}, j.RequiredSkills...), j.Tags...),
		URL:         j.ApplyURL,
		CreatedAt:   j.CreatedAt,
	}
}

func pageBounds(limit, skip int) (int, int, error) {
	if limit < 0 || skip < 0 {
		return 0, 0, ErrInvalidInput
	}
	if limit == 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return limit, skip, nil
}

func newPage[T any](items []T, total, limit, skip int) Page[T] {
	if items == nil {
		items = []T{}
	}
	return Page[T]{
		Items:   items,
		Total:   total,
		Limit:   limit,
		Skip:    skip,
		HasMore: skip+len(items) < total,
	}
}
