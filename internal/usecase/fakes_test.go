package usecase

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/profile"
	"career-guide/internal/domain/resource"
	"career-guide/internal/domain/roadmap"
	"career-guide/internal/domain/user"

	"github.com/google/uuid"
)

var errFake = errors.New("fake failure")

type fakeProfileRepo struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]profile.Profile
	err    error
}

func newFakeProfileRepo(ps ...profile.Profile) *fakeProfileRepo {
	r := &fakeProfileRepo{byUser: map[uuid.UUID]profile.Profile{}}
	for _, p := range ps {
		r.byUser[p.UserID] = p
	}
	return r
}

func (r *fakeProfileRepo) FindByUserID(_ context.Context, userID uuid.UUID) (profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return profile.Profile{}, r.err
	}
	p, ok := r.byUser[userID]
	if !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	return p, nil
}

func (r *fakeProfileRepo) Create(_ context.Context, p profile.Profile) (profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[p.UserID]; ok {
		return profile.Profile{}, profile.ErrAlreadyExists
	}
	r.byUser[p.UserID] = p
	return p, nil
}

func (r *fakeProfileRepo) Update(_ context.Context, p profile.Profile) (profile.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byUser[p.UserID]; !ok {
		return profile.Profile{}, profile.ErrNotFound
	}
	r.byUser[p.UserID] = p
	return p, nil
}

type fakeJobRepo struct {
	mu    sync.Mutex
	items []job.Job
	err   error
}

func (r *fakeJobRepo) Create(_ context.Context, j job.Job) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return job.Job{}, r.err
	}
	if j.CreatedAt.IsZero() {
		j.CreatedAt = time.Now().UTC()
	}
	r.items = append(r.items, j)
	return j, nil
}

func (r *fakeJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, j := range r.items {
		if j.ID == id {
			return j, nil
		}
	}
	return job.Job{}, job.ErrNotFound
}

func (r *fakeJobRepo) List(_ context.Context, f job.ListFilter) ([]job.Job, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, 0, r.err
	}
	var matched []job.Job
	for _, j := range r.items {
		if f.Track != "" && !strings.EqualFold(j.Track, f.Track) {
			continue
		}
		if f.JobType != "" && j.JobType != f.JobType {
			continue
		}
		matched = append(matched, j)
	}
	total := len(matched)
	if f.Offset >= total {
		return []job.Job{}, total, nil
	}
	end := f.Offset + f.Limit
	if end > total {
		end = total
	}
	return matched[f.Offset:end], total, nil
}

func (r *fakeJobRepo) ListRecent(_ context.Context, limit int) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return nil, r.err
	}
	out := append([]job.Job(nil), r.items...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (r *fakeJobRepo) ListByCreator(_ context.Context, userID uuid.UUID) ([]job.Job, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []job.Job
	for _, j := range r.items {
		if j.CreatedBy != nil && *j.CreatedBy == userID {
			out = append(out, j)
		}
	}
	return out, nil
}

type fakeApplicationRepo struct {
	items []job.Application
}

func (r *fakeApplicationRepo) Apply(_ context.Context, a job.Application) (job.Application, error) {
	for _, existing := range r.items {
		if existing.JobID == a.JobID && existing.UserID == a.UserID {
			return existing, job.ErrAlreadyApplied
		}
	}
	a.CreatedAt = time.Now().UTC()
	r.items = append(r.items, a)
	return a, nil
}

func (r *fakeApplicationRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]job.Application, error) {
	var out []job.Application
	for _, a := range r.items {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

type fakeResourceRepo struct {
	items []resource.Resource
	err   error
}

func (r *fakeResourceRepo) Create(_ context.Context, res resource.Resource) (resource.Resource, error) {
	if r.err != nil {
		return resource.Resource{}, r.err
	}
	r.items = append(r.items, res)
	return res, nil
}

func (r *fakeResourceRepo) GetByID(_ context.Context, id uuid.UUID) (resource.Resource, error) {
	for _, res := range r.items {
		if res.ID == id {
			return res, nil
		}
	}
	return resource.Resource{}, resource.ErrNotFound
}

func (r *fakeResourceRepo) List(_ context.Context, f resource.ListFilter) ([]resource.Resource, int, error) {
	if r.err != nil {
		return nil, 0, r.err
	}
	return r.items, len(r.items), nil
}

func (r *fakeResourceRepo) ListRecent(_ context.Context, limit int) ([]resource.Resource, error) {
	if r.err != nil {
		return nil, r.err
	}
	if len(r.items) > limit {
		return r.items[:limit], nil
	}
	return r.items, nil
}

type fakeMarkRepo struct {
	marks map[[2]uuid.UUID]resource.Mark
}

func newFakeMarkRepo() *fakeMarkRepo {
	return &fakeMarkRepo{marks: map[[2]uuid.UUID]resource.Mark{}}
}

func (r *fakeMarkRepo) Upsert(_ context.Context, m resource.Mark) (resource.Mark, error) {
	m.UpdatedAt = time.Now().UTC()
	r.marks[[2]uuid.UUID{m.UserID, m.ResourceID}] = m
	return m, nil
}

func (r *fakeMarkRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]resource.Mark, error) {
	var out []resource.Mark
	for k, m := range r.marks {
		if k[0] == userID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeRoadmapRepo struct {
	items map[uuid.UUID]roadmap.Roadmap
}

func newFakeRoadmapRepo() *fakeRoadmapRepo {
	return &fakeRoadmapRepo{items: map[uuid.UUID]roadmap.Roadmap{}}
}

func (r *fakeRoadmapRepo) Create(_ context.Context, rm roadmap.Roadmap) (roadmap.Roadmap, error) {
	rm.CreatedAt = time.Now().UTC()
	rm.UpdatedAt = rm.CreatedAt
	r.items[rm.ID] = rm
	return rm, nil
}

func (r *fakeRoadmapRepo) GetByID(_ context.Context, userID, id uuid.UUID) (roadmap.Roadmap, error) {
	rm, ok := r.items[id]
	if !ok || rm.UserID != userID {
		return roadmap.Roadmap{}, roadmap.ErrNotFound
	}
	return rm, nil
}

func (r *fakeRoadmapRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]roadmap.Roadmap, error) {
	var out []roadmap.Roadmap
	for _, rm := range r.items {
		if rm.UserID == userID {
			out = append(out, rm)
		}
	}
	return out, nil
}

func (r *fakeRoadmapRepo) UpdateContent(_ context.Context, rm roadmap.Roadmap) error {
	if _, ok := r.items[rm.ID]; !ok {
		return roadmap.ErrNotFound
	}
	r.items[rm.ID] = rm
	return nil
}

type fakeUserRepo struct {
	byID map[uuid.UUID]user.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[uuid.UUID]user.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u user.User) error {
	for _, existing := range r.byID {
		if existing.Email == u.Email {
			return user.ErrDuplicate
		}
	}
	r.byID[u.ID] = u
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.byID[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email string) (user.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			return u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *fakeUserRepo) MarkVerified(_ context.Context, id uuid.UUID) error {
	u, ok := r.byID[id]
	if !ok {
		return user.ErrNotFound
	}
	u.IsVerified = true
	r.byID[id] = u
	return nil
}

type fakeNotifier struct {
	jobs      []job.Job
	resources []resource.Resource
}

func (n *fakeNotifier) JobCreated(j job.Job)                { n.jobs = append(n.jobs, j) }
func (n *fakeNotifier) ResourceCreated(r resource.Resource) { n.resources = append(n.resources, r) }

type fakeInvalidator struct {
	users     []uuid.UUID
	jobs      int
	resources int
}

func (f *fakeInvalidator) InvalidateUser(_ context.Context, userID uuid.UUID) {
	f.users = append(f.users, userID)
}
func (f *fakeInvalidator) InvalidateJobs(context.Context)      { f.jobs++ }
func (f *fakeInvalidator) InvalidateResources(context.Context) { f.resources++ }

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (g *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	g.prompts = append(g.prompts, prompt)
	return g.reply, g.err
}

type fakeMailer struct {
	to     []string
	tokens []string
	err    error
}

func (m *fakeMailer) SendVerification(_ context.Context, to, _ string, token string) error {
	m.to = append(m.to, to)
	m.tokens = append(m.tokens, token)
	return m.err
}

type fakeStorage struct {
	url string
	err error
	got []byte
}

func (s *fakeStorage) Put(_ context.Context, _ string, _ string, data []byte) (string, error) {
	s.got = data
	return s.url, s.err
}
