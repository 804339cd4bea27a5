package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"career-guide/internal/domain/resource"
	"career-guide/internal/pkg/logger"
	"career-guide/internal/search"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type ResourceListParams struct {
	Skill    string
	Cost     string
	Platform string
	Search   string
	Limit    int
	Skip     int
}

type ResourceInput struct {
	Title         string
	Platform      string
	URL           string
	RelatedSkills []string
	Cost          string
	Description   string
}

type ResourceUsecase interface {
	List(ctx context.Context, p ResourceListParams) (Page[resource.Resource], error)
	Get(ctx context.Context, id uuid.UUID) (resource.Resource, error)
	Create(ctx context.Context, creator uuid.UUID, in ResourceInput) (resource.Resource, error)
	Mark(ctx context.Context, userID, resourceID uuid.UUID, status string) (resource.Mark, error)
	Marks(ctx context.Context, userID uuid.UUID) ([]resource.Mark, error)
}

type Resources struct {
	resources   resource.Repository
	marks       resource.MarkRepository
	notifier    Notifier
	invalidator catalogueInvalidator
	log         *zap.Logger
}

func NewResourceUsecase(resources resource.Repository, marks resource.MarkRepository, notifier Notifier, invalidator catalogueInvalidator, log *zap.Logger) *Resources {
	return &Resources{
		resources:   resources,
		marks:       marks,
		notifier:    notifier,
		invalidator: invalidator,
		log:         logger.OrNop(log),
	}
}

func (u *Resources) List(ctx context.Context, p ResourceListParams) (Page[resource.Resource], error) {
	limit, skip, err := pageBounds(p.Limit, p.Skip)
	if err != nil {
		return Page[resource.Resource]{}, err
	}

	f := resource.ListFilter{
		Skill:    strings.ToLower(strings.TrimSpace(p.Skill)),
		Platform: strings.TrimSpace(p.Platform),
		Limit:    limit,
		Offset:   skip,
	}
	if p.Cost != "" {
		c, ok := resource.ParseCost(p.Cost)
		if !ok {
			return Page[resource.Resource]{}, ErrInvalidInput
		}
		f.Cost = c
	}
	q := search.ProcessQuery(p.Search)
	f.Patterns = search.Patterns(p.Search)

	items, total, err := u.resources.List(ctx, f)
	if err != nil {
		return Page[resource.Resource]{}, ErrInternal
	}
	items = search.Rank(items, q.Variants, resourceDocument)

	return newPage(items, total, limit, skip), nil
}

func (u *Resources) Get(ctx context.Context, id uuid.UUID) (resource.Resource, error) {
	r, err := u.resources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, resource.ErrNotFound) {
			return resource.Resource{}, ErrNotFound
		}
		return resource.Resource{}, ErrInternal
	}
	return r, nil
}

func (u *Resources) Create(ctx context.Context, creator uuid.UUID, in ResourceInput) (resource.Resource, error) {
	if creator == uuid.Nil {
		return resource.Resource{}, ErrUnauthorized
	}
	r := resource.New(resource.Resource{
		Title:         in.Title,
		Platform:      in.Platform,
		URL:           in.URL,
		RelatedSkills: in.RelatedSkills,
		Cost:          resource.Cost(in.Cost),
		Description:   in.Description,
		CreatedBy:     &creator,
	})
	if err := r.Validate(); err != nil {
		return resource.Resource{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	created, err := u.resources.Create(ctx, r)
	if err != nil {
		if errors.Is(err, resource.ErrDuplicate) {
			return resource.Resource{}, ErrConflict
		}
		return resource.Resource{}, ErrInternal
	}
	u.log.Info("resource created", zap.String("resource_id", created.ID.String()), zap.String("created_by", creator.String()))

	if u.invalidator != nil {
		u.invalidator.InvalidateResources(ctx)
	}
	if u.notifier != nil {
		u.notifier.ResourceCreated(created)
	}
	return created, nil
}

func (u *Resources) Mark(ctx context.Context, userID, resourceID uuid.UUID, status string) (resource.Mark, error) {
	st, ok := resource.ParseMarkStatus(status)
	if !ok {
		return resource.Mark{}, ErrInvalidInput
	}
	if _, err := u.Get(ctx, resourceID); err != nil {
		return resource.Mark{}, err
	}
	m, err := u.marks.Upsert(ctx, resource.Mark{UserID: userID, ResourceID: resourceID, Status: st})
	if err != nil {
		return resource.Mark{}, ErrInternal
	}
	return m, nil
}

func (u *Resources) Marks(ctx context.Context, userID uuid.UUID) ([]resource.Mark, error) {
	items, err := u.marks.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

func resourceDocument(r resource.Resource) search.Document {
	return search.Document{
		Title:       r.Title,
		Owner:       r.Platform,
		Description: r.Description,
		Tags:        r.RelatedSkills,
		URL:         r.URL,
		CreatedAt:   r.CreatedAt,
	}
}
