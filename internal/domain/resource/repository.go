package resource

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r Resource) (Resource, error)
	GetByID(ctx context.Context, id uuid.UUID) (Resource, error)
	List(ctx context.Context, f ListFilter) ([]Resource, int, error)
	ListRecent(ctx context.Context, limit int) ([]Resource, error)
}

type MarkRepository interface {
	Upsert(ctx context.Context, m Mark) (Mark, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Mark, error)
}
