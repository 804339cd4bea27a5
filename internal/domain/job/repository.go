package job

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, j Job) (Job, error)
	GetByID(ctx context.Context, id uuid.UUID) (Job, error)
	List(ctx context.Context, f ListFilter) ([]Job, int, error)
	ListRecent(ctx context.Context, limit int) ([]Job, error)
	ListByCreator(ctx context.Context, userID uuid.UUID) ([]Job, error)
}

type ApplicationRepository interface {
	Apply(ctx context.Context, a Application) (Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Application, error)
}
