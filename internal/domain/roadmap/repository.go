package roadmap

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	Create(ctx context.Context, r Roadmap) (Roadmap, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (Roadmap, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]Roadmap, error)
	UpdateContent(ctx context.Context, r Roadmap) error
}
