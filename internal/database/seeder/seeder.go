package seeder

import (
	"context"

	"career-guide/internal/database"
)

type Seeder interface {
	Name() string
	Run(ctx context.Context, db database.DB) (int, error)
}
