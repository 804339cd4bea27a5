package usecase

import (
	"context"

	"career-guide/internal/domain/job"
	"career-guide/internal/domain/resource"
)

// Notifier pushes catalogue changes to connected clients.
type Notifier interface {
	JobCreated(j job.Job)
	ResourceCreated(r resource.Resource)
}

type catalogueInvalidator interface {
	InvalidateJobs(ctx context.Context)
	InvalidateResources(ctx context.Context)
}
