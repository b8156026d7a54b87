package services

import (
	"context"

	"github.com/qrasickz/vovabank_backend/internal/core/domain"
)

// JobSvcFacade exposes the static job catalog and the employment loop.
type JobSvcFacade interface {
	// ListJobs returns the full static catalog.
	ListJobs(ctx context.Context) []domain.JobPosition

	// GetJob retrieves one position; apperrors.ErrNotFound for unknown ids.
	GetJob(ctx context.Context, jobID string) (*domain.JobPosition, error)

	// Apply employs the user at the given position.
	Apply(ctx context.Context, userID string, jobID string) (*domain.JobPosition, error)

	// CollectSalary claims the user's daily salary through the engine.
	CollectSalary(ctx context.Context, userID string) error

	// CompleteTask awards the per-task reward for the user's current job.
	CompleteTask(ctx context.Context, userID string, taskLabel string) error
}
