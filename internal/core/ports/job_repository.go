package ports

import (
	"context"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
)

// JobFilter carries the query parameters for listing jobs.
type JobFilter struct {
	Status string // optional: exact match on job status
}

// JobRepository defines persistence for job postings.
type JobRepository interface {
	Create(ctx context.Context, job *domain.Job) (*domain.Job, error)
	FindByID(ctx context.Context, id int64) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error
	CountByClient(ctx context.Context, clientID int64) (int, error)
}

// ApplicationRepository defines persistence for job applications. The
// (job, user) uniqueness invariant is enforced by the store itself.
type ApplicationRepository interface {
	// Create inserts a new application. A duplicate (job, user) pair yields
	// domain.ErrAlreadyApplied.
	Create(ctx context.Context, application *domain.Application) (*domain.Application, error)
	FindByID(ctx context.Context, id int64) (*domain.Application, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.ApplicationDetail, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
	CountByUser(ctx context.Context, userID int64) (int, error)
}
