package ports

import (
	"context"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
)

// CreateJobInput carries the fields needed to post a job.
type CreateJobInput struct {
	Title          string
	Description    string
	SkillsRequired string
	Budget         float64
}

// JobService defines use-case operations for jobs and applications.
type JobService interface {
	Create(ctx context.Context, identity domain.Identity, input CreateJobInput) (*domain.Job, error)
	List(ctx context.Context, filter JobFilter) ([]domain.Job, error)
	Get(ctx context.Context, id int64) (*domain.Job, error)
	// UpdateStatus advances a job owned by the caller along the
	// open → in_progress → completed machine.
	UpdateStatus(ctx context.Context, identity domain.Identity, jobID int64, next domain.JobStatus) (*domain.Job, error)
	Apply(ctx context.Context, identity domain.Identity, jobID int64) (*domain.Application, error)
	MyApplications(ctx context.Context, identity domain.Identity) ([]domain.ApplicationDetail, error)
	// Decide accepts or rejects a pending application on a job owned by the
	// caller. Decided applications are terminal.
	Decide(ctx context.Context, identity domain.Identity, applicationID int64, status domain.ApplicationStatus) (*domain.Application, error)
}
