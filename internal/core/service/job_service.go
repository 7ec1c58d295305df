package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

// JobService implements job posting, applications and their lifecycles.
type JobService struct {
	jobs         ports.JobRepository
	applications ports.ApplicationRepository
	logger       zerolog.Logger
}

func NewJobService(jobs ports.JobRepository, applications ports.ApplicationRepository, logger zerolog.Logger) *JobService {
	return &JobService{jobs: jobs, applications: applications, logger: logger}
}

// Create persists a new open job owned by the caller. Client-only.
func (s *JobService) Create(ctx context.Context, identity domain.Identity, input ports.CreateJobInput) (*domain.Job, error) {
	if !domain.Can(identity.Role, domain.ActionCreateJob) {
		return nil, domain.ErrForbidden
	}
	if input.Title == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: title and description required", domain.ErrValidation)
	}

	job := &domain.Job{
		Title:          input.Title,
		Description:    input.Description,
		ClientID:       identity.ID,
		SkillsRequired: input.SkillsRequired,
		Budget:         input.Budget,
		Status:         domain.JobOpen,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.jobs.Create(ctx, job)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("job_id", created.ID).Int64("client_id", identity.ID).Msg("job posted")
	return created, nil
}

// List returns jobs matching the filter. Public read.
func (s *JobService) List(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	return s.jobs.List(ctx, filter)
}

// Get returns a single job by id. Public read.
func (s *JobService) Get(ctx context.Context, id int64) (*domain.Job, error) {
	return s.jobs.FindByID(ctx, id)
}

// UpdateStatus advances a job along open → in_progress → completed. Only the
// owning client may move it, and never backwards.
func (s *JobService) UpdateStatus(ctx context.Context, identity domain.Identity, jobID int64, next domain.JobStatus) (*domain.Job, error) {
	if !domain.Can(identity.Role, domain.ActionUpdateJobStatus) {
		return nil, domain.ErrForbidden
	}
	if !domain.ValidJobStatus(next) {
		return nil, fmt.Errorf("%w: unknown status %q", domain.ErrValidation, next)
	}

	job, err := s.jobs.FindByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != identity.ID {
		return nil, domain.ErrForbidden
	}
	if !job.Status.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: %s → %s", domain.ErrInvalidTransition, job.Status, next)
	}

	if err := s.jobs.UpdateStatus(ctx, jobID, next); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("job_id", jobID).Str("status", string(next)).Msg("job status updated")
	job.Status = next
	return job, nil
}

// Apply links the caller to a job. Learner-only; a second application to the
// same job fails with domain.ErrAlreadyApplied, raised atomically by the
// store.
func (s *JobService) Apply(ctx context.Context, identity domain.Identity, jobID int64) (*domain.Application, error) {
	if !domain.Can(identity.Role, domain.ActionApply) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.jobs.FindByID(ctx, jobID); err != nil {
		return nil, err
	}

	application := &domain.Application{
		JobID:     jobID,
		UserID:    identity.ID,
		Status:    domain.ApplicationPending,
		AppliedAt: time.Now().UTC(),
	}

	created, err := s.applications.Create(ctx, application)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("job_id", jobID).Int64("user_id", identity.ID).Msg("application submitted")
	return created, nil
}

// MyApplications returns the caller's applications joined with their jobs.
func (s *JobService) MyApplications(ctx context.Context, identity domain.Identity) ([]domain.ApplicationDetail, error) {
	return s.applications.ListByUser(ctx, identity.ID)
}

// Decide accepts or rejects a pending application. Only the client owning
// the applied-to job may decide, and a decision is terminal.
func (s *JobService) Decide(ctx context.Context, identity domain.Identity, applicationID int64, status domain.ApplicationStatus) (*domain.Application, error) {
	if !domain.Can(identity.Role, domain.ActionDecideApplication) {
		return nil, domain.ErrForbidden
	}
	if status != domain.ApplicationAccepted && status != domain.ApplicationRejected {
		return nil, fmt.Errorf("%w: decision must be accepted or rejected", domain.ErrValidation)
	}

	application, err := s.applications.FindByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	job, err := s.jobs.FindByID(ctx, application.JobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != identity.ID {
		return nil, domain.ErrForbidden
	}
	if application.Decided() {
		return nil, fmt.Errorf("%w: application already %s", domain.ErrInvalidTransition, application.Status)
	}

	if err := s.applications.UpdateStatus(ctx, applicationID, status); err != nil {
		return nil, err
	}

	s.logger.Info().Int64("application_id", applicationID).Str("status", string(status)).Msg("application decided")
	application.Status = status
	return application, nil
}
