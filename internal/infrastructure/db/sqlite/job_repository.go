package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

type jobRecord struct {
	bun.BaseModel `bun:"table:jobs,alias:j"`

	ID             int64     `bun:"id,pk,autoincrement"`
	Title          string    `bun:"title,notnull"`
	Description    string    `bun:"description"`
	ClientID       int64     `bun:"client_id,notnull"`
	SkillsRequired string    `bun:"skills_required"`
	Budget         float64   `bun:"budget"`
	Status         string    `bun:"status,notnull,default:'open'"`
	CreatedAt      time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func (r *jobRecord) toDomain() domain.Job {
	return domain.Job{
		ID:             r.ID,
		Title:          r.Title,
		Description:    r.Description,
		ClientID:       r.ClientID,
		SkillsRequired: r.SkillsRequired,
		Budget:         r.Budget,
		Status:         domain.JobStatus(r.Status),
		CreatedAt:      r.CreatedAt,
	}
}

// JobRepository persists job postings in sqlite.
type JobRepository struct {
	db *bun.DB
}

func NewJobRepository(db *bun.DB) *JobRepository {
	return &JobRepository{db: db}
}

func (r *JobRepository) Create(ctx context.Context, job *domain.Job) (*domain.Job, error) {
	rec := &jobRecord{
		Title:          job.Title,
		Description:    job.Description,
		ClientID:       job.ClientID,
		SkillsRequired: job.SkillsRequired,
		Budget:         job.Budget,
		Status:         string(job.Status),
		CreatedAt:      job.CreatedAt,
	}

	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert job: %w", err)
	}

	created := rec.toDomain()
	return &created, nil
}

func (r *JobRepository) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	rec := new(jobRecord)
	err := r.db.NewSelect().Model(rec).Where("j.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrJobNotFound
		}
		return nil, fmt.Errorf("find job: %w", err)
	}
	job := rec.toDomain()
	return &job, nil
}

func (r *JobRepository) List(ctx context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	var recs []jobRecord
	q := r.db.NewSelect().Model(&recs).Order("j.id ASC")
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}

	jobs := make([]domain.Job, 0, len(recs))
	for i := range recs {
		jobs = append(jobs, recs[i].toDomain())
	}
	return jobs, nil
}

func (r *JobRepository) UpdateStatus(ctx context.Context, id int64, status domain.JobStatus) error {
	res, err := r.db.NewUpdate().
		Model((*jobRecord)(nil)).
		Set("status = ?", string(status)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update job status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrJobNotFound
	}
	return nil
}

func (r *JobRepository) CountByClient(ctx context.Context, clientID int64) (int, error) {
	n, err := r.db.NewSelect().Model((*jobRecord)(nil)).Where("client_id = ?", clientID).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count jobs: %w", err)
	}
	return n, nil
}

type applicationRecord struct {
	bun.BaseModel `bun:"table:applications,alias:a"`

	ID        int64     `bun:"id,pk,autoincrement"`
	JobID     int64     `bun:"job_id,notnull"`
	UserID    int64     `bun:"user_id,notnull"`
	Status    string    `bun:"status,notnull,default:'pending'"`
	AppliedAt time.Time `bun:"applied_at,nullzero,notnull,default:current_timestamp"`
}

func (r *applicationRecord) toDomain() domain.Application {
	return domain.Application{
		ID:        r.ID,
		JobID:     r.JobID,
		UserID:    r.UserID,
		Status:    domain.ApplicationStatus(r.Status),
		AppliedAt: r.AppliedAt,
	}
}

// ApplicationRepository persists job applications in sqlite. The (job, user)
// UNIQUE constraint makes Create atomic under concurrent duplicates.
type ApplicationRepository struct {
	db *bun.DB
}

func NewApplicationRepository(db *bun.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

func (r *ApplicationRepository) Create(ctx context.Context, application *domain.Application) (*domain.Application, error) {
	rec := &applicationRecord{
		JobID:     application.JobID,
		UserID:    application.UserID,
		Status:    string(application.Status),
		AppliedAt: application.AppliedAt,
	}

	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyApplied
		}
		return nil, fmt.Errorf("insert application: %w", err)
	}

	created := rec.toDomain()
	return &created, nil
}

func (r *ApplicationRepository) FindByID(ctx context.Context, id int64) (*domain.Application, error) {
	rec := new(applicationRecord)
	err := r.db.NewSelect().Model(rec).Where("a.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("find application: %w", err)
	}
	application := rec.toDomain()
	return &application, nil
}

type applicationDetailRecord struct {
	ID          int64     `bun:"id"`
	JobID       int64     `bun:"job_id"`
	UserID      int64     `bun:"user_id"`
	Status      string    `bun:"status"`
	AppliedAt   time.Time `bun:"applied_at"`
	Title       string    `bun:"title"`
	Description string    `bun:"description"`
	Budget      float64   `bun:"budget"`
	JobStatus   string    `bun:"job_status"`
}

func (r *ApplicationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.ApplicationDetail, error) {
	var recs []applicationDetailRecord
	err := r.db.NewRaw(`
		SELECT a.id, a.job_id, a.user_id, a.status, a.applied_at,
		       j.title, COALESCE(j.description, '') AS description,
		       COALESCE(j.budget, 0) AS budget, j.status AS job_status
		FROM applications AS a
		JOIN jobs AS j ON j.id = a.job_id
		WHERE a.user_id = ?
		ORDER BY a.id ASC`, userID).Scan(ctx, &recs)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	details := make([]domain.ApplicationDetail, 0, len(recs))
	for _, rec := range recs {
		details = append(details, domain.ApplicationDetail{
			Application: domain.Application{
				ID:        rec.ID,
				JobID:     rec.JobID,
				UserID:    rec.UserID,
				Status:    domain.ApplicationStatus(rec.Status),
				AppliedAt: rec.AppliedAt,
			},
			Title:       rec.Title,
			Description: rec.Description,
			Budget:      rec.Budget,
			JobStatus:   domain.JobStatus(rec.JobStatus),
		})
	}
	return details, nil
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	res, err := r.db.NewUpdate().
		Model((*applicationRecord)(nil)).
		Set("status = ?", string(status)).
		Where("id = ?", id).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrApplicationNotFound
	}
	return nil
}

func (r *ApplicationRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	n, err := r.db.NewSelect().Model((*applicationRecord)(nil)).Where("user_id = ?", userID).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count applications: %w", err)
	}
	return n, nil
}
