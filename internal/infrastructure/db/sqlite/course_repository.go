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

type courseRecord struct {
	bun.BaseModel `bun:"table:courses,alias:c"`

	ID           int64     `bun:"id,pk,autoincrement"`
	Title        string    `bun:"title,notnull"`
	Description  string    `bun:"description"`
	Category     string    `bun:"category"`
	Difficulty   string    `bun:"difficulty"`
	InstructorID int64     `bun:"instructor_id,notnull"`
	CreatedAt    time.Time `bun:"created_at,nullzero,notnull,default:current_timestamp"`
}

func (r *courseRecord) toDomain() domain.Course {
	return domain.Course{
		ID:           r.ID,
		Title:        r.Title,
		Description:  r.Description,
		Category:     r.Category,
		Difficulty:   r.Difficulty,
		InstructorID: r.InstructorID,
		CreatedAt:    r.CreatedAt,
	}
}

// CourseRepository persists courses in sqlite.
type CourseRepository struct {
	db *bun.DB
}

func NewCourseRepository(db *bun.DB) *CourseRepository {
	return &CourseRepository{db: db}
}

func (r *CourseRepository) Create(ctx context.Context, course *domain.Course) (*domain.Course, error) {
	rec := &courseRecord{
		Title:        course.Title,
		Description:  course.Description,
		Category:     course.Category,
		Difficulty:   course.Difficulty,
		InstructorID: course.InstructorID,
		CreatedAt:    course.CreatedAt,
	}

	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		return nil, fmt.Errorf("insert course: %w", err)
	}

	created := rec.toDomain()
	return &created, nil
}

func (r *CourseRepository) FindByID(ctx context.Context, id int64) (*domain.Course, error) {
	rec := new(courseRecord)
	err := r.db.NewSelect().Model(rec).Where("c.id = ?", id).Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrCourseNotFound
		}
		return nil, fmt.Errorf("find course: %w", err)
	}
	course := rec.toDomain()
	return &course, nil
}

func (r *CourseRepository) List(ctx context.Context, filter ports.CourseFilter) ([]domain.Course, error) {
	var recs []courseRecord
	q := r.db.NewSelect().Model(&recs).Order("c.id ASC")
	if filter.Category != "" {
		q = q.Where("category = ?", filter.Category)
	}
	if filter.Difficulty != "" {
		q = q.Where("difficulty = ?", filter.Difficulty)
	}
	if err := q.Scan(ctx); err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	courses := make([]domain.Course, 0, len(recs))
	for i := range recs {
		courses = append(courses, recs[i].toDomain())
	}
	return courses, nil
}

func (r *CourseRepository) CountByInstructor(ctx context.Context, instructorID int64) (int, error) {
	n, err := r.db.NewSelect().Model((*courseRecord)(nil)).Where("instructor_id = ?", instructorID).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count courses: %w", err)
	}
	return n, nil
}

type enrollmentRecord struct {
	bun.BaseModel `bun:"table:enrollments,alias:e"`

	ID         int64     `bun:"id,pk,autoincrement"`
	UserID     int64     `bun:"user_id,notnull"`
	CourseID   int64     `bun:"course_id,notnull"`
	Progress   int       `bun:"progress,notnull,default:0"`
	EnrolledAt time.Time `bun:"enrolled_at,nullzero,notnull,default:current_timestamp"`
}

// EnrollmentRepository persists enrollments in sqlite. The (user, course)
// UNIQUE constraint makes Create atomic under concurrent duplicates.
type EnrollmentRepository struct {
	db *bun.DB
}

func NewEnrollmentRepository(db *bun.DB) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

func (r *EnrollmentRepository) Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	rec := &enrollmentRecord{
		UserID:     enrollment.UserID,
		CourseID:   enrollment.CourseID,
		Progress:   enrollment.Progress,
		EnrolledAt: enrollment.EnrolledAt,
	}

	if _, err := r.db.NewInsert().Model(rec).Exec(ctx); err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAlreadyEnrolled
		}
		return nil, fmt.Errorf("insert enrollment: %w", err)
	}

	return &domain.Enrollment{
		ID:         rec.ID,
		UserID:     rec.UserID,
		CourseID:   rec.CourseID,
		Progress:   rec.Progress,
		EnrolledAt: rec.EnrolledAt,
	}, nil
}

type enrollmentDetailRecord struct {
	ID          int64     `bun:"id"`
	UserID      int64     `bun:"user_id"`
	CourseID    int64     `bun:"course_id"`
	Progress    int       `bun:"progress"`
	EnrolledAt  time.Time `bun:"enrolled_at"`
	Title       string    `bun:"title"`
	Description string    `bun:"description"`
	Category    string    `bun:"category"`
	Difficulty  string    `bun:"difficulty"`
}

func (r *EnrollmentRepository) ListByUser(ctx context.Context, userID int64) ([]domain.EnrollmentDetail, error) {
	var recs []enrollmentDetailRecord
	err := r.db.NewRaw(`
		SELECT e.id, e.user_id, e.course_id, e.progress, e.enrolled_at,
		       c.title, COALESCE(c.description, '') AS description,
		       COALESCE(c.category, '') AS category, COALESCE(c.difficulty, '') AS difficulty
		FROM enrollments AS e
		JOIN courses AS c ON c.id = e.course_id
		WHERE e.user_id = ?
		ORDER BY e.id ASC`, userID).Scan(ctx, &recs)
	if err != nil {
		return nil, fmt.Errorf("list enrollments: %w", err)
	}

	details := make([]domain.EnrollmentDetail, 0, len(recs))
	for _, rec := range recs {
		details = append(details, domain.EnrollmentDetail{
			Enrollment: domain.Enrollment{
				ID:         rec.ID,
				UserID:     rec.UserID,
				CourseID:   rec.CourseID,
				Progress:   rec.Progress,
				EnrolledAt: rec.EnrolledAt,
			},
			Title:       rec.Title,
			Description: rec.Description,
			Category:    rec.Category,
			Difficulty:  rec.Difficulty,
		})
	}
	return details, nil
}

func (r *EnrollmentRepository) CountByUser(ctx context.Context, userID int64) (int, error) {
	n, err := r.db.NewSelect().Model((*enrollmentRecord)(nil)).Where("user_id = ?", userID).Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count enrollments: %w", err)
	}
	return n, nil
}
