package ports

import (
	"context"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
)

// CourseFilter carries the query parameters for listing courses.
type CourseFilter struct {
	Category   string // optional: exact match
	Difficulty string // optional: exact match
}

// CourseRepository defines persistence for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	FindByID(ctx context.Context, id int64) (*domain.Course, error)
	List(ctx context.Context, filter CourseFilter) ([]domain.Course, error)
	CountByInstructor(ctx context.Context, instructorID int64) (int, error)
}

// EnrollmentRepository defines persistence for enrollments. The
// (user, course) uniqueness invariant is enforced by the store itself, not
// by a read-then-write check.
type EnrollmentRepository interface {
	// Create inserts a new enrollment. A duplicate (user, course) pair
	// yields domain.ErrAlreadyEnrolled.
	Create(ctx context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error)
	ListByUser(ctx context.Context, userID int64) ([]domain.EnrollmentDetail, error)
	CountByUser(ctx context.Context, userID int64) (int, error)
}
