package ports

import (
	"context"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
)

// CreateCourseInput carries the fields needed to create a course.
type CreateCourseInput struct {
	Title       string
	Description string
	Category    string
	Difficulty  string
}

// CourseService defines use-case operations for courses and enrollments.
type CourseService interface {
	Create(ctx context.Context, identity domain.Identity, input CreateCourseInput) (*domain.Course, error)
	List(ctx context.Context, filter CourseFilter) ([]domain.Course, error)
	Get(ctx context.Context, id int64) (*domain.Course, error)
	Enroll(ctx context.Context, identity domain.Identity, courseID int64) (*domain.Enrollment, error)
	MyEnrollments(ctx context.Context, identity domain.Identity) ([]domain.EnrollmentDetail, error)
}
