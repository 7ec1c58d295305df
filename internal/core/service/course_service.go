package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

// CourseService implements course creation, listing and enrollment.
type CourseService struct {
	courses     ports.CourseRepository
	enrollments ports.EnrollmentRepository
	logger      zerolog.Logger
}

func NewCourseService(courses ports.CourseRepository, enrollments ports.EnrollmentRepository, logger zerolog.Logger) *CourseService {
	return &CourseService{courses: courses, enrollments: enrollments, logger: logger}
}

// Create persists a new course owned by the caller. Mentor-only.
func (s *CourseService) Create(ctx context.Context, identity domain.Identity, input ports.CreateCourseInput) (*domain.Course, error) {
	if !domain.Can(identity.Role, domain.ActionCreateCourse) {
		return nil, domain.ErrForbidden
	}
	if input.Title == "" || input.Description == "" {
		return nil, fmt.Errorf("%w: title and description required", domain.ErrValidation)
	}

	course := &domain.Course{
		Title:        input.Title,
		Description:  input.Description,
		Category:     input.Category,
		Difficulty:   input.Difficulty,
		InstructorID: identity.ID,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.courses.Create(ctx, course)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("course_id", created.ID).Int64("instructor_id", identity.ID).Msg("course created")
	return created, nil
}

// List returns courses matching the filter. Public read.
func (s *CourseService) List(ctx context.Context, filter ports.CourseFilter) ([]domain.Course, error) {
	return s.courses.List(ctx, filter)
}

// Get returns a single course by id. Public read.
func (s *CourseService) Get(ctx context.Context, id int64) (*domain.Course, error) {
	return s.courses.FindByID(ctx, id)
}

// Enroll links the caller to a course. Learner-only; a second enrollment in
// the same course fails with domain.ErrAlreadyEnrolled, raised atomically by
// the store.
func (s *CourseService) Enroll(ctx context.Context, identity domain.Identity, courseID int64) (*domain.Enrollment, error) {
	if !domain.Can(identity.Role, domain.ActionEnroll) {
		return nil, domain.ErrForbidden
	}

	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		return nil, err
	}

	enrollment := &domain.Enrollment{
		UserID:     identity.ID,
		CourseID:   courseID,
		EnrolledAt: time.Now().UTC(),
	}

	created, err := s.enrollments.Create(ctx, enrollment)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("course_id", courseID).Int64("user_id", identity.ID).Msg("learner enrolled")
	return created, nil
}

// MyEnrollments returns the caller's enrollments joined with their courses.
func (s *CourseService) MyEnrollments(ctx context.Context, identity domain.Identity) ([]domain.EnrollmentDetail, error) {
	return s.enrollments.ListByUser(ctx, identity.ID)
}
