package service

// In-memory fakes for the repository ports, shared across the service tests.
// They enforce the same uniqueness rules the sqlite store does.

import (
	"context"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

type stubCourseRepo struct {
	courses []domain.Course
	nextID  int64
}

func (r *stubCourseRepo) Create(_ context.Context, course *domain.Course) (*domain.Course, error) {
	r.nextID++
	copy := *course
	copy.ID = r.nextID
	r.courses = append(r.courses, copy)
	return &copy, nil
}

func (r *stubCourseRepo) FindByID(_ context.Context, id int64) (*domain.Course, error) {
	for i := range r.courses {
		if r.courses[i].ID == id {
			c := r.courses[i]
			return &c, nil
		}
	}
	return nil, domain.ErrCourseNotFound
}

func (r *stubCourseRepo) List(_ context.Context, filter ports.CourseFilter) ([]domain.Course, error) {
	var out []domain.Course
	for _, c := range r.courses {
		if filter.Category != "" && c.Category != filter.Category {
			continue
		}
		if filter.Difficulty != "" && c.Difficulty != filter.Difficulty {
			continue
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *stubCourseRepo) CountByInstructor(_ context.Context, instructorID int64) (int, error) {
	n := 0
	for _, c := range r.courses {
		if c.InstructorID == instructorID {
			n++
		}
	}
	return n, nil
}

type stubEnrollmentRepo struct {
	enrollments []domain.Enrollment
	nextID      int64
}

func (r *stubEnrollmentRepo) Create(_ context.Context, enrollment *domain.Enrollment) (*domain.Enrollment, error) {
	for _, e := range r.enrollments {
		if e.UserID == enrollment.UserID && e.CourseID == enrollment.CourseID {
			return nil, domain.ErrAlreadyEnrolled
		}
	}
	r.nextID++
	copy := *enrollment
	copy.ID = r.nextID
	r.enrollments = append(r.enrollments, copy)
	return &copy, nil
}

func (r *stubEnrollmentRepo) ListByUser(_ context.Context, userID int64) ([]domain.EnrollmentDetail, error) {
	var out []domain.EnrollmentDetail
	for _, e := range r.enrollments {
		if e.UserID == userID {
			out = append(out, domain.EnrollmentDetail{Enrollment: e})
		}
	}
	return out, nil
}

func (r *stubEnrollmentRepo) CountByUser(_ context.Context, userID int64) (int, error) {
	n := 0
	for _, e := range r.enrollments {
		if e.UserID == userID {
			n++
		}
	}
	return n, nil
}

type stubJobRepo struct {
	jobs   []domain.Job
	nextID int64
}

func (r *stubJobRepo) Create(_ context.Context, job *domain.Job) (*domain.Job, error) {
	r.nextID++
	copy := *job
	copy.ID = r.nextID
	r.jobs = append(r.jobs, copy)
	return &copy, nil
}

func (r *stubJobRepo) FindByID(_ context.Context, id int64) (*domain.Job, error) {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			j := r.jobs[i]
			return &j, nil
		}
	}
	return nil, domain.ErrJobNotFound
}

func (r *stubJobRepo) List(_ context.Context, filter ports.JobFilter) ([]domain.Job, error) {
	var out []domain.Job
	for _, j := range r.jobs {
		if filter.Status != "" && string(j.Status) != filter.Status {
			continue
		}
		out = append(out, j)
	}
	return out, nil
}

func (r *stubJobRepo) UpdateStatus(_ context.Context, id int64, status domain.JobStatus) error {
	for i := range r.jobs {
		if r.jobs[i].ID == id {
			r.jobs[i].Status = status
			return nil
		}
	}
	return domain.ErrJobNotFound
}

func (r *stubJobRepo) CountByClient(_ context.Context, clientID int64) (int, error) {
	n := 0
	for _, j := range r.jobs {
		if j.ClientID == clientID {
			n++
		}
	}
	return n, nil
}

type stubApplicationRepo struct {
	applications []domain.Application
	nextID       int64
}

func (r *stubApplicationRepo) Create(_ context.Context, application *domain.Application) (*domain.Application, error) {
	for _, a := range r.applications {
		if a.JobID == application.JobID && a.UserID == application.UserID {
			return nil, domain.ErrAlreadyApplied
		}
	}
	r.nextID++
	copy := *application
	copy.ID = r.nextID
	r.applications = append(r.applications, copy)
	return &copy, nil
}

func (r *stubApplicationRepo) FindByID(_ context.Context, id int64) (*domain.Application, error) {
	for i := range r.applications {
		if r.applications[i].ID == id {
			a := r.applications[i]
			return &a, nil
		}
	}
	return nil, domain.ErrApplicationNotFound
}

func (r *stubApplicationRepo) ListByUser(_ context.Context, userID int64) ([]domain.ApplicationDetail, error) {
	var out []domain.ApplicationDetail
	for _, a := range r.applications {
		if a.UserID == userID {
			out = append(out, domain.ApplicationDetail{Application: a})
		}
	}
	return out, nil
}

func (r *stubApplicationRepo) UpdateStatus(_ context.Context, id int64, status domain.ApplicationStatus) error {
	for i := range r.applications {
		if r.applications[i].ID == id {
			r.applications[i].Status = status
			return nil
		}
	}
	return domain.ErrApplicationNotFound
}

func (r *stubApplicationRepo) CountByUser(_ context.Context, userID int64) (int, error) {
	n := 0
	for _, a := range r.applications {
		if a.UserID == userID {
			n++
		}
	}
	return n, nil
}
