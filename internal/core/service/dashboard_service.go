package service

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
	"github.com/skillsetu/marketplace-api/internal/core/ports"
)

// DashboardService aggregates per-role activity counts. Read-only.
type DashboardService struct {
	courses      ports.CourseRepository
	enrollments  ports.EnrollmentRepository
	jobs         ports.JobRepository
	applications ports.ApplicationRepository
}

func NewDashboardService(
	courses ports.CourseRepository,
	enrollments ports.EnrollmentRepository,
	jobs ports.JobRepository,
	applications ports.ApplicationRepository,
) *DashboardService {
	return &DashboardService{
		courses:      courses,
		enrollments:  enrollments,
		jobs:         jobs,
		applications: applications,
	}
}

// Stats returns the summary shaped for the caller's role. The learner's two
// counts are independent queries and run concurrently.
func (s *DashboardService) Stats(ctx context.Context, identity domain.Identity) (*ports.DashboardStats, error) {
	switch identity.Role {
	case domain.RoleLearner:
		var enrolled, applied int
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			n, err := s.enrollments.CountByUser(gctx, identity.ID)
			enrolled = n
			return err
		})
		g.Go(func() error {
			n, err := s.applications.CountByUser(gctx, identity.ID)
			applied = n
			return err
		})
		if err := g.Wait(); err != nil {
			return nil, err
		}
		return &ports.DashboardStats{Learner: &ports.LearnerStats{EnrolledCourses: enrolled, Applications: applied}}, nil

	case domain.RoleMentor:
		n, err := s.courses.CountByInstructor(ctx, identity.ID)
		if err != nil {
			return nil, err
		}
		return &ports.DashboardStats{Mentor: &ports.MentorStats{CoursesCreated: n}}, nil

	case domain.RoleClient:
		n, err := s.jobs.CountByClient(ctx, identity.ID)
		if err != nil {
			return nil, err
		}
		return &ports.DashboardStats{Client: &ports.ClientStats{JobsPosted: n}}, nil
	}

	return nil, domain.ErrForbidden
}
