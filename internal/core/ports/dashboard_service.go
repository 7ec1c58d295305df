package ports

import (
	"context"

	"github.com/skillsetu/marketplace-api/internal/core/domain"
)

// LearnerStats summarizes a learner's activity.
type LearnerStats struct {
	EnrolledCourses int `json:"enrolledCourses"`
	Applications    int `json:"applications"`
}

// MentorStats summarizes a mentor's activity.
type MentorStats struct {
	CoursesCreated int `json:"coursesCreated"`
}

// ClientStats summarizes a client's activity.
type ClientStats struct {
	JobsPosted int `json:"jobsPosted"`
}

// DashboardStats is a tagged union: exactly one field is set, matching the
// caller's role.
type DashboardStats struct {
	Learner *LearnerStats
	Mentor  *MentorStats
	Client  *ClientStats
}

// DashboardService aggregates role-shaped summaries. Read-only.
type DashboardService interface {
	Stats(ctx context.Context, identity domain.Identity) (*DashboardStats, error)
}
