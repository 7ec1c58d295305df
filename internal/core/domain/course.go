package domain

import "time"

const (
	DifficultyBeginner     = "Beginner"
	DifficultyIntermediate = "Intermediate"
	DifficultyAdvanced     = "Advanced"
)

// Course is a learning offering owned by a mentor.
type Course struct {
	ID           int64     `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Category     string    `json:"category,omitempty"`
	Difficulty   string    `json:"difficulty,omitempty"`
	InstructorID int64     `json:"instructor_id"`
	CreatedAt    time.Time `json:"created_at"`
}

// Enrollment links a learner to a course. At most one row exists per
// (user, course) pair; the storage layer enforces this atomically.
type Enrollment struct {
	ID         int64     `json:"id"`
	UserID     int64     `json:"user_id"`
	CourseID   int64     `json:"course_id"`
	Progress   int       `json:"progress"`
	EnrolledAt time.Time `json:"enrolled_at"`
}

// EnrollmentDetail is an enrollment joined with its course, as returned to
// the enrolled learner.
type EnrollmentDetail struct {
	Enrollment
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category,omitempty"`
	Difficulty  string `json:"difficulty,omitempty"`
}
