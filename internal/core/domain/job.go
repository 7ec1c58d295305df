package domain

import "time"

// JobStatus represents the lifecycle state of a job posting.
type JobStatus string

const (
	JobOpen       JobStatus = "open"
	JobInProgress JobStatus = "in_progress"
	JobCompleted  JobStatus = "completed"
)

// jobTransitions defines the allowed state machine transitions.
// The machine is monotonic: there is no way back from a later state.
var jobTransitions = map[JobStatus][]JobStatus{
	JobOpen:       {JobInProgress},
	JobInProgress: {JobCompleted},
}

// CanTransitionTo reports whether a transition from s to next is valid.
func (s JobStatus) CanTransitionTo(next JobStatus) bool {
	for _, allowed := range jobTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// ValidJobStatus reports whether status names a known job state.
func ValidJobStatus(status JobStatus) bool {
	return status == JobOpen || status == JobInProgress || status == JobCompleted
}

// Job is a paid engagement posted by a client.
type Job struct {
	ID             int64     `json:"id"`
	Title          string    `json:"title"`
	Description    string    `json:"description"`
	ClientID       int64     `json:"client_id"`
	SkillsRequired string    `json:"skills_required,omitempty"`
	Budget         float64   `json:"budget,omitempty"`
	Status         JobStatus `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}

// ApplicationStatus is the decision state of a job application.
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationAccepted ApplicationStatus = "accepted"
	ApplicationRejected ApplicationStatus = "rejected"
)

// Application links a learner to a job. At most one row exists per
// (job, user) pair; the storage layer enforces this atomically.
type Application struct {
	ID        int64             `json:"id"`
	JobID     int64             `json:"job_id"`
	UserID    int64             `json:"user_id"`
	Status    ApplicationStatus `json:"status"`
	AppliedAt time.Time         `json:"applied_at"`
}

// Decided reports whether the application has reached a terminal state.
func (a Application) Decided() bool {
	return a.Status != ApplicationPending
}

// ApplicationDetail is an application joined with its job, as returned to
// the applicant.
type ApplicationDetail struct {
	Application
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Budget      float64   `json:"budget,omitempty"`
	JobStatus   JobStatus `json:"job_status"`
}
