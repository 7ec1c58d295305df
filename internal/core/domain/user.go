package domain

import "time"

const (
	RoleLearner = "learner"
	RoleMentor  = "mentor"
	RoleClient  = "client"
)

// ValidRole reports whether role is one of the three supported roles.
func ValidRole(role string) bool {
	return role == RoleLearner || role == RoleMentor || role == RoleClient
}

// User models a registered account. Role is fixed at registration time.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Identity is the resolved subject of a verified token: the claims the rest
// of the system trusts without re-reading the user record.
type Identity struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}
