package domain

// Action names a mutating operation gated by the role policy.
type Action string

const (
	ActionCreateCourse      Action = "create_course"
	ActionEnroll            Action = "enroll"
	ActionCreateJob         Action = "create_job"
	ActionApply             Action = "apply"
	ActionUpdateJobStatus   Action = "update_job_status"
	ActionDecideApplication Action = "decide_application"
)

// rolePolicy is the static action → required role table. Every mutating
// action maps to exactly one role; anything not listed is denied.
var rolePolicy = map[Action]string{
	ActionCreateCourse:      RoleMentor,
	ActionEnroll:            RoleLearner,
	ActionCreateJob:         RoleClient,
	ActionApply:             RoleLearner,
	ActionUpdateJobStatus:   RoleClient,
	ActionDecideApplication: RoleClient,
}

// RoleFor returns the role required to perform action, if the action is known.
func RoleFor(action Action) (string, bool) {
	role, ok := rolePolicy[action]
	return role, ok
}

// Can reports whether a holder of role may perform action.
func Can(role string, action Action) bool {
	required, ok := rolePolicy[action]
	return ok && role == required
}
