package domain

type ProjectStatus string

const (
	ProjectPlanning  ProjectStatus = "planning"
	ProjectActive    ProjectStatus = "active"
	ProjectCompleted ProjectStatus = "completed"
)

type TaskType string

const (
	TaskTimeBased TaskType = "time_based"
	TaskMilestone TaskType = "milestone"
)

type WorkType string

const (
	WorkPaid      WorkType = "paid"
	WorkInKind    WorkType = "in_kind"
	WorkVolunteer WorkType = "volunteer"
)

type TaskStatus string

const (
	TaskTodo       TaskStatus = "todo"
	TaskInProgress TaskStatus = "in_progress"
	TaskDone       TaskStatus = "done"
)

type ActivityStatus string

const (
	ActivityPending  ActivityStatus = "pending"
	ActivityApproved ActivityStatus = "approved"
)

// ValidWorkTypes is the canonical set of accepted work type strings.
var ValidWorkTypes = map[string]bool{
	"paid": true, "in_kind": true, "volunteer": true,
}

// ValidActivityStatuses is the canonical set of accepted activity statuses.
var ValidActivityStatuses = map[string]bool{
	"pending": true, "approved": true,
}
