package constants

// Suggested status values offered by the task forms. Status is an open
// string; only StatusDone carries behaviour.
const (
	StatusTodo       = "todo"
	StatusInProgress = "in-progress"
	StatusDone       = "done"
)

var Statuses = []string{StatusTodo, StatusInProgress, StatusDone}
