package common

const (
	// API_TASKS is used to list tasks with aggregate counts
	API_TASKS = "/api/v1/tasks"

	// API_TASK is used to get the reconciled view of one task
	API_TASK = "/api/v1/tasks/{id}"

	// API_CANCEL is used to request cooperative cancellation of a task
	API_CANCEL = "/api/v1/tasks/{id}/cancel"
)
