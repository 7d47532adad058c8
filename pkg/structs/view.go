package structs

// LiveState is the execution engine's in-memory view of a task still in
// flight. It is owned by the engine, read-only from this service, and may be
// unavailable once the task is terminal or after an engine restart.
type LiveState struct {
	Status  Status  `json:"status"`
	Percent float64 `json:"percent"`
	Step    string  `json:"step,omitempty"`
	Detail  string  `json:"detail,omitempty"`
}

// TaskView is the canonical merged answer to "what is happening to this task
// right now". Identity, context and timestamps always come from the durable
// record; status and progress may come from the engine's live state.
type TaskView struct {
	TaskRecord `json:",inline"`

	// Live reports whether any part of the view was taken from the
	// execution engine rather than the durable record.
	Live bool `json:"live"`
}

// CancelResult describes the outcome of a cancellation request.
type CancelResult struct {
	ID string `json:"id"`

	// Status is the durable status after the call.
	Status Status `json:"status"`

	// Cancelled is false when the task was already terminal.
	Cancelled bool `json:"cancelled"`

	Message string `json:"message"`
}

// TaskPage is one page of task views plus aggregate counts over the whole
// scope (counts ignore paging).
type TaskPage struct {
	Tasks []*TaskView `json:"tasks"`

	Total     int64 `json:"total"`
	Running   int64 `json:"running"`
	Completed int64 `json:"completed"`
	Failed    int64 `json:"failed"`
}
