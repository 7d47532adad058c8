package structs

// TaskSpec are fields fixed when a task is registered.
type TaskSpec struct {
	// Type is the category of work being tracked (eg. "document_processing",
	// "export"). Free form, but stable per feature.
	//
	// Required.
	Type string `json:"type"`

	// Name is a human readable label for this task, fixed at registration.
	Name string `json:"name"`

	// ProjectID scopes the task to a project for listing. Optional.
	ProjectID string `json:"project_id,omitempty"`

	// EntityType / EntityID reference the domain object the task operates on
	// (eg. a document or an export). Optional.
	EntityType string `json:"entity_type,omitempty"`
	EntityID   string `json:"entity_id,omitempty"`

	// InitiatedBy records who or what kicked off the work.
	InitiatedBy string `json:"initiated_by,omitempty"`

	// Provider records which backend performed the work (eg. an AI vendor).
	Provider string `json:"provider,omitempty"`

	// Metadata is an opaque payload set at registration time.
	Metadata []byte `json:"metadata,omitempty"`
}

// TaskRecord is the durable, authoritative description of one unit of
// asynchronous work. Once the status is terminal the record is frozen.
type TaskRecord struct {
	// TaskSpec are fields fixed when the task is registered
	TaskSpec `json:",inline"`

	// ID is assigned by the execution engine when the work is dispatched,
	// not generated by this service.
	ID string `json:"id"`

	// Status is the current lifecycle state of this task
	Status Status `json:"status"`

	// ProgressPercent is in [0, 100] and never decreases while the task
	// is non-terminal.
	ProgressPercent float64 `json:"progress_percent"`

	// ProgressStep / ProgressDetail describe the current stage.
	ProgressStep   string `json:"progress_step,omitempty"`
	ProgressDetail string `json:"progress_detail,omitempty"`

	// Result is an opaque payload, populated only on SUCCESS.
	Result []byte `json:"result,omitempty"`

	// ErrorMessage / ErrorTrace are populated only on FAILURE.
	ErrorMessage string `json:"error_message,omitempty"`
	ErrorTrace   string `json:"error_trace,omitempty"`

	// CreatedAt is the time this task was registered, unix time in seconds
	CreatedAt int64 `json:"created_at"`

	// StartedAt is 0 until the task reaches STARTED
	StartedAt int64 `json:"started_at"`

	// CompletedAt is 0 until the task reaches a terminal state
	CompletedAt int64 `json:"completed_at"`

	// UpdatedAt is the time this record was last written, unix time in seconds
	UpdatedAt int64 `json:"updated_at"`

	// Duration is the elapsed seconds from start to completion, 0 until terminal
	Duration float64 `json:"duration"`
}

// Copy returns a deep copy of the record so callers can compare or hold
// snapshots without aliasing the stored byte slices.
func (t *TaskRecord) Copy() *TaskRecord {
	out := *t
	if t.Metadata != nil {
		out.Metadata = append([]byte(nil), t.Metadata...)
	}
	if t.Result != nil {
		out.Result = append([]byte(nil), t.Result...)
	}
	return &out
}
