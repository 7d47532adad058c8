package structs

const (
	queryLimitDefault = 100
	queryLimitMax     = 1000
)

type Query struct {
	Limit  int `json:"limit,omitempty"`
	Offset int `json:"offset,omitempty"`

	// Filters
	ProjectID string   `json:"project_id,omitempty"`
	TaskIDs   []string `json:"task_ids,omitempty"`
	Types     []string `json:"types,omitempty"`
	Statuses  []Status `json:"statuses,omitempty"`
}

func (q *Query) Sanitize() {
	if q.Limit <= 0 {
		q.Limit = queryLimitDefault
	}
	if q.Limit > queryLimitMax {
		q.Limit = queryLimitMax
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
	if len(q.TaskIDs) == 0 {
		q.TaskIDs = nil
	}
	if len(q.Types) == 0 {
		q.Types = nil
	}
	if len(q.Statuses) == 0 {
		q.Statuses = nil
	}
}
