package core

import (
	"log"

	"github.com/sitevista/gantry/pkg/structs"
)

// ListTasks returns one page of task views plus aggregate counts for the
// project / type scope.
//
// Non-terminal rows are enriched with live engine state so the list reflects
// current progress, not just the last durable checkpoint. Counts come from
// the durable store alone: terminal tallies can't be changed by live-engine
// availability, and running + completed + failed <= total (REVOKED makes up
// the difference).
func (c *Service) ListTasks(q *structs.Query) (*structs.TaskPage, error) {
	q.Sanitize()

	recs, err := c.db.Tasks(q)
	if err != nil {
		return nil, err
	}
	counts, total, err := c.db.TaskCounts(q)
	if err != nil {
		return nil, err
	}

	page := &structs.TaskPage{
		Tasks:     make([]*structs.TaskView, 0, len(recs)),
		Total:     total,
		Running:   counts[structs.PENDING] + counts[structs.STARTED] + counts[structs.PROGRESS],
		Completed: counts[structs.SUCCESS],
		Failed:    counts[structs.FAILURE],
	}

	for _, rec := range recs {
		if structs.IsTerminalStatus(rec.Status) {
			page.Tasks = append(page.Tasks, &structs.TaskView{TaskRecord: *rec})
			continue
		}
		live, err := c.eng.Live(rec.ID)
		if err != nil {
			log.Println("[core] live state unavailable for", rec.ID, "-", err)
			live = nil
		}
		page.Tasks = append(page.Tasks, mergeView(rec, live))
	}
	return page, nil
}
