package core

import (
	"log"

	"github.com/sitevista/gantry/pkg/structs"
)

// statusRank orders states by how far through the lifecycle they are, so the
// reconciler can tell whether the engine's live view is ahead of the durable
// record. All terminal states rank equal; the durable record decides between
// them.
func statusRank(s structs.Status) int {
	switch s {
	case structs.PENDING:
		return 0
	case structs.STARTED:
		return 1
	case structs.PROGRESS:
		return 2
	case structs.SUCCESS, structs.FAILURE, structs.REVOKED:
		return 3
	default:
		return -1
	}
}

// GetStatus builds the canonical view of one task.
//
// The durable record is ground truth for historical and terminal facts; the
// engine's live state is ground truth for "what is happening right now".
// Terminal records are returned as-is since live state may already have
// expired. For non-terminal records the live view is merged in when
// available, and a stale durable answer beats no answer when it isn't.
func (c *Service) GetStatus(taskID string) (*structs.TaskView, error) {
	rec, err := c.db.Task(taskID)
	if err != nil {
		return nil, err
	}
	if structs.IsTerminalStatus(rec.Status) {
		return &structs.TaskView{TaskRecord: *rec}, nil
	}

	live, err := c.eng.Live(rec.ID)
	if err != nil {
		log.Println("[core] live state unavailable for", rec.ID, "-", err)
		live = nil
	}
	return mergeView(rec, live), nil
}

// mergeView merges the durable record with the engine's live state into one
// view. Pure; unit-testable without either dependency live.
//
// Per-field rules:
//   - identity, context and timestamps always come from the record
//   - status comes from the live state only when strictly more advanced
//     (workers update the durable record slightly behind real time)
//   - progress never regresses below the durable value
func mergeView(rec *structs.TaskRecord, live *structs.LiveState) *structs.TaskView {
	v := &structs.TaskView{TaskRecord: *rec.Copy()}
	if live == nil || structs.IsTerminalStatus(rec.Status) {
		return v
	}

	if statusRank(live.Status) > statusRank(rec.Status) {
		v.Status = live.Status
		v.Live = true
		if live.Status == structs.SUCCESS {
			v.ProgressPercent = 100
		}
	}
	if live.Percent > v.ProgressPercent {
		v.ProgressPercent = live.Percent
		v.Live = true
		if live.Step != "" {
			v.ProgressStep = live.Step
		}
		if live.Detail != "" {
			v.ProgressDetail = live.Detail
		}
	}
	return v
}
