package core

import (
	"errors"
	"fmt"
	"log"

	ie "github.com/sitevista/gantry/pkg/errors"
	"github.com/sitevista/gantry/pkg/structs"
)

const msgAlreadyCompleted = "already completed"

// Cancel requests cooperative termination of a task.
//
// The engine is signalled first, then the durable record is flipped to
// REVOKED immediately - the worker may still be executing briefly, but its
// late completion or failure report will be dropped as a stale write, so the
// record never regresses out of REVOKED. Signal delivery failures are logged
// and absorbed: the intent is recorded even if delivery is uncertain.
func (c *Service) Cancel(taskID string) (*structs.CancelResult, error) {
	rec, err := c.db.Task(taskID)
	if err != nil {
		return nil, err
	}
	if structs.IsTerminalStatus(rec.Status) {
		return &structs.CancelResult{
			ID:      rec.ID,
			Status:  rec.Status,
			Message: msgAlreadyCompleted,
		}, nil
	}

	if err = c.eng.SignalCancel(taskID); err != nil {
		log.Println("[core] cancel signal not delivered for", taskID, "-", err)
	}

	rec, err = c.db.UpdateTask(taskID, func(t *structs.TaskRecord) error {
		if structs.IsTerminalStatus(t.Status) {
			return fmt.Errorf("%w %s is already %s", ie.ErrStaleWrite, t.ID, t.Status)
		}
		finish(t, structs.REVOKED)
		return nil
	})
	if errors.Is(err, ie.ErrStaleWrite) {
		// a completion report won the race; the terminal record stands
		rec, err = c.db.Task(taskID)
		if err != nil {
			return nil, err
		}
		return &structs.CancelResult{
			ID:      rec.ID,
			Status:  rec.Status,
			Message: msgAlreadyCompleted,
		}, nil
	}
	if err != nil {
		return nil, err
	}

	return &structs.CancelResult{
		ID:        rec.ID,
		Status:    rec.Status,
		Cancelled: true,
		Message:   "cancellation requested",
	}, nil
}
