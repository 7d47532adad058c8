package core

import (
	"errors"
	"fmt"
	"log"

	ie "github.com/sitevista/gantry/pkg/errors"
	"github.com/sitevista/gantry/pkg/structs"
)

// Register creates the PENDING durable record for an engine-assigned task id.
// The id must be unique; a duplicate indicates a caller bug and is rejected.
func (c *Service) Register(taskID string, spec *structs.TaskSpec) (*structs.TaskRecord, error) {
	if taskID == "" {
		return nil, fmt.Errorf("%w empty task id", ie.ErrInvalidArg)
	}
	if err := validateTaskSpec(spec); err != nil {
		return nil, err
	}

	now := timeNow()
	rec := &structs.TaskRecord{
		TaskSpec:  *spec,
		ID:        taskID,
		Status:    structs.PENDING,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := c.db.InsertTask(rec); err != nil {
		if errors.Is(err, ie.ErrDuplicateTask) {
			log.Println("[core] duplicate registration rejected for", taskID)
		}
		return nil, err
	}
	return rec, nil
}

// MarkStarted transitions PENDING -> STARTED. A re-delivered start for a
// task that is already STARTED or later is dropped.
func (c *Service) MarkStarted(taskID string) error {
	_, err := c.db.UpdateTask(taskID, func(t *structs.TaskRecord) error {
		if t.Status != structs.PENDING {
			return fmt.Errorf("%w %s is already %s", ie.ErrStaleWrite, t.ID, t.Status)
		}
		t.Status = structs.STARTED
		if t.StartedAt == 0 {
			t.StartedAt = timeNow()
		}
		t.UpdatedAt = timeNow()
		return nil
	})
	return dropStale(err, "markStarted", taskID)
}

// UpdateProgress moves the task to PROGRESS. Percent regressions are dropped
// to keep the observed sequence non-decreasing; progress on a PENDING record
// implies the start transition (the worker's markStarted hasn't landed yet).
func (c *Service) UpdateProgress(taskID string, percent float64, step, detail string) error {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	_, err := c.db.UpdateTask(taskID, func(t *structs.TaskRecord) error {
		if structs.IsTerminalStatus(t.Status) {
			return fmt.Errorf("%w %s is already %s", ie.ErrStaleWrite, t.ID, t.Status)
		}
		if percent < t.ProgressPercent {
			return fmt.Errorf("%w progress for %s would regress %.1f -> %.1f",
				ie.ErrStaleWrite, t.ID, t.ProgressPercent, percent)
		}
		t.Status = structs.PROGRESS
		if t.StartedAt == 0 {
			t.StartedAt = timeNow()
		}
		t.ProgressPercent = percent
		t.ProgressStep = step
		t.ProgressDetail = detail
		t.UpdatedAt = timeNow()
		return nil
	})
	return dropStale(err, "updateProgress", taskID)
}

// MarkCompleted transitions the task to SUCCESS. Duplicate or late
// completion signals for an already-terminal task are dropped.
func (c *Service) MarkCompleted(taskID string, result []byte) error {
	_, err := c.db.UpdateTask(taskID, func(t *structs.TaskRecord) error {
		if structs.IsTerminalStatus(t.Status) {
			return fmt.Errorf("%w %s is already %s", ie.ErrStaleWrite, t.ID, t.Status)
		}
		finish(t, structs.SUCCESS)
		t.ProgressPercent = 100
		t.Result = result
		return nil
	})
	return dropStale(err, "markCompleted", taskID)
}

// MarkFailed transitions the task to FAILURE. Dropped if already terminal.
func (c *Service) MarkFailed(taskID, errMessage, errTrace string) error {
	_, err := c.db.UpdateTask(taskID, func(t *structs.TaskRecord) error {
		if structs.IsTerminalStatus(t.Status) {
			return fmt.Errorf("%w %s is already %s", ie.ErrStaleWrite, t.ID, t.Status)
		}
		finish(t, structs.FAILURE)
		t.ErrorMessage = errMessage
		t.ErrorTrace = errTrace
		return nil
	})
	return dropStale(err, "markFailed", taskID)
}

// finish applies the fields every terminal transition shares. Duration falls
// back to registration time for tasks that completed without a start report.
func finish(t *structs.TaskRecord, st structs.Status) {
	now := timeNow()
	t.Status = st
	t.CompletedAt = now
	t.UpdatedAt = now
	since := t.StartedAt
	if since == 0 {
		since = t.CreatedAt
	}
	t.Duration = float64(now - since)
}

// dropStale absorbs ErrStaleWrite: the worker can't usefully react to it, so
// it is logged for diagnosis and swallowed. Everything else propagates.
func dropStale(err error, op, taskID string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ie.ErrStaleWrite) {
		log.Println("[core]", op, "dropped for", taskID, "-", err)
		return nil
	}
	return err
}
