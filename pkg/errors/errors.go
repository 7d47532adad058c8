package errors

import (
	"fmt"
)

var (
	// ErrNotFound: no durable record exists for the given task id.
	// Surfaced to callers as-is.
	ErrNotFound = fmt.Errorf("task not found")

	// ErrDuplicateTask: register was called twice for the same id.
	// Indicates a caller bug upstream; rejected, not retried.
	ErrDuplicateTask = fmt.Errorf("duplicate task")

	// ErrStaleWrite: a mutating call arrived for a task whose durable
	// record is already terminal. Dropped by the tracker, never surfaced
	// to the worker.
	ErrStaleWrite = fmt.Errorf("stale write to terminal task")

	// ErrEngineUnavailable: the live-state lookup failed or the engine
	// holds nothing for the id. The reconciler degrades to the durable
	// record instead of propagating this.
	ErrEngineUnavailable = fmt.Errorf("execution engine unavailable")

	// ErrCancelRejected: the termination signal could not be delivered.
	// The durable record is still flipped to REVOKED.
	ErrCancelRejected = fmt.Errorf("cancellation signal rejected")

	ErrNoTaskType   = fmt.Errorf("no task type specified")
	ErrMaxExceeded  = fmt.Errorf("max length exceeded")
	ErrInvalidState = fmt.Errorf("invalid state")
	ErrInvalidArg   = fmt.Errorf("invalid arg")
)
