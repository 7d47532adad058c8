package engine

import (
	"context"

	"github.com/sitevista/gantry/pkg/structs"
)

// Handler processes one unit of work. The task id is the engine-assigned
// identifier the tracking service keys everything on.
type Handler func(ctx context.Context, taskID string, payload []byte) error

// Engine is the execution engine this service tracks tasks for. The live
// state it reports is volatile: it may be gone once a task is terminal or
// after an engine restart, and the tracker never treats it as authoritative
// for historical facts.
type Engine interface {
	// Enqueue dispatches work to the engine and returns the unique task id
	// the engine assigned to it.
	Enqueue(taskType string, payload []byte) (string, error)

	// Live returns the engine's current view of a task still in flight.
	// Returns errors.ErrEngineUnavailable (possibly wrapped) when the
	// engine holds nothing for the id.
	Live(taskID string) (*structs.LiveState, error)

	// SignalCancel requests cooperative termination. The worker is expected
	// to notice at its next checkpoint; nothing is forcibly killed.
	SignalCancel(taskID string) error

	// Register a handler for a task type. Handlers run on the engine's
	// worker routines once Run is called.
	Register(taskType string, h Handler) error

	// Run processes tasks until Close is called. Blocks.
	Run() error

	// Reporter returns the capability object workers use to publish
	// progress and poll for cancellation between checkpoints.
	Reporter() Reporter

	Close() error
}

// Reporter is handed to long-running operations. They call SetProgress at
// meaningful checkpoints and IsCancelled between expensive sub-steps,
// exiting early with a cancelled outcome when the flag is set.
type Reporter interface {
	SetProgress(taskID string, percent float64, step, detail string) error
	IsCancelled(taskID string) bool
}
