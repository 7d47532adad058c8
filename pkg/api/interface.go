package api

import (
	"github.com/sitevista/gantry/pkg/engine"
	"github.com/sitevista/gantry/pkg/structs"
)

// API represents the functions gantry servers and workers should expose.
type API interface {
	// Implemented in gantry/internal/core.Service

	// Caller side: dispatch work & register the durable record for it.
	Dispatch(spec *structs.TaskSpec, payload []byte) (*structs.TaskRecord, error)

	// Worker side: lifecycle hooks, called only from within the worker
	// executing the task in question.
	Register(taskID string, spec *structs.TaskSpec) (*structs.TaskRecord, error)
	MarkStarted(taskID string) error
	UpdateProgress(taskID string, percent float64, step, detail string) error
	MarkCompleted(taskID string, result []byte) error
	MarkFailed(taskID, errMessage, errTrace string) error

	// Poller side.
	GetStatus(taskID string) (*structs.TaskView, error)
	Cancel(taskID string) (*structs.CancelResult, error)
	ListTasks(q *structs.Query) (*structs.TaskPage, error)

	// Worker process plumbing.
	RegisterHandler(taskType string, h engine.Handler) error
	Run() error
	Reporter() engine.Reporter

	Close() error
}

type Server interface {
	ServeForever(api API) error
	Close() error
}
