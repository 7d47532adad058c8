package database

import (
	"github.com/sitevista/gantry/pkg/structs"
)

// Database is the durable task record store. One row per task; rows are
// never deleted by this service (retention is an external policy).
type Database interface {
	// InsertTask creates the record. Returns errors.ErrDuplicateTask if a
	// record with the same id already exists.
	InsertTask(t *structs.TaskRecord) error

	// Task returns the record for the given id, or errors.ErrNotFound.
	Task(id string) (*structs.TaskRecord, error)

	// UpdateTask reads the record under a row lock, applies mutate and
	// writes the result back in the same transaction. If mutate returns an
	// error nothing is written and the error is returned. Returns the
	// record as written.
	UpdateTask(id string, mutate func(t *structs.TaskRecord) error) (*structs.TaskRecord, error)

	// Tasks returns records matching the given query, newest first.
	Tasks(q *structs.Query) ([]*structs.TaskRecord, error)

	// TaskCounts returns per-status counts and the total for the query's
	// project / type scope. Status and paging filters are ignored: counts
	// describe the whole scope, not the page.
	TaskCounts(q *structs.Query) (map[structs.Status]int64, int64, error)

	Close() error
}
