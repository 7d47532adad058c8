package core

import (
	"time"

	"github.com/sitevista/gantry/pkg/database"
	"github.com/sitevista/gantry/pkg/engine"
	"github.com/sitevista/gantry/pkg/structs"
)

// timeNow is swapped out in tests.
var timeNow = func() int64 { return time.Now().Unix() }

// Service is the task-lifecycle tracking service. It is stateless: all
// shared state lives in the durable store (one row per task) and in the
// execution engine, so any number of Service instances can run concurrently.
type Service struct {
	db  database.Database
	eng engine.Engine
}

func NewService(db database.Database, eng engine.Engine) (*Service, error) {
	return &Service{db: db, eng: eng}, nil
}

func (c *Service) Close() error {
	c.eng.Close()
	c.db.Close()
	return nil
}

// Dispatch hands work to the execution engine and registers the durable
// record for it in one step, so a poller can find the task as soon as the
// caller gets its id back.
func (c *Service) Dispatch(spec *structs.TaskSpec, payload []byte) (*structs.TaskRecord, error) {
	if err := validateTaskSpec(spec); err != nil {
		return nil, err
	}
	id, err := c.eng.Enqueue(spec.Type, payload)
	if err != nil {
		return nil, err
	}
	return c.Register(id, spec)
}

// RegisterHandler registers a worker handler for a task type.
func (c *Service) RegisterHandler(taskType string, h engine.Handler) error {
	return c.eng.Register(taskType, h)
}

// Run processes engine work until Close is called. Blocks.
func (c *Service) Run() error {
	return c.eng.Run()
}

// Reporter returns the progress / cancellation capability for worker code.
func (c *Service) Reporter() engine.Reporter {
	return c.eng.Reporter()
}
