package engine

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"

	"github.com/sitevista/gantry/internal/utils"
	ie "github.com/sitevista/gantry/pkg/errors"
	"github.com/sitevista/gantry/pkg/structs"
)

const (
	workQueue = "gantry:work"

	lookupTimeout = 2 * time.Second

	workerConcurrency = 10
)

// Asynq adapts an asynq broker/worker runtime to the Engine interface.
//
// Asynq itself exposes task state via its Inspector but has no progress
// payload channel, so workers publish percent/step/detail into a redis hash
// (via the Reporter) which Live folds into the view. Cancellation intent is
// a redis flag workers poll, plus a best-effort CancelProcessing so the
// handler's context is cancelled too.
type Asynq struct {
	opts *Options

	ins *asynq.Inspector
	cli *asynq.Client
	rdb *redis.Client

	// if Register is called we're intended to start a server
	lock sync.Mutex
	mux  *asynq.ServeMux
	srv  *asynq.Server
}

func NewAsynq(opts *Options) (*Asynq, error) {
	rco := asynq.RedisClientOpt{Addr: opts.URL, TLSConfig: opts.TLSConfig}
	return &Asynq{
		opts: opts,
		ins:  asynq.NewInspector(rco),
		cli:  asynq.NewClient(rco),
		rdb:  redis.NewClient(&redis.Options{Addr: opts.URL, TLSConfig: opts.TLSConfig}),
	}, nil
}

func (a *Asynq) Close() error {
	if a.srv != nil {
		a.srv.Stop()
		a.srv.Shutdown()
	}
	a.cli.Close()
	return a.rdb.Close()
}

// Enqueue dispatches work and returns the engine-assigned task id. The id is
// minted here so uniqueness holds across brokers and restarts.
func (a *Asynq) Enqueue(taskType string, payload []byte) (string, error) {
	info, err := a.cli.Enqueue(
		asynq.NewTask(taskType, payload),
		asynq.Queue(workQueue),
		asynq.TaskID(utils.NewRandomID()),
	)
	if err != nil {
		return "", err
	}
	return info.ID, nil
}

// Live returns the broker's current view of the task, overlaid with any
// progress the worker has published.
func (a *Asynq) Live(taskID string) (*structs.LiveState, error) {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	vals, rerr := a.rdb.HGetAll(ctx, progressKey(taskID)).Result()
	haveProgress := rerr == nil && len(vals) > 0

	info, ierr := a.ins.GetTaskInfo(workQueue, taskID)
	if ierr != nil && !haveProgress {
		return nil, fmt.Errorf("%w %v", ie.ErrEngineUnavailable, ierr)
	}

	ls := &structs.LiveState{Status: structs.PENDING}
	if ierr == nil {
		ls.Status = toLiveStatus(info.State)
	}
	if haveProgress {
		applyProgress(ls, vals)
	}
	return ls, nil
}

// SignalCancel records cancellation intent where the worker will see it and
// asks asynq to cancel the handler's context.
func (a *Asynq) SignalCancel(taskID string) error {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	setErr := a.rdb.Set(ctx, cancelKey(taskID), "1", stateTTL).Err()

	// Best effort; asynq can't guarantee the worker sees this.
	cpErr := a.ins.CancelProcessing(taskID)

	if setErr != nil && cpErr != nil {
		return fmt.Errorf("%w %v / %v", ie.ErrCancelRejected, setErr, cpErr)
	}
	return nil
}

func (a *Asynq) Register(taskType string, h Handler) error {
	if a.mux == nil {
		a.buildServer()
	}
	a.mux.HandleFunc(taskType, func(ctx context.Context, t *asynq.Task) error {
		id, ok := asynq.GetTaskID(ctx)
		if !ok {
			return fmt.Errorf("%w task id missing from context", ie.ErrInvalidState)
		}
		return h(ctx, id, t.Payload())
	})
	return nil
}

func (a *Asynq) Run() error {
	if a.mux == nil {
		a.buildServer()
	}
	return a.srv.Run(a.mux)
}

func (a *Asynq) Reporter() Reporter {
	return &redisReporter{rdb: a.rdb}
}

func (a *Asynq) buildServer() {
	a.lock.Lock()
	defer a.lock.Unlock()
	if a.mux != nil {
		// someone locked and set this first
		return
	}
	a.srv = asynq.NewServer(
		asynq.RedisClientOpt{Addr: a.opts.URL, TLSConfig: a.opts.TLSConfig},
		asynq.Config{
			Queues:      map[string]int{workQueue: 1},
			Concurrency: workerConcurrency,
		},
	)
	a.mux = asynq.NewServeMux()
}

// toLiveStatus maps asynq task states onto the tracking state machine.
func toLiveStatus(st asynq.TaskState) structs.Status {
	switch st {
	case asynq.TaskStateActive:
		return structs.STARTED
	case asynq.TaskStateCompleted:
		return structs.SUCCESS
	case asynq.TaskStateArchived:
		return structs.FAILURE
	default:
		// pending, scheduled, retry, aggregating
		return structs.PENDING
	}
}
