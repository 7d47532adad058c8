package engine

import (
	"context"
	"log"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sitevista/gantry/pkg/structs"
)

const (
	progressKeyPrefix = "gantry:progress:"
	cancelKeyPrefix   = "gantry:cancel:"

	fieldPercent = "percent"
	fieldStep    = "step"
	fieldDetail  = "detail"

	// stateTTL bounds how long progress / cancel keys outlive the task.
	// Live state is advisory; anything older than this is noise.
	stateTTL = 24 * time.Hour
)

func progressKey(taskID string) string { return progressKeyPrefix + taskID }
func cancelKey(taskID string) string   { return cancelKeyPrefix + taskID }

// redisReporter publishes worker progress into the broker's redis so the
// Live lookup on the poller side can see it, and polls the cancel flag.
type redisReporter struct {
	rdb *redis.Client
}

func (r *redisReporter) SetProgress(taskID string, percent float64, step, detail string) error {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	err := r.rdb.HSet(ctx, progressKey(taskID),
		fieldPercent, strconv.FormatFloat(percent, 'f', -1, 64),
		fieldStep, step,
		fieldDetail, detail,
	).Err()
	if err != nil {
		return err
	}
	return r.rdb.Expire(ctx, progressKey(taskID), stateTTL).Err()
}

// IsCancelled reports whether cancellation has been requested. Lookup errors
// read as "not cancelled"; the worker keeps going and the next checkpoint
// will ask again.
func (r *redisReporter) IsCancelled(taskID string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), lookupTimeout)
	defer cancel()

	n, err := r.rdb.Exists(ctx, cancelKey(taskID)).Result()
	if err != nil {
		log.Println("[engine] cancel flag lookup failed for", taskID, err)
		return false
	}
	return n > 0
}

// applyProgress folds a published progress hash into the live state. A task
// with published progress is mid-execution, so any non-terminal broker state
// reads as PROGRESS.
func applyProgress(ls *structs.LiveState, vals map[string]string) {
	if p, err := strconv.ParseFloat(vals[fieldPercent], 64); err == nil {
		ls.Percent = p
	}
	ls.Step = vals[fieldStep]
	ls.Detail = vals[fieldDetail]
	if !structs.IsTerminalStatus(ls.Status) {
		ls.Status = structs.PROGRESS
	}
}
