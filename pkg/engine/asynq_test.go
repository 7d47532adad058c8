package engine

import (
	"testing"

	"github.com/hibiken/asynq"
	"github.com/stretchr/testify/assert"

	"github.com/sitevista/gantry/pkg/structs"
)

func TestToLiveStatus(t *testing.T) {
	cases := []struct {
		Name   string
		Given  asynq.TaskState
		Expect structs.Status
	}{
		{"Active", asynq.TaskStateActive, structs.STARTED},
		{"Completed", asynq.TaskStateCompleted, structs.SUCCESS},
		{"Archived", asynq.TaskStateArchived, structs.FAILURE},
		{"Pending", asynq.TaskStatePending, structs.PENDING},
		{"Scheduled", asynq.TaskStateScheduled, structs.PENDING},
		{"Retry", asynq.TaskStateRetry, structs.PENDING},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, c.Expect, toLiveStatus(c.Given))
		})
	}
}

func TestApplyProgress(t *testing.T) {
	cases := []struct {
		Name   string
		Status structs.Status
		Given  map[string]string
		Expect *structs.LiveState
	}{
		{
			"PromotesToProgress",
			structs.STARTED,
			map[string]string{fieldPercent: "42.5", fieldStep: "parsing", fieldDetail: "sheet 3"},
			&structs.LiveState{Status: structs.PROGRESS, Percent: 42.5, Step: "parsing", Detail: "sheet 3"},
		},
		{
			"TerminalKept",
			structs.SUCCESS,
			map[string]string{fieldPercent: "90", fieldStep: "export"},
			&structs.LiveState{Status: structs.SUCCESS, Percent: 90, Step: "export"},
		},
		{
			"BadPercentIgnored",
			structs.PENDING,
			map[string]string{fieldPercent: "not-a-number", fieldStep: "upload"},
			&structs.LiveState{Status: structs.PROGRESS, Step: "upload"},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			ls := &structs.LiveState{Status: c.Status}
			applyProgress(ls, c.Given)
			assert.Equal(t, c.Expect, ls)
		})
	}
}

func TestStateKeys(t *testing.T) {
	assert.Equal(t, "gantry:progress:t1", progressKey("t1"))
	assert.Equal(t, "gantry:cancel:t1", cancelKey("t1"))
}
