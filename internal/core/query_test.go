package core

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitevista/gantry/pkg/structs"
)

func seedProject(t *testing.T, svc *Service) {
	t.Helper()
	specFor := func(name string) *structs.TaskSpec {
		s := testSpec()
		s.Name = name
		return s
	}

	testClock = 1000000
	for i, id := range []string{"t1", "t2", "t3", "t4", "t5"} {
		testClock = 1000000 + int64(i)
		_, err := svc.Register(id, specFor(id+".pdf"))
		assert.Nil(t, err)
	}
	assert.Nil(t, svc.MarkCompleted("t1", nil))
	assert.Nil(t, svc.MarkFailed("t2", "boom", ""))
	assert.Nil(t, svc.MarkStarted("t3"))
	assert.Nil(t, svc.UpdateProgress("t4", 50, "ocr", ""))
	// t5 stays PENDING
}

func TestListTasksCounts(t *testing.T) {
	svc, _ := newTestService(t)
	seedProject(t, svc)

	page, err := svc.ListTasks(&structs.Query{ProjectID: "p1"})
	assert.Nil(t, err)

	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, int64(3), page.Running) // pending + started + progress
	assert.Equal(t, int64(1), page.Completed)
	assert.Equal(t, int64(1), page.Failed)
	assert.LessOrEqual(t, page.Running+page.Completed+page.Failed, page.Total)
	assert.Len(t, page.Tasks, 5)
}

func TestListTasksCountsWithRevoked(t *testing.T) {
	svc, _ := newTestService(t)
	seedProject(t, svc)

	res, err := svc.Cancel("t5")
	assert.Nil(t, err)
	assert.True(t, res.Cancelled)

	page, err := svc.ListTasks(&structs.Query{ProjectID: "p1"})
	assert.Nil(t, err)

	// the revoked task drops out of running but still counts in total
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, int64(2), page.Running)
	assert.Equal(t, int64(1), page.Completed)
	assert.Equal(t, int64(1), page.Failed)
	assert.Less(t, page.Running+page.Completed+page.Failed, page.Total)
}

func TestListTasksCountsIgnorePaging(t *testing.T) {
	svc, _ := newTestService(t)
	seedProject(t, svc)

	page, err := svc.ListTasks(&structs.Query{ProjectID: "p1", Limit: 2})
	assert.Nil(t, err)

	assert.Len(t, page.Tasks, 2)
	assert.Equal(t, int64(5), page.Total)
}

func TestListTasksProjectScope(t *testing.T) {
	svc, _ := newTestService(t)
	seedProject(t, svc)

	other := testSpec()
	other.ProjectID = "p2"
	_, err := svc.Register("x1", other)
	assert.Nil(t, err)

	page, err := svc.ListTasks(&structs.Query{ProjectID: "p2"})
	assert.Nil(t, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Len(t, page.Tasks, 1)
	assert.Equal(t, "x1", page.Tasks[0].ID)
}

func TestListTasksEnrichesNonTerminal(t *testing.T) {
	svc, eng := newTestService(t)
	seedProject(t, svc)

	eng.live = map[string]*structs.LiveState{
		"t3": {Status: structs.PROGRESS, Percent: 70, Step: "measurement"},
		"t1": {Status: structs.PROGRESS, Percent: 10}, // terminal, must be ignored
	}

	page, err := svc.ListTasks(&structs.Query{ProjectID: "p1"})
	assert.Nil(t, err)

	byID := map[string]*structs.TaskView{}
	for _, v := range page.Tasks {
		byID[v.ID] = v
	}

	assert.Equal(t, structs.PROGRESS, byID["t3"].Status)
	assert.Equal(t, float64(70), byID["t3"].ProgressPercent)
	assert.True(t, byID["t3"].Live)

	assert.Equal(t, structs.SUCCESS, byID["t1"].Status)
	assert.False(t, byID["t1"].Live)

	// engine has nothing for t4; durable checkpoint stands
	assert.Equal(t, float64(50), byID["t4"].ProgressPercent)
	assert.False(t, byID["t4"].Live)
}

func TestListTasksNewestFirst(t *testing.T) {
	svc, _ := newTestService(t)
	seedProject(t, svc)

	page, err := svc.ListTasks(&structs.Query{ProjectID: "p1"})
	assert.Nil(t, err)

	ids := []string{}
	for _, v := range page.Tasks {
		ids = append(ids, v.ID)
	}
	assert.Equal(t, []string{"t5", "t4", "t3", "t2", "t1"}, ids)
}
