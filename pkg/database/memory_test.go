package database

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	ie "github.com/sitevista/gantry/pkg/errors"
	"github.com/sitevista/gantry/pkg/structs"
)

func newTask(id, project string, status structs.Status, createdAt int64) *structs.TaskRecord {
	return &structs.TaskRecord{
		TaskSpec: structs.TaskSpec{
			Type:      "document_processing",
			Name:      id + ".pdf",
			ProjectID: project,
		},
		ID:        id,
		Status:    status,
		CreatedAt: createdAt,
	}
}

func TestMemoryInsertTask(t *testing.T) {
	db := NewMemory()

	err := db.InsertTask(newTask("t1", "p1", structs.PENDING, 100))
	assert.Nil(t, err)

	err = db.InsertTask(newTask("t1", "p1", structs.PENDING, 100))
	assert.ErrorIs(t, err, ie.ErrDuplicateTask)

	got, err := db.Task("t1")
	assert.Nil(t, err)
	assert.Equal(t, structs.PENDING, got.Status)
}

func TestMemoryTaskNotFound(t *testing.T) {
	db := NewMemory()

	_, err := db.Task("nope")
	assert.ErrorIs(t, err, ie.ErrNotFound)
}

func TestMemoryTaskReturnsCopy(t *testing.T) {
	db := NewMemory()
	assert.Nil(t, db.InsertTask(newTask("t1", "p1", structs.PENDING, 100)))

	got, err := db.Task("t1")
	assert.Nil(t, err)
	got.Status = structs.SUCCESS

	again, err := db.Task("t1")
	assert.Nil(t, err)
	assert.Equal(t, structs.PENDING, again.Status)
}

func TestMemoryUpdateTask(t *testing.T) {
	db := NewMemory()
	assert.Nil(t, db.InsertTask(newTask("t1", "p1", structs.PENDING, 100)))

	got, err := db.UpdateTask("t1", func(in *structs.TaskRecord) error {
		in.Status = structs.STARTED
		in.StartedAt = 110
		return nil
	})
	assert.Nil(t, err)
	assert.Equal(t, structs.STARTED, got.Status)
	assert.Equal(t, int64(110), got.StartedAt)

	stored, err := db.Task("t1")
	assert.Nil(t, err)
	assert.Equal(t, structs.STARTED, stored.Status)
}

func TestMemoryUpdateTaskMutateErrorKeepsRecord(t *testing.T) {
	db := NewMemory()
	assert.Nil(t, db.InsertTask(newTask("t1", "p1", structs.PENDING, 100)))

	_, err := db.UpdateTask("t1", func(in *structs.TaskRecord) error {
		in.Status = structs.SUCCESS
		return fmt.Errorf("%w dropped", ie.ErrStaleWrite)
	})
	assert.ErrorIs(t, err, ie.ErrStaleWrite)

	stored, err := db.Task("t1")
	assert.Nil(t, err)
	assert.Equal(t, structs.PENDING, stored.Status)
}

func TestMemoryUpdateTaskNotFound(t *testing.T) {
	db := NewMemory()

	_, err := db.UpdateTask("nope", func(in *structs.TaskRecord) error { return nil })
	assert.ErrorIs(t, err, ie.ErrNotFound)
}

func TestMemoryTasks(t *testing.T) {
	db := NewMemory()
	assert.Nil(t, db.InsertTask(newTask("t1", "p1", structs.SUCCESS, 100)))
	assert.Nil(t, db.InsertTask(newTask("t2", "p1", structs.STARTED, 200)))
	assert.Nil(t, db.InsertTask(newTask("t3", "p2", structs.PENDING, 300)))

	cases := []struct {
		Name   string
		Given  *structs.Query
		Expect []string
	}{
		{"All", &structs.Query{Limit: 10}, []string{"t3", "t2", "t1"}},
		{"Project", &structs.Query{Limit: 10, ProjectID: "p1"}, []string{"t2", "t1"}},
		{"ByID", &structs.Query{Limit: 10, TaskIDs: []string{"t1", "t3"}}, []string{"t3", "t1"}},
		{"ByStatus", &structs.Query{Limit: 10, Statuses: []structs.Status{structs.STARTED}}, []string{"t2"}},
		{"Limit", &structs.Query{Limit: 2}, []string{"t3", "t2"}},
		{"Offset", &structs.Query{Limit: 10, Offset: 1}, []string{"t2", "t1"}},
		{"OffsetPastEnd", &structs.Query{Limit: 10, Offset: 5}, []string{}},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			c.Given.Sanitize()
			got, err := db.Tasks(c.Given)
			assert.Nil(t, err)

			ids := []string{}
			for _, task := range got {
				ids = append(ids, task.ID)
			}
			assert.Equal(t, c.Expect, ids)
		})
	}
}

func TestMemoryTasksOrderTiesOnID(t *testing.T) {
	db := NewMemory()
	assert.Nil(t, db.InsertTask(newTask("b", "p1", structs.PENDING, 100)))
	assert.Nil(t, db.InsertTask(newTask("a", "p1", structs.PENDING, 100)))

	got, err := db.Tasks(&structs.Query{Limit: 10})
	assert.Nil(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
}

func TestMemoryTaskCounts(t *testing.T) {
	db := NewMemory()
	assert.Nil(t, db.InsertTask(newTask("t1", "p1", structs.SUCCESS, 100)))
	assert.Nil(t, db.InsertTask(newTask("t2", "p1", structs.STARTED, 200)))
	assert.Nil(t, db.InsertTask(newTask("t3", "p1", structs.FAILURE, 300)))
	assert.Nil(t, db.InsertTask(newTask("t4", "p2", structs.PENDING, 400)))

	counts, total, err := db.TaskCounts(&structs.Query{ProjectID: "p1"})
	assert.Nil(t, err)
	assert.Equal(t, int64(3), total)
	assert.Equal(t, int64(1), counts[structs.SUCCESS])
	assert.Equal(t, int64(1), counts[structs.STARTED])
	assert.Equal(t, int64(1), counts[structs.FAILURE])
}

func TestMemoryTaskCountsIgnoreStatusFilter(t *testing.T) {
	db := NewMemory()
	assert.Nil(t, db.InsertTask(newTask("t1", "p1", structs.SUCCESS, 100)))
	assert.Nil(t, db.InsertTask(newTask("t2", "p1", structs.STARTED, 200)))

	counts, total, err := db.TaskCounts(&structs.Query{ProjectID: "p1", Statuses: []structs.Status{structs.SUCCESS}})
	assert.Nil(t, err)
	assert.Equal(t, int64(2), total)
	assert.Equal(t, int64(1), counts[structs.STARTED])
}
