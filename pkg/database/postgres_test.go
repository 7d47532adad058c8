package database

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sitevista/gantry/pkg/structs"
)

func TestToTaskSqlArgs(t *testing.T) {
	task := &structs.TaskRecord{
		TaskSpec: structs.TaskSpec{
			Type:      "document_processing",
			Name:      "blueprint.pdf",
			ProjectID: "p1",
		},
		ID:              "t1",
		Status:          structs.PENDING,
		ProgressPercent: 12.5,
		CreatedAt:       100,
	}

	qstr, args := toTaskSqlArgs(1, task)

	assert.Equal(t, "($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21)", qstr)
	assert.Len(t, args, 21)
	assert.Equal(t, "document_processing", args[0])
	assert.Equal(t, "t1", args[8])
	assert.Equal(t, structs.PENDING, args[9])
	assert.Equal(t, 12.5, args[10])
	assert.Equal(t, int64(100), args[16])
}

func TestToTaskSqlArgsOffset(t *testing.T) {
	qstr, args := toTaskSqlArgs(5, &structs.TaskRecord{})

	assert.Len(t, args, 21)
	assert.Contains(t, qstr, "$5")
	assert.Contains(t, qstr, "$25")
	assert.NotContains(t, qstr, "$26")
}

func TestToSqlWhere(t *testing.T) {
	cases := []struct {
		Name         string
		Given        *structs.Query
		WithStatuses bool
		ExpectWhere  string
		ExpectArgs   []interface{}
	}{
		{
			"Empty",
			&structs.Query{},
			true,
			"",
			[]interface{}{},
		},
		{
			"Project",
			&structs.Query{ProjectID: "p1"},
			true,
			"WHERE project_id = $1",
			[]interface{}{"p1"},
		},
		{
			"ProjectAndIDs",
			&structs.Query{ProjectID: "p1", TaskIDs: []string{"a", "b"}},
			true,
			"WHERE project_id = $1 AND id IN ($2, $3)",
			[]interface{}{"p1", "a", "b"},
		},
		{
			"Types",
			&structs.Query{Types: []string{"export"}},
			true,
			"WHERE type IN ($1)",
			[]interface{}{"export"},
		},
		{
			"Statuses",
			&structs.Query{Statuses: []structs.Status{structs.SUCCESS, structs.FAILURE}},
			true,
			"WHERE status IN ($1, $2)",
			[]interface{}{"SUCCESS", "FAILURE"},
		},
		{
			"StatusesIgnoredForCounts",
			&structs.Query{ProjectID: "p1", Statuses: []structs.Status{structs.SUCCESS}},
			false,
			"WHERE project_id = $1",
			[]interface{}{"p1"},
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			where, args := toSqlWhere(c.Given, c.WithStatuses)
			assert.Equal(t, c.ExpectWhere, where)
			assert.Equal(t, c.ExpectArgs, args)
		})
	}
}

func TestStatusToStrings(t *testing.T) {
	assert.Nil(t, statusToStrings(nil))
	assert.Equal(t, []string{"PENDING", "REVOKED"}, statusToStrings([]structs.Status{structs.PENDING, structs.REVOKED}))
}
