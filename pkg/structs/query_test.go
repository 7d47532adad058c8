package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuerySanitize(t *testing.T) {
	cases := []struct {
		Name   string
		Given  *Query
		Expect *Query
	}{
		{"Defaults", &Query{}, &Query{Limit: queryLimitDefault}},
		{"NegativeOffset", &Query{Limit: 10, Offset: -5}, &Query{Limit: 10}},
		{"LimitCapped", &Query{Limit: 5000}, &Query{Limit: queryLimitMax}},
		{"EmptySlicesNiled", &Query{Limit: 1, TaskIDs: []string{}, Types: []string{}, Statuses: []Status{}}, &Query{Limit: 1}},
		{"FiltersKept", &Query{Limit: 1, ProjectID: "p1", Types: []string{"export"}}, &Query{Limit: 1, ProjectID: "p1", Types: []string{"export"}}},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			c.Given.Sanitize()
			assert.Equal(t, c.Expect, c.Given)
		})
	}
}
