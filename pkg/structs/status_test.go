package structs

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsTerminalStatus(t *testing.T) {
	cases := []struct {
		Name   string
		Given  Status
		Expect bool
	}{
		{"StatusUndefined", "x", false},
		{"StatusPending", PENDING, false},
		{"StatusStarted", STARTED, false},
		{"StatusProgress", PROGRESS, false},
		{"StatusSuccess", SUCCESS, true},
		{"StatusFailure", FAILURE, true},
		{"StatusRevoked", REVOKED, true},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, IsTerminalStatus(c.Given), c.Expect)
		})
	}
}

func TestToStatus(t *testing.T) {
	cases := []struct {
		Name   string
		Given  string
		Expect Status
	}{
		{"StatusUndefined", "x", ""},
		{"StatusPending", "PENDING", PENDING},
		{"StatusStarted", "started", STARTED},
		{"StatusProgress", "PROGRESS", PROGRESS},
		{"StatusSuccess", "SUCCESS", SUCCESS},
		{"StatusFailure", "Failure", FAILURE},
		{"StatusRevoked", "REVOKED", REVOKED},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			assert.Equal(t, ToStatus(c.Given), c.Expect)
		})
	}
}
