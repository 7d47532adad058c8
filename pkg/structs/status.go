package structs

import (
	"strings"
)

type Status string

const (
	// transient states
	PENDING  Status = "PENDING"
	STARTED  Status = "STARTED"
	PROGRESS Status = "PROGRESS"

	// end states
	SUCCESS Status = "SUCCESS"
	FAILURE Status = "FAILURE"
	REVOKED Status = "REVOKED"
)

func IsTerminalStatus(status Status) bool {
	switch status {
	case SUCCESS, FAILURE, REVOKED:
		return true
	default:
		return false
	}
}

func ToStatus(s string) Status {
	switch strings.ToUpper(s) {
	case "PENDING":
		return PENDING
	case "STARTED":
		return STARTED
	case "PROGRESS":
		return PROGRESS
	case "SUCCESS":
		return SUCCESS
	case "FAILURE":
		return FAILURE
	case "REVOKED":
		return REVOKED
	default:
		return ""
	}
}
