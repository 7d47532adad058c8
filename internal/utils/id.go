package utils

import (
	"github.com/google/uuid"
)

// NewRandomID returns a new unique identifier.
func NewRandomID() string {
	return uuid.NewString()
}
