package core

import (
	"fmt"

	ie "github.com/sitevista/gantry/pkg/errors"
	"github.com/sitevista/gantry/pkg/structs"
)

const (
	// max values
	maxNameLength     = 500
	maxTypeLength     = 500
	maxMetadataLength = 10000
)

func validateTaskSpec(t *structs.TaskSpec) error {
	if t == nil || t.Type == "" {
		return ie.ErrNoTaskType
	}
	if len(t.Type) > maxTypeLength {
		return fmt.Errorf("%w task type %s is %d chars, max %d", ie.ErrMaxExceeded, t.Type, len(t.Type), maxTypeLength)
	}
	if len(t.Name) > maxNameLength {
		return fmt.Errorf("%w task name %s is %d chars, max %d", ie.ErrMaxExceeded, t.Name, len(t.Name), maxNameLength)
	}
	if t.Metadata != nil && len(t.Metadata) > maxMetadataLength {
		return fmt.Errorf("%w task metadata is %d bytes, max %d", ie.ErrMaxExceeded, len(t.Metadata), maxMetadataLength)
	}
	return nil
}
