package engine

import (
	"crypto/tls"
)

// Options are options for the execution engine connection.
type Options struct {
	// URL encodes how we'll connect to the engine's broker (redis).
	URL string

	// TLSConfig needed to connect to the broker (optional).
	TLSConfig *tls.Config
}
