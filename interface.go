package flatdb

import "context"

// Backend defines the contract for a pluggable byte-persistence medium.
// A backend holds exactly one buffer; every write replaces it wholesale.
//
// Backends do no internal locking: callers must not issue concurrent
// operations against the same instance. Database is the layer that
// serializes access.
type Backend interface {
	// Read returns the entire current content of the backend. It must
	// reflect the most recent successful Write with no missing or
	// extra bytes.
	Read(ctx context.Context) ([]byte, error)
	// Write replaces the entire content of the backend with data. On
	// failure the previous content must be treated as possibly
	// corrupted; see the concrete backends for their exact guarantees.
	Write(ctx context.Context, data []byte) error
}
