// Package memory provides a volatile in-process backend.
package memory

import (
	"context"

	"github.com/rawbytedev/flatdb"
)

// Memory is an in-memory backend. Operations touch only process memory
// and cannot fail once the upfront context gate passes. Content lives
// as long as the backend does.
type Memory struct {
	buf []byte
}

// New returns an empty in-memory backend.
func New() *Memory {
	return &Memory{}
}

// FromBytes returns a backend seeded with buf. The slice is adopted,
// not copied.
func FromBytes(buf []byte) *Memory {
	return &Memory{buf: buf}
}

// Read returns a copy of the current content.
func (m *Memory) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]byte, len(m.buf))
	copy(out, m.buf)
	return out, nil
}

// Write replaces the current content with data.
func (m *Memory) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.buf = data
	return nil
}

// Take returns the current content and leaves the backend empty. Unlike
// Read it hands out the internal slice without cloning.
func (m *Memory) Take() []byte {
	buf := m.buf
	m.buf = nil
	return buf
}

// Ensure Memory implements Backend at compile time
var _ flatdb.Backend = (*Memory)(nil)
