// Package format provides the codecs that turn typed data into the
// bytes a backend stores, and back.
package format

// Format converts between a typed value and its stored byte form.
type Format interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
}
