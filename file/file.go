// Package file provides a backend that keeps one file handle open for
// its whole lifetime.
package file

import (
	"context"
	"io"
	"os"

	"github.com/rawbytedev/flatdb"
	"github.com/rawbytedev/flatdb/helpers"
)

// File is a file-backed backend. The handle opened by the constructor
// is reused by every operation until Close.
//
// Write rewrites the file in place (seek, truncate, write, sync): a
// failure after the truncate step can leave the file corrupted. Use
// pathfile when the target must never be observed half-written.
type File struct {
	f *os.File
}

// Open opens the file at path for reading and writing. The handle stays
// open until Close.
func Open(path string) (*File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	return &File{f: f}, nil
}

// OpenOrCreate opens the file at path, creating an empty one if it does
// not exist. The returned flag is true when the file already existed;
// callers use it to decide between loading existing data and writing
// defaults. Open failures other than not-found propagate unchanged.
func OpenOrCreate(path string) (*File, bool, error) {
	b, err := Open(path)
	if err == nil {
		return b, true, nil
	}
	if !os.IsNotExist(err) {
		return nil, false, err
	}
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return nil, false, err
	}
	return &File{f: f}, false, nil
}

// Read seeks to the start of the file and returns everything up to EOF.
// The offset is left at EOF; Write seeks explicitly before touching the
// file.
func (b *File) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if _, err := b.f.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(b.f)
}

// Write replaces the file content with data and syncs it to stable
// storage before returning. Errors surface immediately; a failure
// between the truncate and the sync leaves the file inconsistent.
func (b *File) Write(ctx context.Context, data []byte) error {
	return helpers.IgnoreContext(ctx, func() error {
		if _, err := b.f.Seek(0, io.SeekStart); err != nil {
			return err
		}
		if err := b.f.Truncate(0); err != nil {
			return err
		}
		if _, err := b.f.Write(data); err != nil {
			return err
		}
		return b.f.Sync()
	})
}

// Close releases the underlying handle. The backend is unusable
// afterwards.
func (b *File) Close() error {
	return b.f.Close()
}

// Ensure File implements Backend at compile time
var _ flatdb.Backend = (*File)(nil)
