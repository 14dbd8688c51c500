// Package pathfile provides a backend that retains only a file path and
// opens a fresh handle for every operation.
package pathfile

import (
	"context"
	"os"

	"github.com/rawbytedev/flatdb"
	"github.com/rawbytedev/flatdb/helpers"
)

// tmpSuffix is appended to the target path to name the staging file.
const tmpSuffix = ".tmp"

// testHookCrashBeforeRename runs between syncing the temporary file and
// renaming it over the target. Set only from tests.
var testHookCrashBeforeRename func()

// PathFile is a file-path-backed backend. No handle is held between
// operations, so two instances pointed at the same path can coexist;
// concurrent writes are still a race (last rename wins).
//
// Write stages through a sibling temporary file which is synced and
// then renamed over the target, so a reader sees either the old content
// or the new, never a mix. The parent directory is not fsynced after
// the rename; callers that need the rename itself to survive power loss
// must do that out of band. Symlinks at the target or temporary path
// are followed, not defended against.
type PathFile struct {
	path string
}

// Open ensures the file at path can be opened for reading and writing,
// then retains only the path. The probing handle is closed immediately.
func Open(path string) (*PathFile, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return &PathFile{path: path}, nil
}

// OpenOrCreate is Open, creating an empty file first when none exists.
// The returned flag is true when the file already existed. Open
// failures other than not-found propagate unchanged.
func OpenOrCreate(path string) (*PathFile, bool, error) {
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
	if err := f.Close(); err != nil {
		return nil, false, err
	}
	return &PathFile{path: path}, false, nil
}

// Read opens the file read-only and returns its entire content. It
// never creates or modifies the file. The read runs on a private
// handle, so an abandoned read cannot interfere with a later operation.
func (b *PathFile) Read(ctx context.Context) ([]byte, error) {
	return helpers.RunWithContext(ctx, func() ([]byte, error) {
		return os.ReadFile(b.path)
	})
}

// Write runs the atomic replace protocol: write data to <path>.tmp,
// sync it, close it, rename it over the target. A failure before the
// rename leaves the target untouched but may orphan the temporary file;
// cleanup of orphans is the caller's business. A failure of the rename
// itself is platform-dependent and must be treated as fatal.
func (b *PathFile) Write(ctx context.Context, data []byte) error {
	return helpers.IgnoreContext(ctx, func() error {
		tmp := b.path + tmpSuffix
		f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
		if err != nil {
			return err
		}
		if _, err := f.Write(data); err != nil {
			f.Close()
			return err
		}
		if err := f.Sync(); err != nil {
			f.Close()
			return err
		}
		if err := f.Close(); err != nil {
			return err
		}
		if testHookCrashBeforeRename != nil {
			testHookCrashBeforeRename()
		}
		return os.Rename(tmp, b.path)
	})
}

// Ensure PathFile implements Backend at compile time
var _ flatdb.Backend = (*PathFile)(nil)
