// Package backends constructs blob-store backends by engine name.
package backends

import (
	"path/filepath"

	"github.com/rawbytedev/flatdb"
	"github.com/rawbytedev/flatdb/badgerdb"
	"github.com/rawbytedev/flatdb/boltdb"
	"github.com/rawbytedev/flatdb/configs"
	"github.com/rawbytedev/flatdb/pebbledb"
)

// Store is a backend with an owned storage engine that must be released
// with Close.
type Store interface {
	flatdb.Backend
	Close() error
}

// Open returns the blob store for the named engine ("badger", "pebble"
// or "bolt"), rooted at cfg.Default.Dir.
func Open(engine string, cfg *configs.StoreConfig) (Store, error) {
	if cfg == nil || cfg.Default == nil || cfg.Default.Dir == "" {
		return nil, ErrNoDir
	}
	switch engine {
	case "badger":
		return badgerdb.NewBadgerDB(badgerdb.Config{
			Dir:           cfg.Default.Dir,
			BadgerConfigs: cfg.BadgerConfigs,
		})
	case "pebble":
		return pebbledb.NewPebbleDB(pebbledb.Config{
			Dir:           cfg.Default.Dir,
			PebbleConfigs: cfg.PebbleConfigs,
		})
	case "bolt":
		return boltdb.NewBoltDB(boltdb.Config{
			Path:        filepath.Join(cfg.Default.Dir, "flat.db"),
			BoltConfigs: cfg.BoltConfigs,
		})
	default:
		return nil, ErrUnknownEngine
	}
}
