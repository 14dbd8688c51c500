package configs

import (
	"github.com/cockroachdb/pebble"
	"github.com/dgraph-io/badger/v4"
	bolt "go.etcd.io/bbolt"
)

type StoreConfig struct {
	BadgerConfigs *badger.Options
	PebbleConfigs *pebble.Options
	BoltConfigs   *bolt.Options
	Default       *DefaultOptions
}

type DefaultOptions struct {
	Dir string // badger and pebble take a directory, bbolt gets a file inside it
}
