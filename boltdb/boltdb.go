// Package boltdb persists the buffer in a bbolt database.
package boltdb

import (
	"context"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

// The buffer lives under a fixed key in a fixed bucket.
var (
	blobBucket = []byte("flatdb")
	blobKey    = []byte("blob")
)

type BoltDB struct {
	db *bolt.DB
}

// specific boltdb options
type Config struct {
	Path        string
	BoltConfigs *bolt.Options
}

func DefaultOptions(Path string) *Config {
	return &Config{Path, nil}
}

// NewBoltDB opens (or creates) a bbolt database at cfg.Path and returns
// a backend storing the buffer under a fixed bucket and key.
func NewBoltDB(cfg Config) (*BoltDB, error) {
	db, err := bolt.Open(cfg.Path, 0600, cfg.BoltConfigs)
	if err != nil {
		return nil, fmt.Errorf("opening bolt db: %w", err)
	}
	return &BoltDB{db: db}, nil
}

// Read returns the stored buffer. A store that has never been written
// reads as empty.
func (s *BoltDB) Read(ctx context.Context) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(blobBucket)
		if b == nil {
			data = []byte{}
			return nil
		}
		data = append([]byte{}, b.Get(blobKey)...)
		return nil
	})
	return data, err
}

// Write replaces the stored buffer with data.
func (s *BoltDB) Write(ctx context.Context, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	return s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists(blobBucket)
		if err != nil {
			return fmt.Errorf("creating bucket: %w", err)
		}
		return b.Put(blobKey, data)
	})
}

// Close closes the database and releases all resources.
func (s *BoltDB) Close() error {
	return s.db.Close()
}
