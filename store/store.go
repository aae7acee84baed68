// Package store persists locktfin data in a BoltDB file
package store

import (
	"errors"
	"io/fs"
	"os"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/locktfin/internal/apperr"
)

const bucketName = "locktfin"

var (
	errLocktfinRunning = &apperr.Error{
		Message: "is locktfin already running? Only one instance can be active at a time",
	}

	errOpenDB = &apperr.Error{
		Message: "unable to open database",
	}

	errMissingBucket = &apperr.Error{
		Message: "bucket %q does not exist",
	}
)

// Client is a BoltDB backed KV.
type Client struct {
	*bolt.DB
}

// Get returns a copy of the value stored under key.
func (c *Client) Get(key string) ([]byte, error) {
	var value []byte

	err := c.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return errMissingBucket.Fmt(bucketName)
		}

		v := b.Get([]byte(key))
		if v != nil {
			// v is only valid for the life of the transaction
			value = append([]byte{}, v...)
		}

		return nil
	})

	return value, err
}

func (c *Client) Put(key string, value []byte) error {
	return c.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketName))
		if b == nil {
			return errMissingBucket.Fmt(bucketName)
		}

		return b.Put([]byte(key), value)
	})
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errLocktfinRunning
		}

		return nil, errOpenDB.Wrap(err)
	}

	return db, nil
}

// NewClient opens the database at dbPath and creates the locktfin bucket if
// it does not exist yet.
func NewClient(dbPath string) (*Client, error) {
	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Client{
		db,
	}, nil
}

// InUse reports whether another process holds the lock on the database at
// dbPath.
func InUse(dbPath string) bool {
	if _, err := os.Stat(dbPath); err != nil {
		return false
	}

	db, err := bolt.Open(dbPath, 0o600, &bolt.Options{
		Timeout: 100 * time.Millisecond,
	})
	if err == nil {
		_ = db.Close()
		return false
	}

	return errors.Is(err, bolt.ErrDatabaseOpen) ||
		errors.Is(err, bolt.ErrTimeout)
}
