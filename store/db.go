package store

// KV is the key-value storage the session log persists its history in.
type KV interface {
	// Get returns the value stored under key, or nil if the key is absent.
	Get(key string) ([]byte, error)
	// Put overwrites the value stored under key.
	Put(key string, value []byte) error
	// Close releases the underlying storage.
	Close() error
}
