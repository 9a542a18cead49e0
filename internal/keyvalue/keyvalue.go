// Package keyvalue provides the persistence layer for the ledger.
//
// The ledger persists its collections as whole values under fixed keys, so
// all it needs from a backend is a minimal key-value contract. The concrete
// backing medium is an implementation detail of the Store.
package keyvalue

// Store is a key-value store holding the persisted state of the application.
type Store interface {
	// Get returns the value stored under key. The second return value
	// reports whether the key exists.
	Get(key string) ([]byte, bool, error)

	// Set stores value under key, overwriting any previous value.
	Set(key string, value []byte) error

	// Ping reports whether the store is reachable.
	Ping() error
}
