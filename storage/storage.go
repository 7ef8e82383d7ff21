// Package storage is the durable-blob layer behind the favorites and
// itinerary stores. Each key maps to one JSON blob and every write is a
// wholesale overwrite of that key, last-writer-wins.
package storage

import "errors"

// ErrUnavailable wraps any read/write failure of the underlying medium.
// Callers recover locally: in-memory state stays authoritative and the
// error is logged, never surfaced to the user.
var ErrUnavailable = errors.New("storage unavailable")

type Blob interface {
	// Get returns the blob for key, or nil with no error when the key has
	// never been written.
	Get(key string) ([]byte, error)
	Set(key string, data []byte) error
}
