// Package clientstore is the durable per-browser key/value storage used for the
// bearer token and the remembered username.
package clientstore

// Store is the storage capability handed to the shell and the login panel.
type Store interface {
	// Get returns the value stored under key and whether it exists.
	Get(key string) (string, bool)
	// Set stores value under key.
	Set(key, value string) error
	// Clear removes key. Clearing a missing key is not an error.
	Clear(key string) error
}
