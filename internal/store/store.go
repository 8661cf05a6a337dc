// Package store persists named aliases in a key/value configuration backend.
//
// The canonical backend is git's own configuration, addressed through the
// fixed "alias" section: one key per alias name, value = the normalized
// command body. An in-memory implementation exists for tests and any
// caller that wants to stage changes without touching git config.
package store

// Store reads and writes named alias entries.
//
// Implementations map an alias name to the configuration key
// "alias.<name>". Each method is an independent backend operation; there
// is no batching or transaction across entries.
type Store interface {
	// List returns the installed alias names in backend order.
	// Callers wanting sorted output sort the result themselves.
	List() ([]string, error)

	// Get returns the command body stored under name.
	// Returns errors.ErrNotFound if no such alias exists.
	Get(name string) (string, error)

	// Set creates or replaces the alias. When overwrite is false and the
	// name is already taken, it fails with errors.ErrConflict and leaves
	// the existing entry unchanged.
	Set(name, body string, overwrite bool) error

	// Remove deletes the alias.
	// Returns errors.ErrNotFound if no such alias exists.
	Remove(name string) error
}

// Section is the configuration section holding all alias entries.
const Section = "alias"
