//go:build !unix

package store

// lock is a no-op where flock is unavailable; concurrent writers fall back
// to last-writer-wins.
func lock(path string) (func() error, error) {
	return func() error { return nil }, nil
}
