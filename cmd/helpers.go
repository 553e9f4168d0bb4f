package cmd

import (
	"github.com/venvdir/venvdir/internal/app"
	"github.com/venvdir/venvdir/internal/registry"
)

// openRegistry returns a registry over the default app's entries file.
func openRegistry(opts ...registry.Option) (*registry.Registry, error) {
	return app.Default.Registry(opts...)
}

// listEntries lists every registered entry.
func listEntries() ([]*registry.Entry, error) {
	reg, err := openRegistry()
	if err != nil {
		return nil, err
	}
	return reg.List()
}

// loadEntry loads a single entry or returns an EntryNotFound error.
func loadEntry(name string) (*registry.Entry, error) {
	reg, err := openRegistry()
	if err != nil {
		return nil, err
	}
	return reg.Get(name)
}
