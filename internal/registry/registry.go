// Package registry is the domain layer over the entries store. It enforces
// the existence and uniqueness rules around creating, adding and removing
// environments and hands out Entry values.
package registry

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	securejoin "github.com/cyphar/filepath-securejoin"

	"github.com/venvdir/venvdir/internal/config"
	"github.com/venvdir/venvdir/internal/errors"
	"github.com/venvdir/venvdir/internal/logging"
	"github.com/venvdir/venvdir/internal/store"
	"github.com/venvdir/venvdir/internal/system"
	"github.com/venvdir/venvdir/internal/venv"
)

// CreatedKey records when an entry was registered.
const CreatedKey = "created"

// Registry maps names to environments. It opens the entries store on every
// call and keeps no state between calls.
type Registry struct {
	entriesFile string
	fs          system.FileSystem
	creator     venv.Creator
	defaultDir  func() (string, error)
	withPip     bool
	now         func() time.Time
}

// Option configures a Registry.
type Option func(*Registry)

// WithFS sets the filesystem used for existence checks and removal.
func WithFS(fs system.FileSystem) Option {
	return func(r *Registry) {
		r.fs = fs
	}
}

// WithCreator sets the environment creator.
func WithCreator(c venv.Creator) Option {
	return func(r *Registry) {
		r.creator = c
	}
}

// WithDefaultDir sets the resolver for the base path used when Create is
// called without one.
func WithDefaultDir(fn func() (string, error)) Option {
	return func(r *Registry) {
		r.defaultDir = fn
	}
}

// WithPip controls whether created environments include pip.
func WithPip(withPip bool) Option {
	return func(r *Registry) {
		r.withPip = withPip
	}
}

// WithClock overrides the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(r *Registry) {
		r.now = now
	}
}

// New returns a Registry backed by the entries file at entriesFile.
func New(entriesFile string, opts ...Option) *Registry {
	r := &Registry{
		entriesFile: entriesFile,
		fs:          system.DefaultFS(),
		withPip:     true,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// List returns every entry in store order.
func (r *Registry) List() ([]*Entry, error) {
	s, err := store.Open(r.entriesFile)
	if err != nil {
		return nil, err
	}

	names := s.Names()
	entries := make([]*Entry, 0, len(names))
	for _, name := range names {
		sec, err := s.Get(name)
		if err != nil {
			return nil, err
		}
		entries = append(entries, newEntry(name, sec))
	}
	return entries, nil
}

// Get returns the named entry or an EntryNotFound error.
func (r *Registry) Get(name string) (*Entry, error) {
	s, err := store.Open(r.entriesFile)
	if err != nil {
		return nil, err
	}
	sec, err := s.Get(name)
	if err != nil {
		return nil, err
	}
	return newEntry(name, sec), nil
}

// Create builds a new environment at base/name and registers it. With an
// empty base the default environments directory is used; an explicit base
// must already exist. The stored path is the joined environment root.
func (r *Registry) Create(ctx context.Context, name, base string) (*Entry, error) {
	if err := config.ValidateEntryName(name); err != nil {
		return nil, err
	}

	if base == "" {
		if r.defaultDir == nil {
			return nil, errors.ConfigError("no default environments directory configured", nil)
		}
		dir, err := r.defaultDir()
		if err != nil {
			return nil, err
		}
		base = dir
	} else if !r.fs.Exists(base) {
		return nil, errors.BasePathNotFound(base)
	}

	absBase, err := filepath.Abs(base)
	if err != nil {
		return nil, errors.IOError(fmt.Sprintf("failed to resolve base path %s", base), err)
	}
	envPath, err := securejoin.SecureJoin(absBase, name)
	if err != nil {
		return nil, errors.IOError(fmt.Sprintf("failed to join %s onto %s", name, absBase), err)
	}

	if r.fs.Exists(envPath) {
		return nil, errors.EntryAlreadyExists(envPath)
	}

	var entry *Entry
	err = store.Update(r.entriesFile, func(s *store.Store) error {
		if s.Has(name) {
			return errors.EntryAlreadyRegistered(name)
		}

		logging.Debug("creating environment", "name", name, "path", envPath, "with_pip", r.withPip)
		if err := r.creator.Create(ctx, envPath, r.withPip); err != nil {
			return errors.CreationFailed(envPath, err)
		}

		created := store.Pair{Key: CreatedKey, Value: r.now().UTC().Format(time.RFC3339)}
		if err := s.Create(name, envPath, created); err != nil {
			return err
		}

		sec, err := s.Get(name)
		if err != nil {
			return err
		}
		entry = newEntry(name, sec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Add registers an existing environment at path without creating it. An
// existing entry with the same name is overwritten. The name is only a
// section key here, so any non-empty name is accepted.
func (r *Registry) Add(name, path string) (*Entry, error) {
	if name == "" {
		return nil, errors.ValidationError("entry name cannot be empty")
	}
	if !r.fs.Exists(path) {
		return nil, errors.PathNotFound(path)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.IOError(fmt.Sprintf("failed to resolve path %s", path), err)
	}

	var entry *Entry
	err = store.Update(r.entriesFile, func(s *store.Store) error {
		if s.Has(name) {
			logging.Debug("overwriting entry", "name", name, "path", absPath)
		}
		created := store.Pair{Key: CreatedKey, Value: r.now().UTC().Format(time.RFC3339)}
		if err := s.Create(name, absPath, created); err != nil {
			return err
		}
		sec, err := s.Get(name)
		if err != nil {
			return err
		}
		entry = newEntry(name, sec)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Remove deletes the entry's environment directory and then its record.
// If the record cannot be removed after the files are gone, running Remove
// again completes the job since deleting a missing directory succeeds.
func (r *Registry) Remove(name string) error {
	return store.Update(r.entriesFile, func(s *store.Store) error {
		sec, err := s.Get(name)
		if err != nil {
			return err
		}

		logging.Debug("removing environment", "name", name, "path", sec.Path())
		if err := r.fs.RemoveAll(sec.Path()); err != nil {
			return errors.IOError(fmt.Sprintf("failed to remove %s", sec.Path()), err)
		}
		return s.Remove(name)
	})
}

// Forget removes the entry's record but leaves its files in place.
func (r *Registry) Forget(name string) error {
	return store.Update(r.entriesFile, func(s *store.Store) error {
		if !s.Has(name) {
			return errors.EntryNotFound(name)
		}
		return s.Remove(name)
	})
}
