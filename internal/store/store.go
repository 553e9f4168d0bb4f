// Package store persists venvdir entries in a single TOML file with one
// table per entry.
//
// The file is re-read in full on Open and rewritten in full on every
// mutation:
//
//	[web]
//	created = "2026-10-15T09:30:00Z"
//	path = "/home/u/.venvdir/venvs/web"
//
// Writes go to a temporary file that is renamed over the original, so a
// crash never leaves a truncated entries file. Update serializes
// read-modify-write cycles across processes with an advisory lock.
package store

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"

	"github.com/venvdir/venvdir/internal/errors"
	"github.com/venvdir/venvdir/internal/logging"
)

// Store is the in-memory view of an entries file.
type Store struct {
	path     string
	sections []*Section
	index    map[string]*Section
}

// Open loads the entries file at path. A missing file is initialized empty
// and written immediately so it exists after first use. A malformed file
// is a ConfigError; it is never repaired.
func Open(path string) (*Store, error) {
	s := &Store{
		path:  path,
		index: make(map[string]*Section),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, errors.IOError(fmt.Sprintf("failed to read entries file %s", path), err)
		}
		logging.Debug("initializing entries file", "path", path)
		if err := s.Save(); err != nil {
			return nil, err
		}
		return s, nil
	}

	if err := s.decode(data); err != nil {
		return nil, errors.ConfigError(fmt.Sprintf("failed to parse entries file %s", path), err)
	}

	return s, nil
}

// Path returns the location of the backing file.
func (s *Store) Path() string {
	return s.path
}

// Names returns all entry names in file order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.sections))
	for _, sec := range s.sections {
		names = append(names, sec.Name)
	}
	return names
}

// Has reports whether an entry exists.
func (s *Store) Has(name string) bool {
	_, ok := s.index[name]
	return ok
}

// Get returns a copy of the named section.
func (s *Store) Get(name string) (*Section, error) {
	sec, ok := s.index[name]
	if !ok {
		return nil, errors.EntryNotFound(name)
	}
	return sec.clone(), nil
}

// Create adds or overwrites the named section with path and any extra
// metadata, then persists the store. Uniqueness is the caller's concern;
// an existing section is replaced in place.
func (s *Store) Create(name, path string, meta ...Pair) error {
	if path == "" {
		return errors.ValidationError(fmt.Sprintf("entry '%s' requires a path", name))
	}

	sec := NewSection(name)
	sec.Set(PathKey, path)
	for _, p := range meta {
		if p.Key == PathKey {
			continue
		}
		sec.Set(p.Key, p.Value)
	}

	if old, ok := s.index[name]; ok {
		for i, existing := range s.sections {
			if existing == old {
				s.sections[i] = sec
				break
			}
		}
	} else {
		s.sections = append(s.sections, sec)
	}
	s.index[name] = sec

	return s.Save()
}

// Remove deletes the named section if present, then persists the store.
func (s *Store) Remove(name string) error {
	if sec, ok := s.index[name]; ok {
		delete(s.index, name)
		for i, existing := range s.sections {
			if existing == sec {
				s.sections = append(s.sections[:i], s.sections[i+1:]...)
				break
			}
		}
	}
	return s.Save()
}

// Save rewrites the whole entries file.
func (s *Store) Save() error {
	data, err := s.encode()
	if err != nil {
		return errors.IOError("failed to encode entries", err)
	}
	if err := writeFileAtomic(s.path, data, 0644); err != nil {
		return errors.IOError(fmt.Sprintf("failed to write entries file %s", s.path), err)
	}
	return nil
}

// Update runs fn against a freshly opened store while holding an exclusive
// lock on the entries file, so concurrent processes cannot interleave their
// read-modify-write cycles.
func Update(path string, fn func(*Store) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.IOError("failed to create entries directory", err)
	}

	unlock, err := lock(path + ".lock")
	if err != nil {
		return errors.IOError("failed to lock entries file", err)
	}
	defer func() {
		if err := unlock(); err != nil {
			logging.Warn("failed to release entries lock", "path", path, "error", err)
		}
	}()

	s, err := Open(path)
	if err != nil {
		return err
	}
	return fn(s)
}

func (s *Store) decode(data []byte) error {
	var raw map[string]map[string]string
	md, err := toml.Decode(string(data), &raw)
	if err != nil {
		return err
	}

	for _, key := range md.Keys() {
		name := key[0]
		values, ok := raw[name]
		if !ok {
			continue
		}
		sec, ok := s.index[name]
		if !ok {
			sec = NewSection(name)
			s.sections = append(s.sections, sec)
			s.index[name] = sec
		}
		if len(key) == 2 {
			sec.Set(key[1], values[key[1]])
		}
	}

	// Anything the metadata did not report, in a stable order.
	var rest []string
	for name := range raw {
		if _, ok := s.index[name]; !ok {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	for _, name := range rest {
		sec := NewSection(name)
		keys := make([]string, 0, len(raw[name]))
		for k := range raw[name] {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sec.Set(k, raw[name][k])
		}
		s.sections = append(s.sections, sec)
		s.index[name] = sec
	}

	for _, sec := range s.sections {
		if sec.Path() == "" {
			return fmt.Errorf("entry %q has no %s", sec.Name, PathKey)
		}
	}

	return nil
}

func (s *Store) encode() ([]byte, error) {
	var buf bytes.Buffer
	for i, sec := range s.sections {
		if i > 0 {
			buf.WriteByte('\n')
		}
		fmt.Fprintf(&buf, "[%s]\n", toml.Key{sec.Name}.String())

		enc := toml.NewEncoder(&buf)
		for _, p := range sec.Pairs() {
			if err := enc.Encode(map[string]string{p.Key: p.Value}); err != nil {
				return nil, fmt.Errorf("entry %q: %w", sec.Name, err)
			}
		}
	}
	return buf.Bytes(), nil
}

// writeFileAtomic writes data to a temporary file next to path and renames
// it into place.
func writeFileAtomic(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
