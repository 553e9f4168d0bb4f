package registry

import (
	"fmt"
	"strings"

	"github.com/venvdir/venvdir/internal/store"
)

// NameKey is the synthesized key under which an entry exposes its name.
const NameKey = "name"

// Entry is a registered environment. Its name is not a stored key but is
// always surfaced as one by Get, Keys and Items.
type Entry struct {
	name    string
	section *store.Section
}

func newEntry(name string, section *store.Section) *Entry {
	return &Entry{name: name, section: section}
}

// Name returns the entry name.
func (e *Entry) Name() string {
	return e.name
}

// Path returns the environment root.
func (e *Entry) Path() string {
	return e.section.Path()
}

// Get returns the value for key. The "name" key is matched
// case-insensitively and yields the entry name; every other key is an
// exact metadata lookup.
func (e *Entry) Get(key string) (string, bool) {
	if isNameKey(key) {
		return e.name, true
	}
	return e.section.Get(key)
}

// Keys returns the metadata keys in stored order followed by "name". A
// stored key named "name" is shadowed by the entry name and left out.
func (e *Entry) Keys() []string {
	var keys []string
	for _, k := range e.section.Keys() {
		if !isNameKey(k) {
			keys = append(keys, k)
		}
	}
	return append(keys, NameKey)
}

// Items returns the metadata pairs in stored order followed by the name.
func (e *Entry) Items() []store.Pair {
	var items []store.Pair
	for _, p := range e.section.Pairs() {
		if !isNameKey(p.Key) {
			items = append(items, p)
		}
	}
	return append(items, store.Pair{Key: NameKey, Value: e.name})
}

func (e *Entry) String() string {
	return fmt.Sprintf("Virtual Env: (name=%s, path=%s)", e.name, e.Path())
}

func isNameKey(key string) bool {
	return strings.EqualFold(key, NameKey)
}
