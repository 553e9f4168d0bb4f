package store

// PathKey is the only mandatory key of a section.
const PathKey = "path"

// Pair is a single key/value entry of a section.
type Pair struct {
	Key   string
	Value string
}

// Section is a named, ordered set of string key/value pairs. Keys keep the
// order in which they were first set.
type Section struct {
	Name   string
	keys   []string
	values map[string]string
}

// NewSection creates an empty section.
func NewSection(name string) *Section {
	return &Section{
		Name:   name,
		values: make(map[string]string),
	}
}

// Keys returns the section keys in order.
func (s *Section) Keys() []string {
	return append([]string(nil), s.keys...)
}

// Get returns the value stored under key.
func (s *Section) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Set stores value under key, appending the key if it is new.
func (s *Section) Set(key, value string) {
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Delete removes key if present.
func (s *Section) Delete(key string) {
	if _, ok := s.values[key]; !ok {
		return
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
}

// Path returns the mandatory path value.
func (s *Section) Path() string {
	return s.values[PathKey]
}

// Pairs returns the key/value pairs in order.
func (s *Section) Pairs() []Pair {
	pairs := make([]Pair, 0, len(s.keys))
	for _, k := range s.keys {
		pairs = append(pairs, Pair{Key: k, Value: s.values[k]})
	}
	return pairs
}

// Map returns a copy of the values.
func (s *Section) Map() map[string]string {
	m := make(map[string]string, len(s.values))
	for k, v := range s.values {
		m[k] = v
	}
	return m
}

// Len returns the number of keys.
func (s *Section) Len() int {
	return len(s.keys)
}

func (s *Section) clone() *Section {
	c := NewSection(s.Name)
	for _, k := range s.keys {
		c.Set(k, s.values[k])
	}
	return c
}
