package venv

import (
	"context"
	"os"
	"path/filepath"
	"sync"
)

// MockCreator implements Creator for testing. Unless Err is set it creates
// the target directory with a pyvenv.cfg marker so existence checks see it.
type MockCreator struct {
	mu sync.Mutex

	// Calls records every Create invocation.
	Calls []MockCall

	// Err is returned by Create when set; nothing is created.
	Err error

	// SkipDisk disables writing to the real filesystem.
	SkipDisk bool
}

// MockCall records a Create invocation.
type MockCall struct {
	Target  string
	WithPip bool
}

// NewMockCreator creates a new MockCreator.
func NewMockCreator() *MockCreator {
	return &MockCreator{}
}

func (m *MockCreator) Create(ctx context.Context, target string, withPip bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, MockCall{Target: target, WithPip: withPip})

	if m.Err != nil {
		return m.Err
	}
	if m.SkipDisk {
		return nil
	}
	if err := os.MkdirAll(target, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(target, "pyvenv.cfg"), []byte("home = /usr/bin\n"), 0644)
}

// CallCount returns the number of Create invocations.
func (m *MockCreator) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
