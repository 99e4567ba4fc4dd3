// internal/state/mock.go
package state

import "sync"

// Mock is a test double for Manager.
type Mock struct {
	mu        sync.Mutex
	selection *string
	saved     []string
	loadErr   error
	closed    bool
}

// NewMock creates a new mock state manager for testing.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) Selection() (string, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return "", false, m.loadErr
	}
	if m.selection == nil {
		return "", false, nil
	}
	return *m.selection, true, nil
}

func (m *Mock) SaveSelection(ref string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selection = &ref
	m.saved = append(m.saved, ref)
}

func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSelection(ref string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.selection = &ref
}

func (m *Mock) SetLoadError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.loadErr = err
}

// Saved returns every reference passed to SaveSelection, in order.
func (m *Mock) Saved() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.saved...)
}

func (m *Mock) IsClosed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.closed
}

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
