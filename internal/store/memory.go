package store

import "github.com/thoreinstein/git-alias/internal/errors"

// Memory is an in-memory Store. It mirrors the semantics of GitConfig,
// including List returning names in insertion order, and exists so
// command logic can be tested without a git binary or a config file.
type Memory struct {
	entries map[string]string
	order   []string
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{entries: make(map[string]string)}
}

// List returns alias names in insertion order.
func (m *Memory) List() ([]string, error) {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names, nil
}

// Get returns the body stored under name.
func (m *Memory) Get(name string) (string, error) {
	body, ok := m.entries[name]
	if !ok {
		return "", errors.WithDetailf(errors.ErrNotFound, "alias %q is not installed", name)
	}
	return body, nil
}

// Set creates or replaces the alias.
func (m *Memory) Set(name, body string, overwrite bool) error {
	if _, exists := m.entries[name]; exists {
		if !overwrite {
			return errors.WithDetailf(errors.ErrConflict,
				"alias %q already exists; use --force to overwrite", name)
		}
		m.entries[name] = body
		return nil
	}

	m.entries[name] = body
	m.order = append(m.order, name)
	return nil
}

// Remove deletes the alias entry for name.
func (m *Memory) Remove(name string) error {
	if _, ok := m.entries[name]; !ok {
		return errors.WithDetailf(errors.ErrNotFound, "alias %q is not installed", name)
	}
	delete(m.entries, name)
	for i, n := range m.order {
		if n == name {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}
