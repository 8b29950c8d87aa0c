package testutil

import "github.com/odoliveira/aliasloader/internal/core/ports"

// MockAliasMapFileLoader is a mock implementation of the
// ports.AliasMapFileLoader interface.
type MockAliasMapFileLoader struct {
	LoadFunc func(path string) (map[string]string, error)
}

// Load mocks the Load method.
func (m *MockAliasMapFileLoader) Load(path string) (map[string]string, error) {
	if m.LoadFunc != nil {
		return m.LoadFunc(path)
	}
	return map[string]string{}, nil
}

// Ensure MockAliasMapFileLoader implements the ports.AliasMapFileLoader interface.
var _ ports.AliasMapFileLoader = (*MockAliasMapFileLoader)(nil)
