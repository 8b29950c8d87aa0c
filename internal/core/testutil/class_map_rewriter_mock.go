package testutil

import "github.com/odoliveira/aliasloader/internal/core/ports"

// MockClassMapRewriter is a mock implementation of the
// ports.ClassMapRewriter interface.
type MockClassMapRewriter struct {
	RewriteCaseInsensitiveFunc func(generatedDir string) error
}

// RewriteCaseInsensitive mocks the RewriteCaseInsensitive method.
func (m *MockClassMapRewriter) RewriteCaseInsensitive(generatedDir string) error {
	if m.RewriteCaseInsensitiveFunc != nil {
		return m.RewriteCaseInsensitiveFunc(generatedDir)
	}
	return nil
}

// Ensure MockClassMapRewriter implements the ports.ClassMapRewriter interface.
var _ ports.ClassMapRewriter = (*MockClassMapRewriter)(nil)
