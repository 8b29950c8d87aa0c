package testutil

import "github.com/odoliveira/aliasloader/internal/core/ports"

// MockReporter is a mock implementation of the ports.Reporter interface.
// It records every message so tests can assert on the exact output.
type MockReporter struct {
	WarningFunc     func(message string)
	DeprecationFunc func(message string)

	Warnings     []string
	Deprecations []string
}

// Warning mocks the Warning method.
func (m *MockReporter) Warning(message string) {
	m.Warnings = append(m.Warnings, message)
	if m.WarningFunc != nil {
		m.WarningFunc(message)
	}
}

// Deprecation mocks the Deprecation method.
func (m *MockReporter) Deprecation(message string) {
	m.Deprecations = append(m.Deprecations, message)
	if m.DeprecationFunc != nil {
		m.DeprecationFunc(message)
	}
}

// Ensure MockReporter implements the ports.Reporter interface.
var _ ports.Reporter = (*MockReporter)(nil)
