package testutil

import "github.com/odoliveira/aliasloader/internal/core/ports"

// MockEntryPointSplicer is a mock implementation of the
// ports.EntryPointSplicer interface.
type MockEntryPointSplicer struct {
	DetermineSuffixFunc  func(entryPointPath, override string) string
	WriteInitializerFunc func(generatedDir, suffix string, caseSensitive, prepend bool) error
	SpliceFunc           func(entryPointPath, suffix string) error
}

// DetermineSuffix mocks the DetermineSuffix method.
func (m *MockEntryPointSplicer) DetermineSuffix(entryPointPath, override string) string {
	if m.DetermineSuffixFunc != nil {
		return m.DetermineSuffixFunc(entryPointPath, override)
	}
	return "test"
}

// WriteInitializer mocks the WriteInitializer method.
func (m *MockEntryPointSplicer) WriteInitializer(generatedDir, suffix string, caseSensitive, prepend bool) error {
	if m.WriteInitializerFunc != nil {
		return m.WriteInitializerFunc(generatedDir, suffix, caseSensitive, prepend)
	}
	return nil
}

// Splice mocks the Splice method.
func (m *MockEntryPointSplicer) Splice(entryPointPath, suffix string) error {
	if m.SpliceFunc != nil {
		return m.SpliceFunc(entryPointPath, suffix)
	}
	return nil
}

// Ensure MockEntryPointSplicer implements the ports.EntryPointSplicer interface.
var _ ports.EntryPointSplicer = (*MockEntryPointSplicer)(nil)
