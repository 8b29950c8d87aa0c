package testutil

import (
	"github.com/odoliveira/aliasloader/internal/core/domain/aliasmap"
	"github.com/odoliveira/aliasloader/internal/core/ports"
)

// MockMapFileEmitter is a mock implementation of the ports.MapFileEmitter
// interface.
type MockMapFileEmitter struct {
	EmitFunc func(merged aliasmap.MergedAliasMap, generatedDir string) error
}

// Emit mocks the Emit method.
func (m *MockMapFileEmitter) Emit(merged aliasmap.MergedAliasMap, generatedDir string) error {
	if m.EmitFunc != nil {
		return m.EmitFunc(merged, generatedDir)
	}
	return nil
}

// Ensure MockMapFileEmitter implements the ports.MapFileEmitter interface.
var _ ports.MapFileEmitter = (*MockMapFileEmitter)(nil)
