package testutil

import (
	"github.com/odoliveira/aliasloader/internal/core/domain/loaderconfig"
	"github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"
	"github.com/odoliveira/aliasloader/internal/core/ports"
)

// MockConfigResolver is a mock implementation of the ports.ConfigResolver
// interface.
type MockConfigResolver struct {
	ResolveFunc func(pkg pkginfo.PackageDescriptor) (loaderconfig.AliasLoaderConfig, error)
}

// Resolve mocks the Resolve method.
func (m *MockConfigResolver) Resolve(pkg pkginfo.PackageDescriptor) (loaderconfig.AliasLoaderConfig, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(pkg)
	}
	return loaderconfig.Default(), nil
}

// Ensure MockConfigResolver implements the ports.ConfigResolver interface.
var _ ports.ConfigResolver = (*MockConfigResolver)(nil)
