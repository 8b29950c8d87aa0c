package testutil

import (
	"github.com/odoliveira/aliasloader/internal/core/domain/aliasmap"
	"github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"
	"github.com/odoliveira/aliasloader/internal/core/ports"
)

// MockAliasMapMergeService is a mock implementation of the
// ports.AliasMapMergeService interface.
type MockAliasMapMergeService struct {
	MergeFunc func(packages []pkginfo.PackageDescriptor, basePath string) (ports.MergeResult, error)
}

// Merge mocks the Merge method.
func (m *MockAliasMapMergeService) Merge(packages []pkginfo.PackageDescriptor, basePath string) (ports.MergeResult, error) {
	if m.MergeFunc != nil {
		return m.MergeFunc(packages, basePath)
	}
	return ports.MergeResult{Map: aliasmap.New()}, nil
}

// Ensure MockAliasMapMergeService implements the ports.AliasMapMergeService interface.
var _ ports.AliasMapMergeService = (*MockAliasMapMergeService)(nil)
