package testutil

import (
	"github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"
	"github.com/odoliveira/aliasloader/internal/core/ports"
)

// MockProjectRepository is a mock implementation of the
// ports.ProjectRepository interface.
type MockProjectRepository struct {
	BasePathFunc          func() string
	VendorPathFunc        func() string
	RootPackageFunc       func() (pkginfo.PackageDescriptor, error)
	InstalledPackagesFunc func() ([]pkginfo.PackageDescriptor, error)
	RootSettingsFunc      func() (pkginfo.RootSettings, error)
}

// BasePath mocks the BasePath method.
func (m *MockProjectRepository) BasePath() string {
	if m.BasePathFunc != nil {
		return m.BasePathFunc()
	}
	return ""
}

// VendorPath mocks the VendorPath method.
func (m *MockProjectRepository) VendorPath() string {
	if m.VendorPathFunc != nil {
		return m.VendorPathFunc()
	}
	return ""
}

// RootPackage mocks the RootPackage method.
func (m *MockProjectRepository) RootPackage() (pkginfo.PackageDescriptor, error) {
	if m.RootPackageFunc != nil {
		return m.RootPackageFunc()
	}
	return pkginfo.PackageDescriptor{}, nil
}

// InstalledPackages mocks the InstalledPackages method.
func (m *MockProjectRepository) InstalledPackages() ([]pkginfo.PackageDescriptor, error) {
	if m.InstalledPackagesFunc != nil {
		return m.InstalledPackagesFunc()
	}
	return nil, nil
}

// RootSettings mocks the RootSettings method.
func (m *MockProjectRepository) RootSettings() (pkginfo.RootSettings, error) {
	if m.RootSettingsFunc != nil {
		return m.RootSettingsFunc()
	}
	return pkginfo.RootSettings{PrependAutoloader: true}, nil
}

// Ensure MockProjectRepository implements the ports.ProjectRepository interface.
var _ ports.ProjectRepository = (*MockProjectRepository)(nil)
