package ports

import "github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"

/*
ProjectRepository defines the interface for reading the host package
manager's resolved state for one project. This is a driven port, implemented
by a repository adapter that understands the host's on-disk layout. The base
and vendor paths are exposed explicitly so the core never has to dig them out
of the host's internals.
*/
type ProjectRepository interface {
	// BasePath returns the absolute project base path.
	BasePath() string

	// VendorPath returns the absolute path of the host's vendor directory.
	VendorPath() string

	// RootPackage returns the descriptor of the project's own package.
	// Its InstallPath is empty, meaning "at the base path".
	RootPackage() (pkginfo.PackageDescriptor, error)

	// InstalledPackages returns every installed dependency in the host's
	// deterministic installation order.
	InstalledPackages() ([]pkginfo.PackageDescriptor, error)

	// RootSettings returns the project-level settings from the root manifest.
	RootSettings() (pkginfo.RootSettings, error)
}
