/*
Package composer reads the host package manager's resolved state for one
project: the root manifest, the installed-package list and the project-level
settings the rewrite pipeline needs.
*/
package composer

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"
	"github.com/odoliveira/aliasloader/internal/core/ports"
)

const (
	rootManifestFilename = "composer.json"
	installedFilename    = "installed.json"
	generatedDirname     = "composer"
	defaultVendorDirname = "vendor"
)

// ProjectRepository provides access to a project's composer state via the
// file system.
type ProjectRepository struct {
	basePath   string
	vendorPath string
	manifest   rootManifest
}

// NewProjectRepository creates a repository for the project at workingDir.
// It fails when the root manifest cannot be read or parsed.
func NewProjectRepository(workingDir string) (ports.ProjectRepository, error) {
	basePath, err := filepath.Abs(workingDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve project path %s: %w", workingDir, err)
	}

	manifest, err := readRootManifest(filepath.Join(basePath, rootManifestFilename))
	if err != nil {
		return nil, err
	}

	vendorDir := defaultVendorDirname
	if configured, ok := manifest.Config["vendor-dir"].(string); ok && configured != "" {
		vendorDir = configured
	}
	vendorPath := vendorDir
	if !filepath.IsAbs(vendorPath) {
		vendorPath = filepath.Join(basePath, vendorDir)
	}

	return &ProjectRepository{
		basePath:   basePath,
		vendorPath: vendorPath,
		manifest:   manifest,
	}, nil
}

// BasePath implements the ports.ProjectRepository interface.
func (r *ProjectRepository) BasePath() string {
	return r.basePath
}

// VendorPath implements the ports.ProjectRepository interface.
func (r *ProjectRepository) VendorPath() string {
	return r.vendorPath
}

// RootPackage implements the ports.ProjectRepository interface. The root
// package keeps an empty install path, meaning "at the base path".
func (r *ProjectRepository) RootPackage() (pkginfo.PackageDescriptor, error) {
	return pkginfo.PackageDescriptor{
		Name:  r.manifest.Name,
		Extra: r.manifest.Extra,
	}, nil
}

/*
InstalledPackages implements the ports.ProjectRepository interface. Packages
are returned in the order the host recorded them, which fixes the iteration
order of the merge. A project without an installed-package file simply has no
dependencies yet.
*/
func (r *ProjectRepository) InstalledPackages() ([]pkginfo.PackageDescriptor, error) {
	installedPath := filepath.Join(r.vendorPath, generatedDirname, installedFilename)
	entries, err := readInstalledFile(installedPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	packages := make([]pkginfo.PackageDescriptor, 0, len(entries))
	for _, entry := range entries {
		packages = append(packages, pkginfo.PackageDescriptor{
			Name:        entry.Name,
			InstallPath: r.resolveInstallPath(entry),
			Extra:       entry.Extra,
		})
	}
	return packages, nil
}

// RootSettings implements the ports.ProjectRepository interface. The host's
// prepend default is true; either optimization flag counts as an optimized
// class map.
func (r *ProjectRepository) RootSettings() (pkginfo.RootSettings, error) {
	settings := pkginfo.RootSettings{PrependAutoloader: true}

	if suffix, ok := r.manifest.Config["autoloader-suffix"].(string); ok {
		settings.AutoloaderSuffix = suffix
	}
	if prepend, ok := r.manifest.Config["prepend-autoloader"].(bool); ok {
		settings.PrependAutoloader = prepend
	}
	optimize, _ := r.manifest.Config["optimize-autoloader"].(bool)
	authoritative, _ := r.manifest.Config["classmap-authoritative"].(bool)
	settings.OptimizedClassMap = optimize || authoritative

	return settings, nil
}

// resolveInstallPath turns an installed-package entry into an absolute
// install path. Newer host versions record the path relative to the
// generated-artifacts directory; older ones leave it to the vendor layout.
func (r *ProjectRepository) resolveInstallPath(entry installedPackage) string {
	if entry.InstallPath != "" {
		if filepath.IsAbs(entry.InstallPath) {
			return filepath.Clean(entry.InstallPath)
		}
		return filepath.Clean(filepath.Join(r.vendorPath, generatedDirname, entry.InstallPath))
	}
	return filepath.Join(r.vendorPath, filepath.FromSlash(entry.Name))
}
