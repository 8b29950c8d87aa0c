/*
Package mapmerging walks the installed package list, loads every declared
alias-map file and merges the declarations into one bidirectional lookup
structure. It also owns the decision of whether the autoload rewrite is
needed at all.
*/
package mapmerging

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/odoliveira/aliasloader/internal/core/domain/aliasmap"
	"github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"
	"github.com/odoliveira/aliasloader/internal/core/ports"
)

type service struct {
	resolver ports.ConfigResolver
	loader   ports.AliasMapFileLoader
	reporter ports.Reporter
}

// NewService creates a new alias map merge service.
// It panics if any dependency is nil.
func NewService(resolver ports.ConfigResolver, loader ports.AliasMapFileLoader, reporter ports.Reporter) ports.AliasMapMergeService {
	if resolver == nil || loader == nil || reporter == nil {
		panic("resolver, loader and reporter cannot be nil")
	}
	return &service{resolver: resolver, loader: loader, reporter: reporter}
}

/*
Merge processes the packages in the order given. For each package it resolves
the alias loader configuration and loads every declared alias-map file,
resolved relative to the package install path, or the project base path for
the root package. A missing file is a warning and its declarations are simply
absent; a malformed configuration or file content aborts the run.
*/
func (s *service) Merge(packages []pkginfo.PackageDescriptor, basePath string) (ports.MergeResult, error) {
	result := ports.MergeResult{Map: aliasmap.New()}

	for _, pkg := range packages {
		config, err := s.resolver.Resolve(pkg)
		if err != nil {
			return result, err
		}

		installPath := pkg.InstallPath
		if installPath == "" {
			installPath = basePath
		}

		for _, mapPath := range config.AliasMapPaths {
			resolved := filepath.Join(installPath, mapPath)
			declarations, err := s.loader.Load(resolved)
			if err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					s.reporter.Warning(fmt.Sprintf(
						"The alias map file %q configured in package %q was not found. Skipping it.",
						mapPath, pkg.Name))
					continue
				}
				return result, fmt.Errorf("package %s: %w", pkg.Name, err)
			}

			if len(declarations) > 0 {
				result.FoundAny = true
			}
			for alias, className := range declarations {
				result.Map.Add(alias, className)
			}
		}
	}

	return result, nil
}
