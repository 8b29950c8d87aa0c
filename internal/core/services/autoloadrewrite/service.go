/*
Package autoloadrewrite orchestrates the full post-install pipeline: merge
the alias maps, decide whether a rewrite is needed, emit the generated map
file, case-fold the host class map when requested and splice the host entry
point. It runs strictly after the host package manager has written its own
autoload files.
*/
package autoloadrewrite

import (
	"fmt"
	"path/filepath"

	"github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"
	"github.com/odoliveira/aliasloader/internal/core/ports"
	"github.com/odoliveira/aliasloader/internal/core/services/mapmerging"
)

// entryPointFilename is the host's autoload entry point inside the vendor
// directory.
const entryPointFilename = "autoload.php"

// generatedDirname is the host's generated-artifacts directory inside the
// vendor directory.
const generatedDirname = "composer"

type service struct {
	repository ports.ProjectRepository
	resolver   ports.ConfigResolver
	merger     ports.AliasMapMergeService
	emitter    ports.MapFileEmitter
	classMap   ports.ClassMapRewriter
	splicer    ports.EntryPointSplicer
	reporter   ports.Reporter
}

// NewService creates the pipeline service.
// It panics if any dependency is nil.
func NewService(
	repository ports.ProjectRepository,
	resolver ports.ConfigResolver,
	merger ports.AliasMapMergeService,
	emitter ports.MapFileEmitter,
	classMap ports.ClassMapRewriter,
	splicer ports.EntryPointSplicer,
	reporter ports.Reporter,
) ports.AutoloadRewriteService {
	if repository == nil || resolver == nil || merger == nil ||
		emitter == nil || classMap == nil || splicer == nil || reporter == nil {
		panic("autoloadrewrite service dependencies cannot be nil")
	}
	return &service{
		repository: repository,
		resolver:   resolver,
		merger:     merger,
		emitter:    emitter,
		classMap:   classMap,
		splicer:    splicer,
		reporter:   reporter,
	}
}

// Rewrite runs the pipeline once. It returns false without touching any host
// file when the rewrite decision says the run is a no-op.
func (s *service) Rewrite() (bool, error) {
	rootPackage, err := s.repository.RootPackage()
	if err != nil {
		return false, fmt.Errorf("failed to read root package: %w", err)
	}
	installed, err := s.repository.InstalledPackages()
	if err != nil {
		return false, fmt.Errorf("failed to read installed packages: %w", err)
	}

	// The root package is merged first; installed packages follow in the
	// host's installation order. A later package silently wins a folded
	// alias collision.
	packages := append([]pkginfo.PackageDescriptor{rootPackage}, installed...)

	mergeResult, err := s.merger.Merge(packages, s.repository.BasePath())
	if err != nil {
		return false, err
	}

	mainConfig, err := s.resolver.Resolve(rootPackage)
	if err != nil {
		return false, err
	}
	if !mapmerging.ShouldRewrite(mainConfig, mergeResult.FoundAny) {
		return false, nil
	}

	settings, err := s.repository.RootSettings()
	if err != nil {
		return false, fmt.Errorf("failed to read root settings: %w", err)
	}

	generatedDir := filepath.Join(s.repository.VendorPath(), generatedDirname)
	entryPointPath := filepath.Join(s.repository.VendorPath(), entryPointFilename)

	if err := s.emitter.Emit(mergeResult.Map, generatedDir); err != nil {
		return false, fmt.Errorf("failed to emit alias map file: %w", err)
	}

	if !mainConfig.CaseSensitive {
		if !settings.OptimizedClassMap {
			s.reporter.Warning(
				"Case-insensitive class loading is only reliable with an optimized (authoritative) class map. " +
					"Consider dumping the autoloader with optimization enabled.")
		}
		if err := s.classMap.RewriteCaseInsensitive(generatedDir); err != nil {
			return false, fmt.Errorf("failed to case-fold class map: %w", err)
		}
	}

	suffix := s.splicer.DetermineSuffix(entryPointPath, settings.AutoloaderSuffix)
	if err := s.splicer.WriteInitializer(generatedDir, suffix, mainConfig.CaseSensitive, settings.PrependAutoloader); err != nil {
		return false, fmt.Errorf("failed to write alias loader initializer: %w", err)
	}
	if err := s.splicer.Splice(entryPointPath, suffix); err != nil {
		return false, fmt.Errorf("failed to rewrite autoload entry point: %w", err)
	}

	return true, nil
}
