package autoloadrewrite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/odoliveira/aliasloader/internal/core/domain/aliasmap"
	"github.com/odoliveira/aliasloader/internal/core/domain/loaderconfig"
	"github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"
	"github.com/odoliveira/aliasloader/internal/core/ports"
	"github.com/odoliveira/aliasloader/internal/core/testutil"
)

type pipelineMocks struct {
	repository *testutil.MockProjectRepository
	resolver   *testutil.MockConfigResolver
	merger     *testutil.MockAliasMapMergeService
	emitter    *testutil.MockMapFileEmitter
	classMap   *testutil.MockClassMapRewriter
	splicer    *testutil.MockEntryPointSplicer
	reporter   *testutil.MockReporter
}

func newPipelineMocks() *pipelineMocks {
	return &pipelineMocks{
		repository: &testutil.MockProjectRepository{
			BasePathFunc:   func() string { return "/project" },
			VendorPathFunc: func() string { return "/project/vendor" },
		},
		resolver: &testutil.MockConfigResolver{},
		merger:   &testutil.MockAliasMapMergeService{},
		emitter:  &testutil.MockMapFileEmitter{},
		classMap: &testutil.MockClassMapRewriter{},
		splicer:  &testutil.MockEntryPointSplicer{},
		reporter: &testutil.MockReporter{},
	}
}

func (m *pipelineMocks) service() ports.AutoloadRewriteService {
	return NewService(m.repository, m.resolver, m.merger, m.emitter, m.classMap, m.splicer, m.reporter)
}

func mergeResultWith(foundAny bool) ports.MergeResult {
	merged := aliasmap.New()
	if foundAny {
		merged.Add(`Foo\Bar`, `Foo\Baz`)
	}
	return ports.MergeResult{Map: merged, FoundAny: foundAny}
}

func TestService_Rewrite_NoOp(t *testing.T) {
	mocks := newPipelineMocks()
	mocks.merger.MergeFunc = func(packages []pkginfo.PackageDescriptor, basePath string) (ports.MergeResult, error) {
		return mergeResultWith(false), nil
	}

	emitted := false
	mocks.emitter.EmitFunc = func(merged aliasmap.MergedAliasMap, generatedDir string) error {
		emitted = true
		return nil
	}
	spliced := false
	mocks.splicer.SpliceFunc = func(entryPointPath, suffix string) error {
		spliced = true
		return nil
	}

	rewritten, err := mocks.service().Rewrite()
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if rewritten {
		t.Error("Rewrite() = true, want false when nothing asks for the loader")
	}
	if emitted || spliced {
		t.Errorf("no-op run touched generated files (emitted=%v, spliced=%v)", emitted, spliced)
	}
}

func TestService_Rewrite_WithAliases(t *testing.T) {
	mocks := newPipelineMocks()
	mocks.merger.MergeFunc = func(packages []pkginfo.PackageDescriptor, basePath string) (ports.MergeResult, error) {
		return mergeResultWith(true), nil
	}

	var emittedDir string
	mocks.emitter.EmitFunc = func(merged aliasmap.MergedAliasMap, generatedDir string) error {
		emittedDir = generatedDir
		return nil
	}
	var splicedPath, splicedSuffix string
	mocks.splicer.SpliceFunc = func(entryPointPath, suffix string) error {
		splicedPath = entryPointPath
		splicedSuffix = suffix
		return nil
	}
	classMapRewritten := false
	mocks.classMap.RewriteCaseInsensitiveFunc = func(generatedDir string) error {
		classMapRewritten = true
		return nil
	}

	rewritten, err := mocks.service().Rewrite()
	if err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}
	if !rewritten {
		t.Fatal("Rewrite() = false, want true when aliases were found")
	}

	wantDir := filepath.Join("/project/vendor", "composer")
	if emittedDir != wantDir {
		t.Errorf("emitted into %q, want %q", emittedDir, wantDir)
	}
	wantEntryPoint := filepath.Join("/project/vendor", "autoload.php")
	if splicedPath != wantEntryPoint {
		t.Errorf("spliced %q, want %q", splicedPath, wantEntryPoint)
	}
	if splicedSuffix == "" {
		t.Error("splice received an empty suffix")
	}
	if classMapRewritten {
		t.Error("class map was case-folded although loading is case-sensitive")
	}
}

func TestService_Rewrite_CaseInsensitive(t *testing.T) {
	tests := []struct {
		name         string
		optimized    bool
		wantWarnings int
	}{
		{name: "warns when the class map is not optimized", optimized: false, wantWarnings: 1},
		{name: "no warning with an optimized class map", optimized: true, wantWarnings: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newPipelineMocks()
			mocks.resolver.ResolveFunc = func(pkg pkginfo.PackageDescriptor) (loaderconfig.AliasLoaderConfig, error) {
				return loaderconfig.AliasLoaderConfig{CaseSensitive: false}, nil
			}
			mocks.repository.RootSettingsFunc = func() (pkginfo.RootSettings, error) {
				return pkginfo.RootSettings{PrependAutoloader: true, OptimizedClassMap: tt.optimized}, nil
			}
			mocks.merger.MergeFunc = func(packages []pkginfo.PackageDescriptor, basePath string) (ports.MergeResult, error) {
				return mergeResultWith(false), nil
			}

			classMapRewritten := false
			mocks.classMap.RewriteCaseInsensitiveFunc = func(generatedDir string) error {
				classMapRewritten = true
				return nil
			}

			rewritten, err := mocks.service().Rewrite()
			if err != nil {
				t.Fatalf("Rewrite() error = %v", err)
			}
			if !rewritten {
				t.Fatal("Rewrite() = false, want true when case-insensitive loading is requested")
			}
			if !classMapRewritten {
				t.Error("class map was not case-folded")
			}
			if len(mocks.reporter.Warnings) != tt.wantWarnings {
				t.Errorf("got %d warnings, want %d: %v", len(mocks.reporter.Warnings), tt.wantWarnings, mocks.reporter.Warnings)
			}
		})
	}
}

func TestService_Rewrite_PackageOrder(t *testing.T) {
	mocks := newPipelineMocks()
	mocks.repository.RootPackageFunc = func() (pkginfo.PackageDescriptor, error) {
		return pkginfo.PackageDescriptor{Name: "acme/root"}, nil
	}
	mocks.repository.InstalledPackagesFunc = func() ([]pkginfo.PackageDescriptor, error) {
		return []pkginfo.PackageDescriptor{
			{Name: "acme/first", InstallPath: "/project/vendor/acme/first"},
			{Name: "acme/second", InstallPath: "/project/vendor/acme/second"},
		}, nil
	}

	var mergedNames []string
	mocks.merger.MergeFunc = func(packages []pkginfo.PackageDescriptor, basePath string) (ports.MergeResult, error) {
		for _, pkg := range packages {
			mergedNames = append(mergedNames, pkg.Name)
		}
		return mergeResultWith(true), nil
	}

	if _, err := mocks.service().Rewrite(); err != nil {
		t.Fatalf("Rewrite() error = %v", err)
	}

	want := []string{"acme/root", "acme/first", "acme/second"}
	if len(mergedNames) != len(want) {
		t.Fatalf("merged %v, want %v", mergedNames, want)
	}
	for i := range want {
		if mergedNames[i] != want[i] {
			t.Errorf("merge order[%d] = %q, want %q", i, mergedNames[i], want[i])
		}
	}
}

func TestService_Rewrite_Errors(t *testing.T) {
	failure := errors.New("boom")

	tests := []struct {
		name  string
		setup func(mocks *pipelineMocks)
	}{
		{
			name: "merge failure",
			setup: func(mocks *pipelineMocks) {
				mocks.merger.MergeFunc = func(packages []pkginfo.PackageDescriptor, basePath string) (ports.MergeResult, error) {
					return ports.MergeResult{Map: aliasmap.New()}, failure
				}
			},
		},
		{
			name: "emit failure",
			setup: func(mocks *pipelineMocks) {
				mocks.merger.MergeFunc = func(packages []pkginfo.PackageDescriptor, basePath string) (ports.MergeResult, error) {
					return mergeResultWith(true), nil
				}
				mocks.emitter.EmitFunc = func(merged aliasmap.MergedAliasMap, generatedDir string) error {
					return failure
				}
			},
		},
		{
			name: "splice failure",
			setup: func(mocks *pipelineMocks) {
				mocks.merger.MergeFunc = func(packages []pkginfo.PackageDescriptor, basePath string) (ports.MergeResult, error) {
					return mergeResultWith(true), nil
				}
				mocks.splicer.SpliceFunc = func(entryPointPath, suffix string) error {
					return failure
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mocks := newPipelineMocks()
			tt.setup(mocks)

			_, err := mocks.service().Rewrite()
			if !errors.Is(err, failure) {
				t.Errorf("Rewrite() error = %v, want it to wrap the underlying failure", err)
			}
		})
	}
}
