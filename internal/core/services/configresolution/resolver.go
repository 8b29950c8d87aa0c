/*
Package configresolution normalizes per-package alias loader configuration,
folding two generations of deprecated configuration keys into the canonical
shape.
*/
package configresolution

import (
	"fmt"

	"github.com/odoliveira/aliasloader/internal/core/domain/loaderconfig"
	"github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"
	"github.com/odoliveira/aliasloader/internal/core/ports"
)

const (
	// canonicalKey is the nested extra-configuration key packages should use.
	canonicalKey = "class-alias-loader"
	// legacyPackageKey is the nested key from the name this project was
	// first published under.
	legacyPackageKey = "aliasloader/class-alias-loader"

	mapsKey            = "class-alias-maps"
	caseSensitivityKey = "autoload-case-sensitivity"
	alwaysAddKey       = "always-add-alias-loader"
)

type resolver struct {
	reporter ports.Reporter
}

// NewResolver creates a new configuration resolver.
// It panics if the reporter is nil.
func NewResolver(reporter ports.Reporter) ports.ConfigResolver {
	if reporter == nil {
		panic("reporter cannot be nil")
	}
	return &resolver{reporter: reporter}
}

// Resolve extracts the alias loader configuration from one package's extra
// block. A package that declares nothing gets the defaults and no error.
func (r *resolver) Resolve(pkg pkginfo.PackageDescriptor) (loaderconfig.AliasLoaderConfig, error) {
	config := loaderconfig.Default()

	raw := r.effectiveRawConfig(pkg)
	if raw == nil {
		return config, nil
	}

	if mapsValue, ok := raw[mapsKey]; ok {
		paths, err := aliasMapPathList(mapsValue)
		if err != nil {
			return config, fmt.Errorf("package %s: %w", pkg.Name, err)
		}
		config.AliasMapPaths = paths
	}
	if always, ok := raw[alwaysAddKey].(bool); ok {
		config.AlwaysAddLoader = always
	}
	if caseSensitive, ok := raw[caseSensitivityKey].(bool); ok {
		config.CaseSensitive = caseSensitive
	}

	return config, nil
}

/*
effectiveRawConfig returns the nested configuration block for the package,
honoring the deprecated shapes. The legacy nested key is only consulted when
the canonical key is absent, and the legacy flat keys only when both nested
keys are absent. Each deprecated shape found emits one deprecation notice
naming the package.
*/
func (r *resolver) effectiveRawConfig(pkg pkginfo.PackageDescriptor) map[string]any {
	if nested, ok := pkg.Extra[canonicalKey].(map[string]any); ok {
		return nested
	}

	if nested, ok := pkg.Extra[legacyPackageKey].(map[string]any); ok {
		r.reporter.Deprecation(fmt.Sprintf(
			"The package %q uses the deprecated extra section %q. Please move the configuration to %q.",
			pkg.Name, legacyPackageKey, canonicalKey))
		return nested
	}

	var flat map[string]any
	if mapsValue, ok := pkg.Extra[mapsKey]; ok {
		flat = map[string]any{mapsKey: mapsValue}
		r.reporter.Deprecation(fmt.Sprintf(
			"The package %q uses the deprecated top level extra key %q. Please move it below the %q section.",
			pkg.Name, mapsKey, canonicalKey))
	}
	if caseValue, ok := pkg.Extra[caseSensitivityKey]; ok {
		if flat == nil {
			flat = map[string]any{}
		}
		flat[caseSensitivityKey] = caseValue
		r.reporter.Deprecation(fmt.Sprintf(
			"The package %q uses the deprecated top level extra key %q. Please move it below the %q section.",
			pkg.Name, caseSensitivityKey, canonicalKey))
	}
	return flat
}

// aliasMapPathList validates and converts the raw class-alias-maps value.
// Anything other than a list of strings is a configuration error.
func aliasMapPathList(value any) ([]string, error) {
	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("the %q configuration must be a list of file paths", mapsKey)
	}
	paths := make([]string, 0, len(items))
	for _, item := range items {
		path, ok := item.(string)
		if !ok {
			return nil, fmt.Errorf("the %q configuration must be a list of file paths", mapsKey)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
