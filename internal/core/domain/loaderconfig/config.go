/*
Package loaderconfig defines the normalized per-package alias loader
configuration.
*/
package loaderconfig

/*
AliasLoaderConfig is the canonical shape of one package's alias loader
settings, derived once per package per run and never mutated afterwards.
CaseSensitive only carries meaning on the root package; for every other
package it stays at its default.
*/
type AliasLoaderConfig struct {
	// AliasMapPaths lists alias-map files relative to the package install path.
	AliasMapPaths []string
	// AlwaysAddLoader forces the alias loader on even when no aliases exist.
	AlwaysAddLoader bool
	// CaseSensitive mirrors the host's native class loading default.
	CaseSensitive bool
}

// Default returns the configuration used when a package declares nothing.
func Default() AliasLoaderConfig {
	return AliasLoaderConfig{CaseSensitive: true}
}
