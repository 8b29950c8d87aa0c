package mapmerging

import "github.com/odoliveira/aliasloader/internal/core/domain/loaderconfig"

/*
ShouldRewrite reports whether the generated autoload files need to be touched
at all. The rewrite is skipped only when no aliases exist anywhere, the
loader is not forced on, and class loading stays case-sensitive; that single
short-circuit keeps the tool a no-op for projects that do not use it.
*/
func ShouldRewrite(mainConfig loaderconfig.AliasLoaderConfig, foundAny bool) bool {
	return mainConfig.AlwaysAddLoader || foundAny || !mainConfig.CaseSensitive
}
