package ports

import (
	"github.com/odoliveira/aliasloader/internal/core/domain/loaderconfig"
	"github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"
)

/*
ConfigResolver defines the contract for normalizing one package's alias
loader configuration, including the deprecated legacy shapes. Missing
configuration yields the defaults, never an error; a malformed alias-map
list is a configuration error and aborts the run.
*/
type ConfigResolver interface {
	Resolve(pkg pkginfo.PackageDescriptor) (loaderconfig.AliasLoaderConfig, error)
}
