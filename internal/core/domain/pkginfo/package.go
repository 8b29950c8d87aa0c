/*
Package pkginfo defines the descriptors this tool reads from the host package
manager's output. They are supplied by a repository adapter and are read-only
to the core services.
*/
package pkginfo

/*
PackageDescriptor identifies one installed package. InstallPath is absolute;
an empty InstallPath marks the root package, which lives at the project base
path. Extra is the package manifest's raw extra-configuration block.
*/
type PackageDescriptor struct {
	Name        string
	InstallPath string
	Extra       map[string]any
}

/*
RootSettings carries the project-level knobs read from the root manifest's
config block.
*/
type RootSettings struct {
	AutoloaderSuffix  string
	PrependAutoloader bool
	OptimizedClassMap bool
}
