package ports

/*
EntryPointSplicer defines the interface for rewriting the host's autoload
entry point so it routes through the generated alias loader initializer.
It isolates the pattern-based text transformation of host-owned files so the
matching patterns can change with the host's generator output format.
*/
type EntryPointSplicer interface {
	// DetermineSuffix picks the identifier embedded in generated class
	// names: the one recovered from the existing entry point when no
	// override is set and the file is readable, otherwise the override,
	// otherwise a fresh random token.
	DetermineSuffix(entryPointPath, override string) string

	// WriteInitializer generates the alias loader initializer unit keyed
	// by suffix into the generated-artifacts directory.
	WriteInitializer(generatedDir, suffix string, caseSensitive, prepend bool) error

	// Splice rewrites the entry point to require the initializer and
	// return its result instead of the host's own loader. It fails when
	// the expected host return statement cannot be found.
	Splice(entryPointPath, suffix string) error
}
