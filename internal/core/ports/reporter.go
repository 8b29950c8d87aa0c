package ports

// Reporter defines the contract for user-visible informational output.
// All messages are advisory; fatal conditions travel as errors instead.
type Reporter interface {
	// Warning reports a non-fatal problem, such as a declared alias-map
	// file that does not exist.
	Warning(message string)

	// Deprecation reports usage of a configuration shape that still works
	// but is scheduled for removal.
	Deprecation(message string)
}
