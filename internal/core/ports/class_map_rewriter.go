package ports

/*
ClassMapRewriter defines the interface for case-folding the host's generated
class map in place. Only mapping keys are touched; values stay verbatim.
*/
type ClassMapRewriter interface {
	RewriteCaseInsensitive(generatedDir string) error
}
