package ports

// AutoloadRewriteService defines the contract for the full post-install
// pipeline: merge alias maps, decide whether a rewrite is needed, emit the
// generated artifacts and splice the host entry point.
type AutoloadRewriteService interface {
	// Rewrite runs the pipeline once. It returns true when host files were
	// rewritten and false when the run was a no-op.
	Rewrite() (bool, error)
}
