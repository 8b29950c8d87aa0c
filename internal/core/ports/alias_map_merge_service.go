package ports

import (
	"github.com/odoliveira/aliasloader/internal/core/domain/aliasmap"
	"github.com/odoliveira/aliasloader/internal/core/domain/pkginfo"
)

// MergeResult holds the merged alias map and whether any non-empty
// alias-map file was loaded at all.
type MergeResult struct {
	Map      aliasmap.MergedAliasMap
	FoundAny bool
}

/*
AliasMapMergeService defines the contract for walking the full package list
and merging every declared alias-map file into one bidirectional lookup
structure. Packages are processed in the order given; a later declaration of
an already-seen folded alias silently wins.
*/
type AliasMapMergeService interface {
	Merge(packages []pkginfo.PackageDescriptor, basePath string) (MergeResult, error)
}
