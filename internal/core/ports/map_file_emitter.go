package ports

import "github.com/odoliveira/aliasloader/internal/core/domain/aliasmap"

/*
MapFileEmitter defines the interface for serializing the merged alias map
into the generated-artifacts directory. The emitted file must be a complete,
deterministic rendition of the in-memory map; partial writes must never be
visible to readers.
*/
type MapFileEmitter interface {
	Emit(merged aliasmap.MergedAliasMap, generatedDir string) error
}
