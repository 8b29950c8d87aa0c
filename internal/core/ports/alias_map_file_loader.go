package ports

/*
AliasMapFileLoader defines the interface for loading one alias-map file into
a mapping of alias name to canonical class name. A missing file is reported
with an error satisfying errors.Is(err, fs.ErrNotExist) so callers can treat
it as a soft condition; any other error means the file exists but is not a
valid mapping.
*/
type AliasMapFileLoader interface {
	Load(path string) (map[string]string, error)
}
