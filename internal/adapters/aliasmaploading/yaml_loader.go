/*
Package aliasmaploading loads alias-map files declared by packages. The files
are YAML (or JSON, which the same decoder accepts) mappings of alias class
name to canonical class name.
*/
package aliasmaploading

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/odoliveira/aliasloader/internal/core/ports"
	"gopkg.in/yaml.v3"
)

// ErrNotAMapping marks an alias-map file whose content is not a flat mapping
// of alias name to class name. Callers treat it as fatal.
var ErrNotAMapping = errors.New("alias map file does not contain a mapping")

// YAMLLoader implements the ports.AliasMapFileLoader interface by decoding
// YAML/JSON mapping files from disk.
type YAMLLoader struct{}

// NewYAMLLoader creates a new YAMLLoader.
func NewYAMLLoader() ports.AliasMapFileLoader {
	return &YAMLLoader{}
}

// Load reads and decodes one alias-map file. A missing file is reported with
// an error wrapping fs.ErrNotExist; an empty file decodes to an empty map.
func (l *YAMLLoader) Load(path string) (map[string]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("alias map file %s: %w", path, fs.ErrNotExist)
		}
		return nil, fmt.Errorf("failed to read alias map file %s: %w", path, err)
	}

	declarations := map[string]string{}
	if len(content) == 0 {
		return declarations, nil
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	if err := decoder.Decode(&declarations); err != nil {
		// A file holding only comments or a bare document marker decodes
		// to nothing, which is the same as an empty map.
		if errors.Is(err, io.EOF) {
			return declarations, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrNotAMapping, path)
	}

	return declarations, nil
}
