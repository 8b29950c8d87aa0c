/*
Package classmaprewriting lower-cases the class-name keys of the host's
generated class map in place, enabling case-insensitive lookups against it.
*/
package classmaprewriting

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/odoliveira/aliasloader/internal/adapters/atomicfile"
	"github.com/odoliveira/aliasloader/internal/core/ports"
)

// Filename is the host's generated class map file inside the
// generated-artifacts directory.
const Filename = "autoload_classmap.php"

// classMapKeyPattern matches one class map entry line: indentation, the
// single-quoted class-name key and the arrow. Only the key span is rewritten.
var classMapKeyPattern = regexp.MustCompile(`(?m)^(\s+)'((?:[^'\\]|\\.)*)'(\s*=>)`)

// Rewriter implements the ports.ClassMapRewriter interface.
type Rewriter struct{}

// NewRewriter creates a new Rewriter.
func NewRewriter() ports.ClassMapRewriter {
	return &Rewriter{}
}

// RewriteCaseInsensitive folds every mapping key of the generated class map
// to lower case, leaving the values untouched. Rewriting an already folded
// map is a no-op.
func (r *Rewriter) RewriteCaseInsensitive(generatedDir string) error {
	path := filepath.Join(generatedDir, Filename)
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read class map %s: %w", path, err)
	}

	rewritten := classMapKeyPattern.ReplaceAllStringFunc(string(content), func(line string) string {
		parts := classMapKeyPattern.FindStringSubmatch(line)
		return parts[1] + "'" + strings.ToLower(parts[2]) + "'" + parts[3]
	})

	return atomicfile.WriteFile(path, []byte(rewritten))
}
