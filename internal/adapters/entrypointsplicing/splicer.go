/*
Package entrypointsplicing rewrites the host's autoload entry point so it
routes through a generated alias loader initializer, and generates that
initializer. The rewriting is pattern-based text transformation, since the
entry point format is owned by the host's generator, not by this tool.
*/
package entrypointsplicing

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/odoliveira/aliasloader/internal/adapters/atomicfile"
	"github.com/odoliveira/aliasloader/internal/core/ports"
)

// InitializerFilename is the generated initializer unit inside the
// generated-artifacts directory.
const InitializerFilename = "autoload_alias_loader_real.php"

// ErrEntryPointFormat marks an entry point that matches neither the host's
// plain return statement nor a previous splice. Proceeding would corrupt the
// file, so callers must abort.
var ErrEntryPointFormat = errors.New("autoload entry point has an unexpected format")

// Splicer implements the ports.EntryPointSplicer interface.
type Splicer struct{}

// NewSplicer creates a new Splicer.
func NewSplicer() ports.EntryPointSplicer {
	return &Splicer{}
}

/*
DetermineSuffix picks the identifier used in generated class names. When no
override is configured and the existing entry point is readable, the suffix
embedded in it is reused so reruns keep stable artifact names. Otherwise the
override wins, and as a last resort a random token is generated.
*/
func (s *Splicer) DetermineSuffix(entryPointPath, override string) string {
	if override == "" {
		if content, err := os.ReadFile(entryPointPath); err == nil {
			if match := suffixPattern.FindSubmatch(content); match != nil {
				return string(match[1])
			}
		}
	}
	if override != "" {
		return override
	}
	return randomSuffix()
}

// WriteInitializer generates the initializer unit keyed by suffix. The
// generated class guards against double initialization with a static field,
// so bootstrapping twice in one process returns the identical loader.
func (s *Splicer) WriteInitializer(generatedDir, suffix string, caseSensitive, prepend bool) error {
	content, err := renderInitializer(suffix, caseSensitive, prepend)
	if err != nil {
		return err
	}
	return atomicfile.WriteFile(filepath.Join(generatedDir, InitializerFilename), content)
}

/*
Splice rewrites the entry point: the statement returning the host's loader is
removed and replaced by a require of the generated initializer plus a return
that wraps the host's original initializer expression. An entry point spliced
by a previous run is recognized and refreshed, which makes the rewrite safe
to repeat; anything else fails with ErrEntryPointFormat.
*/
func (s *Splicer) Splice(entryPointPath, suffix string) error {
	raw, err := os.ReadFile(entryPointPath)
	if err != nil {
		return fmt.Errorf("failed to read entry point %s: %w", entryPointPath, err)
	}
	content := string(raw)

	hostExpression := ""
	if match := hostReturnPattern.FindStringSubmatch(content); match != nil {
		hostExpression = match[1]
		content = hostReturnPattern.ReplaceAllString(content, "")
	} else if match := splicedReturnPattern.FindStringSubmatch(content); match != nil {
		hostExpression = match[1]
		content = splicedReturnPattern.ReplaceAllString(content, "")
		content = requireLinePattern.ReplaceAllString(content, "")
	} else {
		return fmt.Errorf("%w: no loader return statement found in %s", ErrEntryPointFormat, entryPointPath)
	}

	content = strings.TrimRight(content, "\n") + "\n\n" +
		"require_once __DIR__ . '/composer/" + InitializerFilename + "';\n\n" +
		"return ClassAliasLoaderInit" + suffix + "::initializeClassAliasLoader(" + hostExpression + ");\n"

	return atomicfile.WriteFile(entryPointPath, []byte(content))
}

// randomSuffix generates a fresh token for generated class names. It is not
// stable across runs; suffix recovery from the entry point is what keeps
// reruns deterministic.
func randomSuffix() string {
	token := make([]byte, 16)
	if _, err := rand.Read(token); err != nil {
		// crypto/rand failing means the platform is broken; a fixed
		// fallback keeps the generated code valid.
		return "fallbacksuffix"
	}
	return hex.EncodeToString(token)
}
