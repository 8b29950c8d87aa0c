/*
Package mapemission serializes the merged alias map into the generated
loadable data file inside the host's generated-artifacts directory.
*/
package mapemission

import (
	"bytes"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/odoliveira/aliasloader/internal/adapters/atomicfile"
	"github.com/odoliveira/aliasloader/internal/core/domain/aliasmap"
	"github.com/odoliveira/aliasloader/internal/core/ports"
)

// Filename is the fixed name of the generated alias map file inside the
// generated-artifacts directory.
const Filename = "autoload_classaliasmap.php"

const mapFileTemplate = `<?php

// {{.Filename}} @generated by aliasloader

return array(
    'aliasToClassNameMapping' => array(
{{- range .AliasEntries}}
        '{{.Key}}' => '{{.Value}}',
{{- end}}
    ),
    'classNameToAliasMapping' => array(
{{- range .ClassEntries}}
        '{{.Class}}' => array(
{{- range .Aliases}}
            '{{.}}' => '{{.}}',
{{- end}}
        ),
{{- end}}
    ),
);
`

type aliasEntry struct {
	Key   string
	Value string
}

type classEntry struct {
	Class   string
	Aliases []string
}

type templateData struct {
	Filename     string
	AliasEntries []aliasEntry
	ClassEntries []classEntry
}

// Emitter implements the ports.MapFileEmitter interface.
type Emitter struct {
	template *template.Template
}

// NewEmitter creates a new Emitter.
func NewEmitter() ports.MapFileEmitter {
	return &Emitter{
		template: template.Must(template.New("aliasmap").Parse(mapFileTemplate)),
	}
}

/*
Emit writes the full merged map into the generated-artifacts directory. Keys
are emitted in sorted order so the output is deterministic for a given map,
and the file is written to a temporary path and renamed into place so readers
never observe a partial write.
*/
func (e *Emitter) Emit(merged aliasmap.MergedAliasMap, generatedDir string) error {
	var buf bytes.Buffer
	if err := e.template.Execute(&buf, buildTemplateData(merged)); err != nil {
		return fmt.Errorf("failed to render alias map file: %w", err)
	}
	return atomicfile.WriteFile(filepath.Join(generatedDir, Filename), buf.Bytes())
}

func buildTemplateData(merged aliasmap.MergedAliasMap) templateData {
	data := templateData{Filename: Filename}

	aliasKeys := sortedKeys(merged.AliasToClass)
	for _, alias := range aliasKeys {
		data.AliasEntries = append(data.AliasEntries, aliasEntry{
			Key:   phpQuote(alias),
			Value: phpQuote(merged.AliasToClass[alias]),
		})
	}

	classKeys := make([]string, 0, len(merged.ClassToAliases))
	for className := range merged.ClassToAliases {
		classKeys = append(classKeys, className)
	}
	sort.Strings(classKeys)
	for _, className := range classKeys {
		entry := classEntry{Class: phpQuote(className)}
		for alias := range merged.ClassToAliases[className] {
			entry.Aliases = append(entry.Aliases, phpQuote(alias))
		}
		sort.Strings(entry.Aliases)
		data.ClassEntries = append(data.ClassEntries, entry)
	}

	return data
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// phpQuote escapes a class name for a single-quoted PHP string literal.
func phpQuote(name string) string {
	escaped := strings.ReplaceAll(name, `\`, `\\`)
	return strings.ReplaceAll(escaped, `'`, `\'`)
}
