/*
Package aliasmap defines the core domain entity for the merged class alias map.
*/
package aliasmap

import "strings"

/*
MergedAliasMap accumulates every alias declaration found across the installed
packages. AliasToClass maps a case-folded alias name to its canonical class
name; ClassToAliases maps a canonical class name to the set of folded aliases
that point at it.
*/
type MergedAliasMap struct {
	AliasToClass   map[string]string
	ClassToAliases map[string]map[string]struct{}
}

// New returns an empty MergedAliasMap with both directions initialized.
func New() MergedAliasMap {
	return MergedAliasMap{
		AliasToClass:   make(map[string]string),
		ClassToAliases: make(map[string]map[string]struct{}),
	}
}

// Fold normalizes a class or alias name for case-insensitive comparison.
func Fold(name string) string {
	return strings.ToLower(name)
}

/*
Add records one alias declaration. The alias is case-folded before insertion.
A later declaration of the same folded alias overwrites the earlier one in
AliasToClass; the earlier reverse entry is left in place, matching the host
loader's accumulation behavior.
*/
func (m MergedAliasMap) Add(alias, className string) {
	folded := Fold(alias)
	m.AliasToClass[folded] = className
	if m.ClassToAliases[className] == nil {
		m.ClassToAliases[className] = make(map[string]struct{})
	}
	m.ClassToAliases[className][folded] = struct{}{}
}

// IsEmpty reports whether no declarations have been recorded.
func (m MergedAliasMap) IsEmpty() bool {
	return len(m.AliasToClass) == 0
}
