package aliasmap

import "testing"

func TestFold(t *testing.T) {
	if got := Fold(`Foo\Bar`); got != `foo\bar` {
		t.Errorf(`Fold("Foo\Bar") = %q, want "foo\bar"`, got)
	}
}

func TestMergedAliasMap_Add(t *testing.T) {
	t.Run("records both lookup directions", func(t *testing.T) {
		m := New()
		m.Add(`Foo\Bar`, `Foo\Baz`)

		if got := m.AliasToClass[`foo\bar`]; got != `Foo\Baz` {
			t.Errorf(`AliasToClass["foo\bar"] = %q, want "Foo\Baz"`, got)
		}
		if _, ok := m.ClassToAliases[`Foo\Baz`][`foo\bar`]; !ok {
			t.Errorf(`reverse mapping is missing "foo\bar": %v`, m.ClassToAliases)
		}
	})

	t.Run("later declaration overwrites the forward mapping", func(t *testing.T) {
		m := New()
		m.Add(`Legacy\Thing`, `First\Thing`)
		m.Add(`LEGACY\Thing`, `Second\Thing`)

		if got := m.AliasToClass[`legacy\thing`]; got != `Second\Thing` {
			t.Errorf(`AliasToClass["legacy\thing"] = %q, want the later declaration to win`, got)
		}
		// The earlier reverse entry stays, matching the host loader.
		if _, ok := m.ClassToAliases[`First\Thing`][`legacy\thing`]; !ok {
			t.Errorf("earlier reverse entry was dropped: %v", m.ClassToAliases)
		}
	})
}
