// Package mapping holds the fixed tables that drive theme translation: the
// base editor colors with their defaults, the scope-to-syntax-key table, the
// scope priority order, and the set of syntax keys every theme must define.
// The package-level tables are shared, immutable data; use Tables.Clone (or
// an overrides file, see overrides.go) to derive a modified set.
package mapping

import (
	"slices"
	"strings"
)

// Plist keys used by the output document.
const (
	// PlainKey is the syntax entry for unhighlighted source text. It is filled
	// from editor.foreground alongside the base colors but serialized inside
	// the syntax colors dict.
	PlainKey = "xcode.syntax.plain"

	// SyntaxColorsKey is the plist key of the nested syntax colors dict.
	SyntaxColorsKey = "DVTSourceTextSyntaxColors"

	// ThemeNameKey is the plist key carrying the theme's display name.
	ThemeNameKey = "DVTFontAndColorThemeName"
)

// UnlistedPriority is the priority assigned to scopes missing from the
// priority list; it loses against every listed scope.
const UnlistedPriority = 999

// BaseColor pairs an output plist key with the VS Code color key it is filled
// from and its literal default. The defaults are load-bearing: golden output
// for an empty theme depends on them byte for byte.
type BaseColor struct {
	Key     string
	Source  string
	Default string
}

// Tables is the full set of translation tables.
type Tables struct {
	// Base lists the required output colors in serialization order.
	Base []BaseColor
	// Scopes maps VS Code token scopes to output syntax keys. Several scopes
	// may map to the same key.
	Scopes map[string]string
	// Priority orders scopes most-specific first; a lower index wins when two
	// scopes compete for the same output key.
	Priority []string
	// Required lists the syntax keys that receive the plain-text color when no
	// token rule resolved them.
	Required []string
}

var defaultTables = Tables{
	Base: []BaseColor{
		{Key: "DVTSourceTextBackground", Source: "editor.background", Default: "0.0584239 0.0584239 0.0584239 1"},
		{Key: "DVTSourceTextSelectionColor", Source: "editor.selectionBackground", Default: "0.253963 0.279965 0.351202 1"},
		{Key: "DVTSourceTextCurrentLineHighlightColor", Source: "editor.lineHighlightBackground", Default: "0.107309 0.113809 0.131618 1"},
		{Key: "DVTSourceTextInsertionPointColor", Source: "editorCursor.foreground", Default: "0.973 0.973 0.941 1"},
		{Key: PlainKey, Source: "editor.foreground", Default: "0.973 0.973 0.941 1"},
	},
	Scopes: map[string]string{
		"comment":              "xcode.syntax.comment",
		"string":               "xcode.syntax.string",
		"string.quoted":        "xcode.syntax.string",
		"string.quoted.double": "xcode.syntax.string",
		"string.quoted.single": "xcode.syntax.string",
		"constant.character":   "xcode.syntax.character",
		"string.character":     "xcode.syntax.character",
		"character":            "xcode.syntax.character",
		"keyword":              "xcode.syntax.keyword",
		"number":               "xcode.syntax.number",
		"variable":             "xcode.syntax.identifier.variable",
		"function":             "xcode.syntax.identifier.function",
		"type":                 "xcode.syntax.identifier.type",
		"class":                "xcode.syntax.identifier.class",
		"constant":             "xcode.syntax.identifier.constant",
		"attribute":            "xcode.syntax.attribute",
	},
	Priority: []string{
		"attribute",
		"constant",
		"class",
		"type",
		"function",
		"variable",
		"number",
		"keyword",
		"comment",
		"character",
		"string.character",
		"constant.character",
		"string.quoted.single",
		"string.quoted.double",
		"string.quoted",
		"string",
	},
	Required: []string{
		PlainKey,
		"xcode.syntax.comment",
		"xcode.syntax.string",
		"xcode.syntax.keyword",
		"xcode.syntax.number",
		"xcode.syntax.identifier.variable",
		"xcode.syntax.identifier.constant",
	},
}

// Default returns the shared default tables. Callers must not mutate the
// result; derive a copy with Clone instead.
func Default() *Tables {
	return &defaultTables
}

// Clone returns a deep copy safe for modification.
func (t *Tables) Clone() *Tables {
	scopes := make(map[string]string, len(t.Scopes))
	for k, v := range t.Scopes {
		scopes[k] = v
	}
	return &Tables{
		Base:     slices.Clone(t.Base),
		Scopes:   scopes,
		Priority: slices.Clone(t.Priority),
		Required: slices.Clone(t.Required),
	}
}

// ScopePriority returns the priority index of a scope: its position in the
// priority list, or UnlistedPriority when absent.
func (t *Tables) ScopePriority(scope string) int {
	if i := slices.Index(t.Priority, scope); i >= 0 {
		return i
	}
	return UnlistedPriority
}

// Resolve maps a scope string to its output syntax key. It tries an exact
// match first, then the substring before the first dot, so "comment.line.ruby"
// still lands on the comment key. The second return reports whether a mapping
// was found.
func (t *Tables) Resolve(scope string) (string, bool) {
	if key, ok := t.Scopes[scope]; ok {
		return key, ok
	}
	head, _, found := strings.Cut(scope, ".")
	if !found {
		return "", false
	}
	key, ok := t.Scopes[head]
	return key, ok
}
