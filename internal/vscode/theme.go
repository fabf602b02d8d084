// Package vscode normalizes decoded VS Code color-theme documents into a
// canonical Theme. All downstream code operates on the canonical shape only,
// never on raw decoded JSON.
package vscode

// Default values applied during normalization.
const (
	DefaultName = "Untitled Theme"
	DefaultKind = "dark"
)

// Theme is the canonical, validated representation of a VS Code color theme.
type Theme struct {
	Name string
	// Kind is the theme's appearance: "dark", "light", or whatever string the
	// source document declared in its "type" field.
	Kind string
	// Colors maps UI color keys like "editor.background" to hex color strings.
	// Values are passed through unvalidated; the translator falls back to
	// defaults for malformed entries.
	Colors map[string]string
	// TokenColors holds the syntax-highlighting rules in document order.
	TokenColors []TokenRule
	// SemanticHighlightingEnabled mirrors the "semanticHighlighting" flag.
	SemanticHighlightingEnabled bool
	// SemanticTokenColors is carried through for display only; it is never
	// translated.
	SemanticTokenColors map[string]any
}

// TokenRule is a single syntax-highlighting rule. Scopes is always non-nil
// after parsing: a bare scope string becomes a singleton list, and a missing
// or malformed scope field becomes an empty list.
type TokenRule struct {
	Scopes   []string
	Settings Settings
}

// Settings holds the styling attributes of a token rule.
type Settings struct {
	Foreground string
	FontStyle  string
}
