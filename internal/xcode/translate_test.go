package xcode

import (
	"strings"
	"testing"

	"xctheme/internal/mapping"
	"xctheme/internal/vscode"
)

func emptyTheme() *vscode.Theme {
	return &vscode.Theme{
		Name:        vscode.DefaultName,
		Kind:        vscode.DefaultKind,
		Colors:      map[string]string{},
		TokenColors: []vscode.TokenRule{},
	}
}

func rule(foreground string, scopes ...string) vscode.TokenRule {
	return vscode.TokenRule{
		Scopes:   scopes,
		Settings: vscode.Settings{Foreground: foreground},
	}
}

// entry renders a plist key/string pair the way the serializer does, for
// containment checks.
func entry(indent, key, value string) string {
	return indent + "<key>" + key + "</key>\n" + indent + "<string>" + value + "</string>"
}

func TestTranslateEmptyTheme(t *testing.T) {
	doc := Translate(emptyTheme())

	wantEntries := []string{
		entry("\t", "DVTSourceTextBackground", "0.0584239 0.0584239 0.0584239 1"),
		entry("\t", "DVTSourceTextSelectionColor", "0.253963 0.279965 0.351202 1"),
		entry("\t", "DVTSourceTextCurrentLineHighlightColor", "0.107309 0.113809 0.131618 1"),
		entry("\t", "DVTSourceTextInsertionPointColor", "0.973 0.973 0.941 1"),
		entry("\t\t", "xcode.syntax.plain", "0.973 0.973 0.941 1"),
	}
	for _, want := range wantEntries {
		if !strings.Contains(doc, want) {
			t.Errorf("output missing entry:\n%s\ngot:\n%s", want, doc)
		}
	}

	// Every required syntax key falls back to the plain-text default.
	for _, key := range mapping.Default().Required {
		if !strings.Contains(doc, entry("\t\t", key, "0.973 0.973 0.941 1")) {
			t.Errorf("required key %s not backfilled with plain text color", key)
		}
	}

	if !strings.Contains(doc, `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Error("output missing XML declaration")
	}
	if !strings.Contains(doc, "<!DOCTYPE plist") {
		t.Error("output missing plist DOCTYPE")
	}
}

func TestTranslateBaseColorOverride(t *testing.T) {
	theme := emptyTheme()
	theme.Colors["editor.background"] = "#112233"

	doc := Translate(theme)

	if !strings.Contains(doc, entry("\t", "DVTSourceTextBackground", "0.066667 0.133333 0.2 1")) {
		t.Errorf("background not taken from editor.background:\n%s", doc)
	}
	// The other base colors stay at their defaults.
	if !strings.Contains(doc, entry("\t", "DVTSourceTextSelectionColor", "0.253963 0.279965 0.351202 1")) {
		t.Error("selection color changed without a source value")
	}
}

func TestTranslateMalformedBaseColorKeepsDefault(t *testing.T) {
	theme := emptyTheme()
	theme.Colors["editorCursor.foreground"] = "#nothex"

	doc := Translate(theme)

	if !strings.Contains(doc, entry("\t", "DVTSourceTextInsertionPointColor", "0.973 0.973 0.941 1")) {
		t.Errorf("malformed hex should keep the default:\n%s", doc)
	}
}

func TestTranslateTokenColors(t *testing.T) {
	theme := emptyTheme()
	theme.TokenColors = []vscode.TokenRule{
		rule("#ff0000", "comment"),
		rule("#00ff00", "keyword", "number"),
	}

	doc := Translate(theme)

	if !strings.Contains(doc, entry("\t\t", "xcode.syntax.comment", "1 0 0 1")) {
		t.Error("comment scope not translated")
	}
	if !strings.Contains(doc, entry("\t\t", "xcode.syntax.keyword", "0 1 0 1")) {
		t.Error("keyword scope not translated")
	}
	if !strings.Contains(doc, entry("\t\t", "xcode.syntax.number", "0 1 0 1")) {
		t.Error("second scope of a multi-scope rule not translated")
	}
	// Unassigned required keys still backfill from plain.
	if !strings.Contains(doc, entry("\t\t", "xcode.syntax.string", "0.973 0.973 0.941 1")) {
		t.Error("string key not backfilled")
	}
}

func TestTranslateScopePrefixFallback(t *testing.T) {
	theme := emptyTheme()
	theme.TokenColors = []vscode.TokenRule{
		rule("#ff0000", "comment.line.double-slash"),
		rule("#00ff00", "meta.embedded"),
	}

	doc := Translate(theme)

	if !strings.Contains(doc, entry("\t\t", "xcode.syntax.comment", "1 0 0 1")) {
		t.Error("dotted scope did not fall back to its first segment")
	}
	if strings.Contains(doc, "0 1 0 1") {
		t.Error("unmapped scope leaked into the output")
	}
}

// The more specific scope wins regardless of rule order.
func TestScopePriority(t *testing.T) {
	specific := rule("#ff0000", "string.quoted.double")
	generic := rule("#00ff00", "string")

	for _, tt := range []struct {
		name  string
		rules []vscode.TokenRule
	}{
		{"specific first", []vscode.TokenRule{specific, generic}},
		{"generic first", []vscode.TokenRule{generic, specific}},
	} {
		t.Run(tt.name, func(t *testing.T) {
			theme := emptyTheme()
			theme.TokenColors = tt.rules

			doc := Translate(theme)
			if !strings.Contains(doc, entry("\t\t", "xcode.syntax.string", "1 0 0 1")) {
				t.Errorf("string.quoted.double should win over string:\n%s", doc)
			}
		})
	}
}

// On equal priority the earlier rule wins.
func TestScopePriorityTie(t *testing.T) {
	theme := emptyTheme()
	theme.TokenColors = []vscode.TokenRule{
		rule("#ff0000", "string"),
		rule("#00ff00", "string"),
	}

	doc := Translate(theme)
	if !strings.Contains(doc, entry("\t\t", "xcode.syntax.string", "1 0 0 1")) {
		t.Errorf("earlier rule should win a priority tie:\n%s", doc)
	}
}

func TestTranslateIdempotent(t *testing.T) {
	theme := emptyTheme()
	theme.Name = "Stable"
	theme.Colors["editor.background"] = "#191724"
	theme.TokenColors = []vscode.TokenRule{
		rule("#6e6a86", "comment"),
		rule("#f6c177", "string", "constant.character"),
	}

	if first, second := Translate(theme), Translate(theme); first != second {
		t.Error("translating the same theme twice produced different output")
	}
}

func TestTranslateNameEntry(t *testing.T) {
	theme := emptyTheme()
	theme.Name = "AT&T <Dark>"

	doc := Translate(theme)
	if !strings.Contains(doc, entry("\t", mapping.ThemeNameKey, "AT&amp;T &lt;Dark&gt;")) {
		t.Errorf("theme name not escaped:\n%s", doc)
	}

	theme.Name = ""
	if strings.Contains(Translate(theme), mapping.ThemeNameKey) {
		t.Error("empty name should omit the name entry")
	}
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name  string
		theme string
		want  string
	}{
		{"named", "Monokai", "Monokai.xccolortheme"},
		{"empty", "", "theme.xccolortheme"},
		{"whitespace", "   ", "theme.xccolortheme"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Filename(tt.theme); got != tt.want {
				t.Errorf("Filename(%q) = %q, want %q", tt.theme, got, tt.want)
			}
		})
	}
}
