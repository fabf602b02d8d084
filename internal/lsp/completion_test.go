package lsp

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func labels(items []protocol.CompletionItem) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[item.Label] = true
	}
	return set
}

func TestCompleteInColorsBlock(t *testing.T) {
	doc := `{
  "colors": {

  }
}`
	items := complete(doc, protocol.Position{Line: 2, Character: 4})
	got := labels(items)

	for _, want := range []string{"editor.background", "editor.foreground", "editorCursor.foreground"} {
		if !got[want] {
			t.Errorf("colors completion missing %q, got %v", want, got)
		}
	}
}

func TestCompleteScopeValue(t *testing.T) {
	doc := `{
  "tokenColors": [
    {
      "scope": "
    }
  ]
}`
	items := complete(doc, protocol.Position{Line: 3, Character: 16})
	got := labels(items)

	for _, want := range []string{"comment", "string.quoted.double", "keyword"} {
		if !got[want] {
			t.Errorf("scope completion missing %q, got %v", want, got)
		}
	}

	// Items carry the target syntax key as detail.
	for _, item := range items {
		if item.Label == "comment" {
			if item.Detail == nil || *item.Detail != "xcode.syntax.comment" {
				t.Errorf("comment detail = %v, want xcode.syntax.comment", item.Detail)
			}
		}
	}
}

func TestCompleteScopeArray(t *testing.T) {
	doc := `{
  "tokenColors": [
    {
      "scope": [
        "
    }
  ]
}`
	items := complete(doc, protocol.Position{Line: 4, Character: 9})
	if !labels(items)["string"] {
		t.Errorf("scope array completion missing %q", "string")
	}
}

func TestCompleteSettings(t *testing.T) {
	doc := `{
  "tokenColors": [
    {
      "settings": {

      }
    }
  ]
}`
	items := complete(doc, protocol.Position{Line: 4, Character: 8})
	got := labels(items)
	if !got["foreground"] || !got["fontStyle"] {
		t.Errorf("settings completion = %v, want foreground and fontStyle", got)
	}
}

func TestCompleteTopLevel(t *testing.T) {
	doc := `{

}`
	items := complete(doc, protocol.Position{Line: 1, Character: 2})
	got := labels(items)
	for _, want := range []string{"colors", "tokenColors", "semanticHighlighting"} {
		if !got[want] {
			t.Errorf("top-level completion missing %q, got %v", want, got)
		}
	}
}

func TestEnclosingKeys(t *testing.T) {
	doc := []string{
		`{`,
		`  "tokenColors": [`,
		`    {`,
		`      "settings": {`,
		`        `,
	}
	chain := enclosingKeys(doc, 4, 4)

	if len(chain) != 2 || chain[0] != "settings" || chain[1] != "tokenColors" {
		t.Errorf("enclosingKeys = %v, want [settings tokenColors]", chain)
	}
}
