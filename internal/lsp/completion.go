package lsp

import (
	"sort"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"xctheme/internal/mapping"
)

// topLevelKeys are the document fields the converter reads.
var topLevelKeys = []string{
	"name", "type", "colors", "tokenColors", "semanticHighlighting", "semanticTokenColors",
}

// settingsKeys are the token-rule settings the converter reads.
var settingsKeys = []string{"foreground", "fontStyle"}

// complete produces completion items for the cursor position. The context is
// derived from the chain of enclosing JSON keys: inside "colors" the editor
// color keys the converter maps are offered, inside a "scope" value the
// translatable scopes, inside "settings" the rule settings, and at the root
// the document's top-level keys.
func complete(content string, pos protocol.Position) []protocol.CompletionItem {
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return nil
	}

	chain := enclosingKeys(lines, int(pos.Line), int(pos.Character))

	if len(chain) > 0 {
		switch chain[0] {
		case "scope":
			return scopeCompletions()
		case "colors":
			return colorKeyCompletions()
		case "settings":
			return plainCompletions(settingsKeys, protocol.CompletionItemKindField)
		}
	}

	// "scope": "..." with the value on the same line has no enclosing scope
	// key; detect it from the text before the cursor.
	line := lines[pos.Line]
	before := line[:min(int(pos.Character), len(line))]
	if idx := strings.LastIndex(before, `"scope"`); idx >= 0 && strings.Contains(before[idx:], ":") {
		return scopeCompletions()
	}

	if len(chain) == 0 {
		return plainCompletions(topLevelKeys, protocol.CompletionItemKindField)
	}
	return nil
}

// enclosingKeys walks backwards from the cursor and returns the JSON keys of
// the unclosed objects and arrays around it, innermost first. Anonymous
// containers (array elements) contribute nothing to the chain.
func enclosingKeys(lines []string, lineNo, char int) []string {
	var chain []string
	depth := 0

	for l := lineNo; l >= 0; l-- {
		text := lines[l]
		if l == lineNo {
			text = text[:min(char, len(text))]
		}

		for i := len(text) - 1; i >= 0; i-- {
			switch text[i] {
			case '}', ']':
				depth++
			case '{', '[':
				if depth > 0 {
					depth--
					continue
				}
				if key, ok := keyBefore(text[:i]); ok {
					chain = append(chain, key)
				}
			}
		}
	}

	return chain
}

// keyBefore extracts the JSON key preceding an opening brace, i.e. the quoted
// string in `"colors": {`. Returns false for anonymous containers.
func keyBefore(text string) (string, bool) {
	trimmed := strings.TrimRight(text, " \t")
	if !strings.HasSuffix(trimmed, ":") {
		return "", false
	}
	trimmed = strings.TrimRight(strings.TrimSuffix(trimmed, ":"), " \t")
	if !strings.HasSuffix(trimmed, `"`) {
		return "", false
	}
	start := strings.LastIndex(trimmed[:len(trimmed)-1], `"`)
	if start < 0 {
		return "", false
	}
	return trimmed[start+1 : len(trimmed)-1], true
}

// scopeCompletions lists every scope the default tables translate, with the
// syntax key it lands on.
func scopeCompletions() []protocol.CompletionItem {
	tables := mapping.Default()
	kind := protocol.CompletionItemKindValue

	scopes := make([]string, 0, len(tables.Scopes))
	for scope := range tables.Scopes {
		scopes = append(scopes, scope)
	}
	sort.Strings(scopes)

	items := make([]protocol.CompletionItem, 0, len(scopes))
	for _, scope := range scopes {
		detail := tables.Scopes[scope]
		items = append(items, protocol.CompletionItem{
			Label:  scope,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return items
}

// colorKeyCompletions lists the editor color keys the converter maps, with
// the plist key each one fills.
func colorKeyCompletions() []protocol.CompletionItem {
	kind := protocol.CompletionItemKindColor

	var items []protocol.CompletionItem
	for _, base := range mapping.Default().Base {
		detail := base.Key
		items = append(items, protocol.CompletionItem{
			Label:  base.Source,
			Kind:   &kind,
			Detail: &detail,
		})
	}
	return items
}

func plainCompletions(labels []string, kind protocol.CompletionItemKind) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(labels))
	for _, label := range labels {
		items = append(items, protocol.CompletionItem{
			Label: label,
			Kind:  &kind,
		})
	}
	return items
}

// textDocumentCompletion handles textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return complete(content, params.Position), nil
}
