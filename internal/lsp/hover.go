package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"xctheme/internal/color"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// extractText extracts the source text at a given LSP range from document
// content. Color literals never span lines, so only the single-line case
// matters here.
func extractText(content string, r protocol.Range) string {
	lines := strings.Split(content, "\n")

	if int(r.Start.Line) >= len(lines) || r.Start.Line != r.End.Line {
		return ""
	}

	line := lines[r.Start.Line]
	startChar := min(int(r.Start.Character), len(line))
	endChar := min(int(r.End.Character), len(line))
	return line[startChar:endChar]
}

// hover produces a Hover response for the given cursor position. When the
// position falls on a color literal, the hover shows the hex form, the rgb()
// form, and the float-quad string the converter will emit for it.
func hover(result *AnalysisResult, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		md := fmt.Sprintf("`%s` · `%s`\n\nXcode: `%s`",
			cl.Color.Hex(), cl.Color.RGB(), color.Components(cl.Text, ""))

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: md,
			},
			Range: &cl.Range,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	result := s.docs.Result(string(params.TextDocument.URI))
	if result == nil {
		return nil, nil
	}
	return hover(result, params.Position), nil
}
