package lsp

import (
	"fmt"
	"strings"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"xctheme/internal/color"
)

// colorToLSP converts an internal color.Color (uint8 RGBA) to a
// protocol.Color (0.0-1.0 per channel).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   protocol.Decimal(c.R) / 255.0,
		Green: protocol.Decimal(c.G) / 255.0,
		Blue:  protocol.Decimal(c.B) / 255.0,
		Alpha: protocol.Decimal(c.A) / 255.0,
	}
}

// documentColors converts the analysis result's color locations into LSP
// ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// colorPresentation produces a replacement hex literal for a color picked in
// the editor. The replacement keeps the surrounding quotes when the original
// range included them.
func colorPresentation(content string, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	r := uint8(params.Color.Red * 255)
	g := uint8(params.Color.Green * 255)
	b := uint8(params.Color.Blue * 255)
	hexStr := fmt.Sprintf("#%02x%02x%02x", r, g, b)
	if params.Color.Alpha < 1.0 {
		hexStr += fmt.Sprintf("%02x", uint8(params.Color.Alpha*255))
	}

	text := extractText(content, params.Range)
	if !strings.HasPrefix(text, "\"") && !strings.HasPrefix(text, "#") {
		return []protocol.ColorPresentation{}
	}

	newText := hexStr
	if strings.HasPrefix(text, "\"") {
		newText = "\"" + hexStr + "\""
	}

	return []protocol.ColorPresentation{
		{
			Label: hexStr,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: newText,
			},
		},
	}
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	return documentColors(s.docs.Result(string(params.TextDocument.URI))), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	content, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(content, params), nil
}
