package lsp

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/tailscale/hujson"

	"xctheme/internal/color"
	"xctheme/internal/vscode"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

const diagnosticSource = "vstheme"

// AnalysisResult holds everything produced by analyzing a theme document.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	// Theme is the parsed canonical theme, nil when the document does not
	// parse.
	Theme *vscode.Theme
	// Colors lists every hex color literal with its position.
	Colors []ColorLocation
}

// ColorLocation records a color literal at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Color color.Color
	// Text is the literal as written, including the leading #.
	Text string
}

// hexLiteral matches a # followed by hex digits. Length validation happens
// afterwards so odd-length literals can be reported as warnings rather than
// silently skipped.
var hexLiteral = regexp.MustCompile(`#[0-9a-fA-F]+`)

// Analyze scans a theme JSON document for color literals and runs the
// conversion pipeline for structural diagnostics. The scan is line-based and
// tolerant of comments, so color information stays available while the
// document is mid-edit.
func Analyze(content string) *AnalysisResult {
	result := &AnalysisResult{}
	result.scanColors(content)
	result.parseTheme(content)
	return result
}

// scanColors records the position of every hex literal and emits warnings for
// literals that are not a valid 3, 6, or 8 digit color.
func (r *AnalysisResult) scanColors(content string) {
	for lineNo, line := range strings.Split(content, "\n") {
		for _, loc := range hexLiteral.FindAllStringIndex(line, -1) {
			text := line[loc[0]:loc[1]]
			rng := protocol.Range{
				Start: protocol.Position{Line: uint32(lineNo), Character: uint32(loc[0])},
				End:   protocol.Position{Line: uint32(lineNo), Character: uint32(loc[1])},
			}

			c, err := color.ParseHex(text)
			if err != nil {
				r.addDiagnostic(rng, DiagWarning, fmt.Sprintf("%q is not a valid color: expected 3, 6 or 8 hex digits", text))
				continue
			}

			r.Colors = append(r.Colors, ColorLocation{Range: rng, Color: c, Text: text})
		}
	}
}

// parseTheme runs the document through the same pipeline the converter uses
// and reports failures at the top of the document.
func (r *AnalysisResult) parseTheme(content string) {
	docStart := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 1},
	}

	std, err := hujson.Standardize([]byte(content))
	if err != nil {
		r.addDiagnostic(docStart, DiagError, fmt.Sprintf("reading theme JSON: %v", err))
		return
	}

	var decoded any
	if err := json.Unmarshal(std, &decoded); err != nil {
		r.addDiagnostic(docStart, DiagError, fmt.Sprintf("decoding theme JSON: %v", err))
		return
	}

	theme, err := vscode.Parse(decoded)
	if err != nil {
		r.addDiagnostic(docStart, DiagError, err.Error())
		return
	}

	r.Theme = theme
}

func (r *AnalysisResult) addDiagnostic(rng protocol.Range, severity protocol.DiagnosticSeverity, msg string) {
	r.Diagnostics = append(r.Diagnostics, protocol.Diagnostic{
		Range:    rng,
		Severity: &severity,
		Source:   strPtr(diagnosticSource),
		Message:  msg,
	})
}

func strPtr(s string) *string {
	return &s
}
