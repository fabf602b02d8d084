// Package preview renders a terminal preview of a converted theme.
package preview

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"xctheme/internal/mapping"
	"xctheme/internal/vscode"
	"xctheme/internal/xcode"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	kindStyle  = lipgloss.NewStyle().Faint(true)
	keyStyle   = lipgloss.NewStyle().Width(40)
	noteStyle  = lipgloss.NewStyle().Faint(true)
)

// Render returns a swatch listing of every color the output document will
// contain: the editor colors in base-table order followed by the syntax
// colors, each with its resolved float-quad value.
func Render(t *vscode.Theme) string {
	return RenderWith(t, mapping.Default())
}

// RenderWith renders a preview using the given tables.
func RenderWith(t *vscode.Theme, tables *mapping.Tables) string {
	base, syntax := xcode.Resolve(t, tables)

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(t.Name))
	sb.WriteString(" " + kindStyle.Render("("+t.Kind+")"))
	sb.WriteString("\n\nEditor\n")

	for _, b := range tables.Base {
		if b.Key == mapping.PlainKey {
			continue
		}
		sb.WriteString(swatchRow(b.Key, base[b.Key]))
	}

	sb.WriteString("\nSyntax\n")
	keys := make([]string, 0, len(syntax))
	for key := range syntax {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		sb.WriteString(swatchRow(key, syntax[key]))
	}

	if t.SemanticHighlightingEnabled {
		sb.WriteString("\n" + noteStyle.Render(fmt.Sprintf(
			"semantic highlighting enabled (%d selectors, not translated)",
			len(t.SemanticTokenColors))))
		sb.WriteString("\n")
	}

	return sb.String()
}

// swatchRow renders one color line: a filled block in the color itself, the
// output key, and the component string.
func swatchRow(key, comps string) string {
	swatch := "      "
	if hex, ok := componentsToHex(comps); ok {
		swatch = lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("      ")
	}
	return fmt.Sprintf("  %s %s %s\n", swatch, keyStyle.Render(key), comps)
}

// componentsToHex converts a float-quad component string back to a hex color
// for terminal display. Alpha is dropped; terminals cannot render it.
func componentsToHex(comps string) (string, bool) {
	fields := strings.Fields(comps)
	if len(fields) != 4 {
		return "", false
	}
	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil || f < 0 || f > 1 {
			return "", false
		}
		rgb[i] = uint8(math.Round(f * 255))
	}
	return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]), true
}
