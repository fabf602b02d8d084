// Package xctheme converts Visual Studio Code color themes into Xcode
// .xccolortheme documents.
package xctheme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"

	"xctheme/internal/mapping"
	"xctheme/internal/vscode"
	"xctheme/internal/xcode"
)

// Theme is the canonical in-memory representation of a source theme.
type Theme = vscode.Theme

// Load reads a VS Code theme file (JSON, comments and trailing commas
// allowed) and returns the canonical theme. When the document carries no name
// of its own, one is derived from the file name.
func Load(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return LoadBytes(data, filepath.Base(path))
}

// LoadBytes decodes theme JSON from memory. sourceName is used only to derive
// a theme name when the document lacks one; pass "" to skip that step.
// Validation failures surface as *vscode.ValidationError.
func LoadBytes(data []byte, sourceName string) (*Theme, error) {
	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, fmt.Errorf("reading theme JSON: %w", err)
	}

	var decoded any
	if err := json.Unmarshal(std, &decoded); err != nil {
		return nil, fmt.Errorf("decoding theme JSON: %w", err)
	}

	theme, err := vscode.Parse(decoded)
	if err != nil {
		return nil, err
	}

	if obj, ok := decoded.(map[string]any); ok {
		if _, hasName := obj["name"]; !hasName && sourceName != "" {
			if derived := nameFromFile(sourceName); derived != "" {
				theme.Name = derived
			}
		}
	}

	return theme, nil
}

// Convert renders a canonical theme as an .xccolortheme document using the
// default mapping tables.
func Convert(t *Theme) string {
	return xcode.Translate(t)
}

// ConvertWith renders a canonical theme with mapping overrides applied.
func ConvertWith(t *Theme, overrides *mapping.Overrides) string {
	if overrides == nil {
		return xcode.Translate(t)
	}
	return xcode.TranslateWith(t, overrides.Apply(mapping.Default()))
}

// OutputFilename returns the suggested file name for a converted theme.
func OutputFilename(t *Theme) string {
	return xcode.Filename(t.Name)
}

// nameFromFile derives a theme name from a source file name by stripping the
// final extension, so "monokai.color-theme.json" becomes "monokai.color-theme".
func nameFromFile(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name))
}
