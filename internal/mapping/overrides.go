package mapping

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"

	"xctheme/internal/color"
)

// Overrides holds user adjustments to the translation tables, loaded from an
// HCL file with an optional colors block and an optional scopes map:
//
//	colors {
//	  background = "#101014"
//	}
//
//	scopes = {
//	  "entity.name.tag" = "xcode.syntax.markup"
//	}
//
// Names in the colors block address base-table entries by short name
// (background, selection, currentline, insertion, plain). Scope names contain
// dots, so scopes is a map attribute rather than a block.
type Overrides struct {
	// Colors maps output plist keys to replacement default component strings.
	Colors map[string]string
	// Scopes holds additional scope-to-syntax-key mappings.
	Scopes map[string]string
}

// colorAliases maps the short names accepted in the colors block to base
// table keys.
var colorAliases = map[string]string{
	"background":  "DVTSourceTextBackground",
	"selection":   "DVTSourceTextSelectionColor",
	"currentline": "DVTSourceTextCurrentLineHighlightColor",
	"insertion":   "DVTSourceTextInsertionPointColor",
	"plain":       PlainKey,
}

// LoadOverrides parses an HCL overrides file.
func LoadOverrides(path string) (*Overrides, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading overrides file: %w", err)
	}
	return ParseOverrides(src, path)
}

// ParseOverrides parses HCL overrides source. The filename is used in
// diagnostics only.
func ParseOverrides(src []byte, filename string) (*Overrides, error) {
	file, diags := hclsyntax.ParseConfig(src, filename, hcl.Pos{Line: 1, Column: 1})
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing HCL: %s", diags.Error())
	}

	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parsing HCL: unexpected body type")
	}

	o := &Overrides{
		Colors: make(map[string]string),
		Scopes: make(map[string]string),
	}

	for name, attr := range body.Attributes {
		if name != "scopes" {
			return nil, fmt.Errorf("unknown attribute %q (valid: scopes)", name)
		}
		if err := o.parseScopes(attr); err != nil {
			return nil, err
		}
	}

	for _, block := range body.Blocks {
		if block.Type != "colors" {
			return nil, fmt.Errorf("unknown block %q (valid: colors)", block.Type)
		}
		if err := o.parseColorsBlock(block.Body); err != nil {
			return nil, err
		}
	}

	return o, nil
}

func (o *Overrides) parseColorsBlock(body *hclsyntax.Body) error {
	for name, attr := range body.Attributes {
		key, ok := colorAliases[name]
		if !ok {
			return fmt.Errorf("colors.%s: unknown base color (valid: background, selection, currentline, insertion, plain)", name)
		}

		val, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return fmt.Errorf("evaluating colors.%s: %s", name, diags.Error())
		}
		if val.Type() != cty.String {
			return fmt.Errorf("colors.%s: expected string, got %s", name, val.Type().FriendlyName())
		}

		hex := val.AsString()
		if _, err := color.ParseHex(hex); err != nil {
			return fmt.Errorf("colors.%s: %w", name, err)
		}

		o.Colors[key] = color.Components(hex, "")
	}
	return nil
}

func (o *Overrides) parseScopes(attr *hclsyntax.Attribute) error {
	val, diags := attr.Expr.Value(nil)
	if diags.HasErrors() {
		return fmt.Errorf("evaluating scopes: %s", diags.Error())
	}
	if !val.Type().IsObjectType() && !val.Type().IsMapType() {
		return fmt.Errorf("scopes: expected a map of scope to syntax key, got %s", val.Type().FriendlyName())
	}

	for scope, entry := range val.AsValueMap() {
		if entry.Type() != cty.String {
			return fmt.Errorf("scopes[%q]: expected string, got %s", scope, entry.Type().FriendlyName())
		}
		o.Scopes[scope] = entry.AsString()
	}
	return nil
}

// Apply returns a copy of t with the overrides folded in. The receiver's
// input tables are never mutated.
func (o *Overrides) Apply(t *Tables) *Tables {
	out := t.Clone()
	for i, base := range out.Base {
		if comps, ok := o.Colors[base.Key]; ok {
			out.Base[i].Default = comps
		}
	}
	for scope, key := range o.Scopes {
		out.Scopes[scope] = key
	}
	return out
}
