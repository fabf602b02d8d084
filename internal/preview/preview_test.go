package preview

import (
	"strings"
	"testing"

	"xctheme/internal/vscode"
)

func TestRender(t *testing.T) {
	theme := &vscode.Theme{
		Name:   "Test Theme",
		Kind:   "dark",
		Colors: map[string]string{"editor.background": "#191724"},
		TokenColors: []vscode.TokenRule{
			{Scopes: []string{"comment"}, Settings: vscode.Settings{Foreground: "#6e6a86"}},
		},
		SemanticHighlightingEnabled: true,
	}

	out := Render(theme)

	for _, want := range []string{
		"Test Theme",
		"DVTSourceTextBackground",
		"0.098039 0.090196 0.141176 1",
		"xcode.syntax.comment",
		"semantic highlighting enabled",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("preview missing %q:\n%s", want, out)
		}
	}
}

func TestComponentsToHex(t *testing.T) {
	tests := []struct {
		name   string
		comps  string
		want   string
		wantOK bool
	}{
		{"white", "1 1 1 1", "#ffffff", true},
		{"mid gray", "0.501961 0.501961 0.501961 1", "#808080", true},
		{"alpha dropped", "0 0 0 0.5", "#000000", true},
		{"wrong arity", "1 1 1", "", false},
		{"out of range", "2 0 0 1", "", false},
		{"not numbers", "a b c d", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := componentsToHex(tt.comps)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("componentsToHex(%q) = (%q, %v), want (%q, %v)", tt.comps, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
