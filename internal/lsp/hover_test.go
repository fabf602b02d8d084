package lsp

import (
	"strings"
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestHoverOnColor(t *testing.T) {
	result := Analyze(testDoc)

	h := hover(result, protocol.Position{Line: 2, Character: 28})
	if h == nil {
		t.Fatal("hover returned nil on a color literal")
	}

	md := h.Contents.(protocol.MarkupContent).Value
	if !strings.Contains(md, "#191724") {
		t.Errorf("hover %q missing hex form", md)
	}
	if !strings.Contains(md, "rgb(25, 23, 36)") {
		t.Errorf("hover %q missing rgb form", md)
	}
	if !strings.Contains(md, "0.098039 0.090196 0.141176 1") {
		t.Errorf("hover %q missing the Xcode component string", md)
	}
}

func TestHoverOffColor(t *testing.T) {
	result := Analyze(testDoc)

	positions := []protocol.Position{
		{Line: 0, Character: 0},
		{Line: 2, Character: 10}, // on the key, not the value
		{Line: 2, Character: 33}, // end position is exclusive
	}
	for _, pos := range positions {
		if h := hover(result, pos); h != nil {
			t.Errorf("hover at %v = %v, want nil", pos, h)
		}
	}
}

func TestHoverNilResult(t *testing.T) {
	if h := hover(nil, protocol.Position{}); h != nil {
		t.Errorf("hover(nil) = %v, want nil", h)
	}
}

func TestPosInRange(t *testing.T) {
	r := protocol.Range{
		Start: protocol.Position{Line: 1, Character: 5},
		End:   protocol.Position{Line: 1, Character: 10},
	}

	tests := []struct {
		name string
		pos  protocol.Position
		want bool
	}{
		{"start is inclusive", protocol.Position{Line: 1, Character: 5}, true},
		{"inside", protocol.Position{Line: 1, Character: 7}, true},
		{"end is exclusive", protocol.Position{Line: 1, Character: 10}, false},
		{"before", protocol.Position{Line: 1, Character: 4}, false},
		{"other line", protocol.Position{Line: 2, Character: 7}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := posInRange(tt.pos, r); got != tt.want {
				t.Errorf("posInRange(%v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}
