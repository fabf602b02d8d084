package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color represents an RGBA color. The R, G, B, A uint8 fields are the source
// of truth; all output formats are derived from them.
type Color struct {
	R, G, B, A uint8
}

// ParseHex parses a hex color string into a Color. Accepted forms, with or
// without a leading #: RGB (each digit duplicated), RRGGBB (alpha defaults to
// full opacity), and RRGGBBAA.
func ParseHex(s string) (Color, error) {
	h, ok := normalizeHex(s)
	if !ok {
		return Color{}, fmt.Errorf("invalid hex color %q: must be 3, 6 or 8 hex digits", s)
	}
	var r, g, b, a uint8
	_, err := fmt.Sscanf(h, "%02x%02x%02x%02x", &r, &g, &b, &a)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	return Color{R: r, G: g, B: b, A: a}, nil
}

// normalizeHex trims the input, strips a leading #, expands the 3-digit
// shorthand, and pads a missing alpha channel. Returns false if the result
// is not exactly 8 hex digits.
func normalizeHex(s string) (string, bool) {
	h := strings.TrimSpace(s)
	h = strings.TrimPrefix(h, "#")

	if len(h) == 3 {
		var sb strings.Builder
		for _, c := range h {
			sb.WriteRune(c)
			sb.WriteRune(c)
		}
		h = sb.String()
	}
	if len(h) == 6 {
		h += "FF"
	}
	if len(h) != 8 {
		return "", false
	}
	for _, c := range h {
		if !isHexDigit(c) {
			return "", false
		}
	}
	return h, true
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

// DefaultComponents is the fallback used by Components when none is supplied:
// opaque white.
const DefaultComponents = "1 1 1 1"

// Components converts a hex color string into the space-separated float-quad
// form used by .xccolortheme files, e.g. "0.501961 0.501961 0.501961 1".
// Channels are emitted in R G B A order, each normalized to [0,1] and rounded
// to 6 decimal digits. Malformed input returns fallback verbatim; an empty
// fallback means DefaultComponents.
func Components(hex, fallback string) string {
	if fallback == "" {
		fallback = DefaultComponents
	}

	c, err := ParseHex(hex)
	if err != nil {
		return fallback
	}

	return strings.Join([]string{
		formatChannel(c.R),
		formatChannel(c.G),
		formatChannel(c.B),
		formatChannel(c.A),
	}, " ")
}

// formatChannel normalizes a byte channel to [0,1], rounds to 6 decimals, and
// trims trailing zeros so 255 renders as "1" rather than "1.000000".
func formatChannel(v uint8) string {
	f := math.Round(float64(v)/255.0*1e6) / 1e6
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Hex returns the color as a hex string with leading #, e.g. "#eb6f92".
// The alpha channel is omitted when fully opaque.
func (c Color) Hex() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// RGB returns the color as an rgb() string, e.g. "rgb(235, 111, 146)".
func (c Color) RGB() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}
