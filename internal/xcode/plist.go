package xcode

import (
	"sort"
	"strings"

	"xctheme/internal/mapping"
)

const plistHeader = `<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
`

const plistFooter = `</dict>
</plist>
`

// renderPlist serializes the translated colors as an Xcode color-theme
// property list. Output is deterministic: editor colors follow the base table
// order, syntax keys are sorted, and the theme name (when non-empty) comes
// last. All emitted strings are XML-escaped.
func renderPlist(base, syntax map[string]string, name string, tables *mapping.Tables) string {
	var sb strings.Builder
	sb.WriteString(plistHeader)

	for _, b := range tables.Base {
		if b.Key == mapping.PlainKey {
			continue
		}
		writeEntry(&sb, "\t", b.Key, base[b.Key])
	}

	sb.WriteString("\t<key>" + mapping.SyntaxColorsKey + "</key>\n")
	sb.WriteString("\t<dict>\n")
	for _, key := range sortedKeys(syntax) {
		writeEntry(&sb, "\t\t", key, syntax[key])
	}
	sb.WriteString("\t</dict>\n")

	if name != "" {
		writeEntry(&sb, "\t", mapping.ThemeNameKey, name)
	}

	sb.WriteString(plistFooter)
	return sb.String()
}

func writeEntry(sb *strings.Builder, indent, key, value string) {
	sb.WriteString(indent + "<key>" + escape(key) + "</key>\n")
	sb.WriteString(indent + "<string>" + escape(value) + "</string>\n")
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

func escape(s string) string {
	return xmlEscaper.Replace(s)
}

// Filename returns the output file name for a theme name, falling back to
// "theme" when the name is empty.
func Filename(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "theme"
	}
	return name + ".xccolortheme"
}
