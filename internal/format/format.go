// Package format normalizes mapping-override HCL files.
package format

import (
	"regexp"

	"github.com/hashicorp/hcl/v2/hclwrite"
)

var (
	repeatedBlankLines    = regexp.MustCompile(`\n{3,}`)
	blankAfterOpenBrace   = regexp.MustCompile(`\{\n\s*\n`)
	blankBeforeCloseBrace = regexp.MustCompile(`\n\s*\n(\s*\})`)
)

// Format rewrites overrides source into canonical HCL style: hclwrite handles
// indentation and alignment, then runs of blank lines collapse to one and
// blank lines hugging braces are removed. Partial or invalid HCL still
// formats, so the fmt command stays usable on files mid-edit.
func Format(content string) string {
	out := string(hclwrite.Format([]byte(content)))
	out = repeatedBlankLines.ReplaceAllString(out, "\n\n")
	out = blankAfterOpenBrace.ReplaceAllString(out, "{\n")
	out = blankBeforeCloseBrace.ReplaceAllString(out, "\n${1}")
	return out
}
