// Package stringtest builds expected test strings with explicit whitespace,
// so that multi-line or tab-indented output can be spelled out without
// relying on raw string literals that hide trailing tabs and spaces.
package stringtest

import "strings"

// JoinLF joins the given lines with LF line endings.
//
// Example:
//
//	want := stringtest.JoinLF(
//		"{",
//		"}",
//	) // -> "{\n}"
func JoinLF(lines ...string) string {
	var sb strings.Builder
	for i, line := range lines {
		if i > 0 {
			sb.WriteByte('\n')
		}

		sb.WriteString(line)
	}

	return sb.String()
}

// Tabs returns n tab characters. Use it to build indented expected lines
// without counting \t escapes by eye.
func Tabs(n int) string {
	return strings.Repeat("\t", n)
}
