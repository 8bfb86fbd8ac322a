package sgml

import "strings"

// LineSeparator terminates every line regardless of platform.
const LineSeparator = "\r\n"

var valueEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// Escape replaces '&', '<' and '>' in an element value with entity
// references. Quotes are left alone. Escape is not idempotent: "&amp;"
// becomes "&amp;amp;".
func Escape(value string) string {
	if !strings.ContainsAny(value, "&<>") {
		return value
	}
	return valueEscaper.Replace(value)
}

// Indent returns the indentation for an aggregate depth.
func Indent(depth, tabLength int) string {
	n := depth * tabLength
	if n <= 0 || depth < 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}
