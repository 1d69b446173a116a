package prettyprint

import "strings"

// The replacer makes a single pass, so generated entities are never escaped again.
var textReplacer = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
)

// EscapeText substitutes the XML entities for &, < and > in s.
func EscapeText(s string) string {
	return textReplacer.Replace(s)
}

// EscapeAttribute escapes s for use inside an attribute value wrapped in
// quote. Only the quote character actually used is escaped.
func EscapeAttribute(quote byte, s string) string {
	s = EscapeText(s)
	switch quote {
	case '"':
		s = strings.ReplaceAll(s, `"`, "&quot;")
	case '\'':
		s = strings.ReplaceAll(s, "'", "&apos;")
	}
	return s
}
