package prettyprint

import "strings"

// QuoteFor returns the quote character used to serialize a. The source
// quote is reused when it was a single quote; everything else, including
// unquoted source values, is written with double quotes.
func QuoteFor(a Attribute) byte {
	if a.Quote == '\'' {
		return '\''
	}
	return '"'
}

// FormatAttribute renders a as ` name="value"`, with a leading space.
// Values are entity-escaped unless noEntities is set.
func FormatAttribute(a Attribute, noEntities bool) string {
	quote := QuoteFor(a)
	value := a.Value
	if !noEntities {
		value = EscapeAttribute(quote, value)
	}

	var sb strings.Builder
	sb.Grow(len(a.Name) + len(value) + 8)
	sb.WriteByte(' ')
	sb.WriteString(AttributeName(a))
	sb.WriteByte('=')
	sb.WriteByte(quote)
	sb.WriteString(value)
	sb.WriteByte(quote)
	return sb.String()
}

// FormatAttributes renders every attribute of n in order.
func FormatAttributes(n *Node, noEntities bool) string {
	var sb strings.Builder
	for _, a := range n.Attr {
		sb.WriteString(FormatAttribute(a, noEntities))
	}
	return sb.String()
}
