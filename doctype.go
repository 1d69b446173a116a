package prettyprint

import "strings"

// BuildDoctype renders the <!DOCTYPE> preamble of a document node followed
// by a newline. It returns "" when the document has no declaration.
func BuildDoctype(n *Node) string {
	if n == nil || n.Doctype == nil {
		return ""
	}
	dt := n.Doctype

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE ")
	sb.WriteString(dt.Name)
	if dt.PublicID != "" {
		sb.WriteString(` PUBLIC "`)
		sb.WriteString(dt.PublicID)
		sb.WriteString("\"\n    \"")
		sb.WriteString(dt.SystemID)
		sb.WriteString(`"`)
	}
	sb.WriteString(">\n")
	return sb.String()
}
