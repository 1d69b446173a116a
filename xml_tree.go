package prettyprint

import (
	"strings"

	"github.com/antchfx/xmlquery"
)

const (
	svgNamespaceURI   = "http://www.w3.org/2000/svg"
	mathNamespaceURI  = "http://www.w3.org/1998/Math/MathML"
	xlinkNamespaceURI = "http://www.w3.org/1999/xlink"
	xmlNamespaceURI   = "http://www.w3.org/XML/1998/namespace"
	xmlnsNamespaceURI = "http://www.w3.org/2000/xmlns/"
)

// xmlConverter turns an xmlquery tree into a Node tree.
type xmlConverter struct {
	index map[*xmlquery.Node]*Node
}

func convertXML(root *xmlquery.Node) (*Node, map[*xmlquery.Node]*Node) {
	c := &xmlConverter{index: make(map[*xmlquery.Node]*Node)}
	return c.convert(root), c.index
}

func (c *xmlConverter) convert(x *xmlquery.Node) *Node {
	n := &Node{}
	c.index[x] = n

	switch x.Type {
	case xmlquery.DocumentNode:
		n.Type = DocumentNode
	case xmlquery.ElementNode:
		c.convertElement(x, n)
	case xmlquery.TextNode:
		n.Type = TextNode
		if isWhitespace(x.Data) {
			n.Type = WhitespaceNode
		}
		n.Data = x.Data
	case xmlquery.CharDataNode:
		n.Type = CDATANode
		n.Data = x.Data
	case xmlquery.CommentNode:
		n.Type = CommentNode
		n.Data = x.Data
	default:
		n.Type = UnknownNode
		n.Data = x.Data
	}

	for child := x.FirstChild; child != nil; child = child.NextSibling {
		// xml declarations are not printed, including the one xmlquery adds
		// when the source has none.
		if child.Type == xmlquery.DeclarationNode && n.Type == DocumentNode {
			continue
		}
		if child.Type == xmlquery.NotationNode && n.Type == DocumentNode {
			if dt, ok := parseDoctypeDirective(child.Data); ok {
				if n.Doctype == nil {
					n.Doctype = dt
				}
				continue
			}
		}
		n.AppendChild(c.convert(child))
	}
	return n
}

func qualifiedName(prefix, local string) string {
	if prefix == "" {
		return local
	}
	return prefix + ":" + local
}

func (c *xmlConverter) convertElement(x *xmlquery.Node, n *Node) {
	n.Type = ElementNode
	n.Tag = qualifiedName(x.Prefix, x.Data)
	n.OriginalTag = n.Tag
	if n.Tag == "template" {
		n.Type = TemplateNode
	}
	switch x.NamespaceURI {
	case svgNamespaceURI:
		n.Namespace = NamespaceSVG
	case mathNamespaceURI:
		n.Namespace = NamespaceMathML
	}

	n.Attr = make([]Attribute, 0, len(x.Attr))
	for _, a := range x.Attr {
		n.Attr = append(n.Attr, xmlAttribute(a))
	}
}

func xmlAttribute(a xmlquery.Attr) Attribute {
	attr := Attribute{Name: a.Name.Local, Value: a.Value}
	space := a.Name.Space
	switch {
	case space == "" && a.Name.Local == "xmlns":
	case space == "xmlns" || a.NamespaceURI == xmlnsNamespaceURI:
		attr.Namespace = AttrNamespaceXMLNS
	case space == "xlink" || a.NamespaceURI == xlinkNamespaceURI:
		attr.Namespace = AttrNamespaceXLink
	case space == "xml" || a.NamespaceURI == xmlNamespaceURI:
		attr.Namespace = AttrNamespaceXML
	case space != "":
		attr.Name = space + ":" + a.Name.Local
	}
	return attr
}

// parseDoctypeDirective reads a `DOCTYPE name [PUBLIC "pub" "sys" | SYSTEM "sys"]`
// directive body.
func parseDoctypeDirective(directive string) (*Doctype, bool) {
	s := strings.TrimSpace(directive)
	if len(s) < len("DOCTYPE") || !strings.EqualFold(s[:len("DOCTYPE")], "DOCTYPE") {
		return nil, false
	}
	s = strings.TrimSpace(s[len("DOCTYPE"):])

	dt := &Doctype{}
	end := strings.IndexFunc(s, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == '['
	})
	if end < 0 {
		dt.Name = s
		return dt, true
	}
	dt.Name = s[:end]
	s = strings.TrimSpace(s[end:])

	var keyword string
	if i := strings.IndexAny(s, " \t\n\r\"'"); i > 0 {
		keyword = strings.ToUpper(s[:i])
		s = strings.TrimSpace(s[i:])
	}
	switch keyword {
	case "PUBLIC":
		dt.PublicID, s = readQuoted(s)
		dt.SystemID, _ = readQuoted(strings.TrimSpace(s))
	case "SYSTEM":
		dt.SystemID, _ = readQuoted(s)
	}
	return dt, true
}

func readQuoted(s string) (string, string) {
	if s == "" || (s[0] != '"' && s[0] != '\'') {
		return "", s
	}
	quote := s[0]
	end := strings.IndexByte(s[1:], quote)
	if end < 0 {
		return s[1:], ""
	}
	return s[1 : end+1], s[end+2:]
}
