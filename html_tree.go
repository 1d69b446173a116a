package prettyprint

import (
	"bytes"
	"strings"

	"github.com/samber/lo"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// sourceTag is what the tokenizer saw for one start tag.
type sourceTag struct {
	name   string
	values map[string]string
	quotes map[string]byte
}

// sourceTags queues start tags by lowercase name, in source order. Matched
// tags move to taken, where elements the parser clones can find them again.
type sourceTags struct {
	queued map[string][]*sourceTag
	taken  map[string][]*sourceTag
}

// matchWindow bounds how far ahead in a queue a tree element may look for
// its source tag.
const matchWindow = 8

// scanSourceTags tokenizes src and records the original spelling and the
// attribute quote characters of every start tag.
func scanSourceTags(src []byte) *sourceTags {
	tags := &sourceTags{
		queued: make(map[string][]*sourceTag),
		taken:  make(map[string][]*sourceTag),
	}
	z := html.NewTokenizer(bytes.NewReader(src))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return tags
		}
		if tt != html.StartTagToken && tt != html.SelfClosingTagToken {
			continue
		}

		name, quotes := scanRawStartTag(z.Raw())
		lower, hasAttr := z.TagName()
		st := &sourceTag{
			name:   name,
			values: make(map[string]string),
			quotes: quotes,
		}
		for hasAttr {
			var key, val []byte
			key, val, hasAttr = z.TagAttr()
			if _, seen := st.values[string(key)]; !seen {
				st.values[string(key)] = string(val)
			}
		}
		key := string(lower)
		tags.queued[key] = append(tags.queued[key], st)
	}
}

func isTagSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\f' || c == '\r'
}

// scanRawStartTag extracts the tag name spelling and the quote character of
// each attribute from the raw bytes of a start tag.
func scanRawStartTag(raw []byte) (string, map[string]byte) {
	quotes := make(map[string]byte)
	i := 1 // skip '<'
	start := i
	for i < len(raw) && !isTagSpace(raw[i]) && raw[i] != '/' && raw[i] != '>' {
		i++
	}
	name := string(raw[start:i])

	for i < len(raw) {
		for i < len(raw) && (isTagSpace(raw[i]) || raw[i] == '/') {
			i++
		}
		if i >= len(raw) || raw[i] == '>' {
			break
		}

		keyStart := i
		i++ // a leading '=' belongs to the name
		for i < len(raw) && !isTagSpace(raw[i]) && raw[i] != '/' && raw[i] != '=' && raw[i] != '>' {
			i++
		}
		key := strings.ToLower(string(raw[keyStart:i]))

		for i < len(raw) && isTagSpace(raw[i]) {
			i++
		}
		if i >= len(raw) || raw[i] != '=' {
			continue
		}
		i++
		for i < len(raw) && isTagSpace(raw[i]) {
			i++
		}
		if i >= len(raw) {
			break
		}

		var quote byte
		switch raw[i] {
		case '"', '\'':
			quote = raw[i]
			i++
			for i < len(raw) && raw[i] != quote {
				i++
			}
			i++
		default:
			for i < len(raw) && !isTagSpace(raw[i]) && raw[i] != '>' {
				i++
			}
		}
		if _, seen := quotes[key]; !seen {
			quotes[key] = quote
		}
	}
	return name, quotes
}

func htmlAttrKey(a html.Attribute) string {
	if a.Namespace != "" {
		return strings.ToLower(a.Namespace + ":" + a.Key)
	}
	return strings.ToLower(a.Key)
}

// take returns the source tag that produced an element named name with
// attrs, or nil when none fits.
func (st *sourceTags) take(name string, attrs []html.Attribute) *sourceTag {
	key := strings.ToLower(name)
	queue := st.queued[key]
	for i := 0; i < len(queue) && i < matchWindow; i++ {
		if !queue[i].matches(attrs) {
			continue
		}
		found := queue[i]
		if i == 0 {
			st.queued[key] = queue[1:]
		} else {
			st.queued[key] = append(queue[:i], queue[i+1:]...)
		}
		st.taken[key] = append(st.taken[key], found)
		return found
	}
	return st.reuse(key, attrs)
}

// reuse looks for the tag an element was cloned from, such as a formatting
// element the parser reopens after a misnested close tag.
func (st *sourceTags) reuse(key string, attrs []html.Attribute) *sourceTag {
	taken := st.taken[key]
	for i := len(taken) - 1; i >= 0 && i >= len(taken)-matchWindow; i-- {
		if taken[i].matches(attrs) {
			return taken[i]
		}
	}
	return nil
}

func (s *sourceTag) matches(attrs []html.Attribute) bool {
	for _, a := range attrs {
		val, ok := s.values[htmlAttrKey(a)]
		if !ok || val != a.Val {
			return false
		}
	}
	return true
}

// htmlConverter turns an x/net/html tree into a Node tree.
type htmlConverter struct {
	source *sourceTags
	index  map[*html.Node]*Node
}

func convertHTML(root *html.Node, src []byte) (*Node, map[*html.Node]*Node) {
	c := &htmlConverter{
		source: scanSourceTags(src),
		index:  make(map[*html.Node]*Node),
	}
	return c.convert(root), c.index
}

func (c *htmlConverter) convert(h *html.Node) *Node {
	n := &Node{}
	c.index[h] = n

	switch h.Type {
	case html.DocumentNode:
		n.Type = DocumentNode
	case html.ElementNode:
		c.convertElement(h, n)
	case html.TextNode:
		n.Type = TextNode
		if isWhitespace(h.Data) {
			n.Type = WhitespaceNode
		}
		n.Data = h.Data
	case html.CommentNode:
		n.Type = CommentNode
		n.Data = h.Data
	default:
		n.Type = UnknownNode
		n.Data = h.Data
	}

	for child := h.FirstChild; child != nil; child = child.NextSibling {
		if child.Type == html.DoctypeNode {
			if n.Type == DocumentNode && n.Doctype == nil {
				n.Doctype = htmlDoctype(child)
			}
			continue
		}
		n.AppendChild(c.convert(child))
	}
	return n
}

func (c *htmlConverter) convertElement(h *html.Node, n *Node) {
	n.Type = ElementNode
	if h.DataAtom == atom.Template {
		n.Type = TemplateNode
	}
	switch h.Namespace {
	case "svg":
		n.Namespace = NamespaceSVG
	case "math":
		n.Namespace = NamespaceMathML
	}

	if h.DataAtom != 0 {
		n.Tag = h.Data
	}
	n.OriginalTag = h.Data

	// Repeated attributes keep their first occurrence.
	attrs := lo.UniqBy(h.Attr, htmlAttrKey)

	st := c.source.take(h.Data, attrs)
	if st != nil && st.name != "" {
		n.OriginalTag = st.name
	}

	n.Attr = make([]Attribute, 0, len(attrs))
	for _, a := range attrs {
		attr := Attribute{Name: a.Key, Value: a.Val}
		switch a.Namespace {
		case "":
		case "xlink":
			attr.Namespace = AttrNamespaceXLink
		case "xml":
			attr.Namespace = AttrNamespaceXML
		case "xmlns":
			attr.Namespace = AttrNamespaceXMLNS
		default:
			attr.Name = a.Namespace + ":" + a.Key
		}
		if st != nil {
			attr.Quote = st.quotes[htmlAttrKey(a)]
		}
		n.Attr = append(n.Attr, attr)
	}
}

func htmlDoctype(h *html.Node) *Doctype {
	dt := &Doctype{Name: h.Data}
	for _, a := range h.Attr {
		switch a.Key {
		case "public":
			dt.PublicID = a.Val
		case "system":
			dt.SystemID = a.Val
		}
	}
	return dt
}

func isWhitespace(s string) bool {
	return s != "" && strings.Trim(s, " \t\n\f\r") == ""
}
