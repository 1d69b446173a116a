package prettyprint

// NodeType identifies the kind of a tree node.
type NodeType uint8

const (
	// UnknownNode is a node kind the printer does not understand. It is
	// reported through the warning callback and skipped.
	UnknownNode NodeType = iota
	DocumentNode
	ElementNode
	TextNode
	WhitespaceNode
	CDATANode
	CommentNode
	TemplateNode
)

var nodeTypeNames = map[NodeType]string{
	UnknownNode:    "unknown",
	DocumentNode:   "document",
	ElementNode:    "element",
	TextNode:       "text",
	WhitespaceNode: "whitespace",
	CDATANode:      "cdata",
	CommentNode:    "comment",
	TemplateNode:   "template",
}

func (t NodeType) String() string {
	if name, ok := nodeTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Namespace is the markup namespace of an element.
type Namespace uint8

const (
	NamespaceHTML Namespace = iota
	NamespaceSVG
	NamespaceMathML
)

// AttrNamespace is the namespace tag of an attribute.
type AttrNamespace uint8

const (
	AttrNamespaceNone AttrNamespace = iota
	AttrNamespaceXLink
	AttrNamespaceXML
	AttrNamespaceXMLNS
)

// Attribute is one attribute of an element.
type Attribute struct {
	Name      string
	Value     string
	Namespace AttrNamespace
	// Quote is the quote character that wrapped the value in the source,
	// or 0 when the value was unquoted or the attribute was implied.
	Quote byte
}

// Doctype holds the document type declaration of a document.
type Doctype struct {
	Name     string
	PublicID string
	SystemID string
}

// Node is one node of a parsed markup tree. Trees are built by the parser
// adapters and are read-only once built.
type Node struct {
	Type NodeType

	// Tag is the parser-normalized tag name, empty when the parser did not
	// recognise the tag.
	Tag string
	// OriginalTag is the tag name as spelled in the source.
	OriginalTag string
	Namespace   Namespace

	// Data is the character data of text, whitespace, CDATA and comment
	// nodes.
	Data string

	Attr     []Attribute
	Children []*Node
	// Parent is a lookup reference into the owning tree, nil for the root.
	Parent *Node

	// Doctype is set on document nodes that carried a declaration.
	Doctype *Doctype
}

// AppendChild appends c to n's children and points c back at n.
func (n *Node) AppendChild(c *Node) {
	c.Parent = n
	n.Children = append(n.Children, c)
}

// IsElement reports whether n serializes as an element.
func (n *Node) IsElement() bool {
	return n != nil && (n.Type == ElementNode || n.Type == TemplateNode)
}
