package prettyprint

import (
	"log/slog"
	"strings"
)

const trimSet = " \n\r\t\v\f"

// Warning describes a node the formatter skipped.
type Warning struct {
	Type   NodeType
	Parent string
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithIndent sets the indentation unit to width copies of char.
func WithIndent(char byte, width int) Option {
	return func(f *Formatter) {
		f.indentChar = char
		f.indentWidth = width
	}
}

// WithWarningHandler sets the callback invoked for skipped nodes.
func WithWarningHandler(fn func(Warning)) Option {
	return func(f *Formatter) {
		f.onWarning = fn
	}
}

// Formatter pretty prints markup trees. A Formatter holds no per-call state
// and may be shared by concurrent callers.
type Formatter struct {
	indentChar  byte
	indentWidth int
	onWarning   func(Warning)
}

// NewFormatter creates a formatter indenting with two spaces and logging
// skipped nodes through slog.
func NewFormatter(opts ...Option) *Formatter {
	f := &Formatter{
		indentChar:  ' ',
		indentWidth: 2,
		onWarning:   logWarning,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func logWarning(w Warning) {
	slog.Warn("skipping unknown node", "type", w.Type, "parent", w.Parent)
}

// Format pretty prints the tree rooted at n. A document prints its doctype
// and root element at column 0; any other node prints itself at column 0.
func Format(n *Node) string {
	return NewFormatter().Format(n)
}

// Format pretty prints the tree rooted at n. Only documents and elements
// can be roots; other nodes print as "".
func (f *Formatter) Format(n *Node) string {
	switch {
	case n == nil:
		return ""
	case n.Type == DocumentNode:
		return f.prettyPrint(n, 0)
	case n.IsElement():
		return f.prettyPrint(n, 1)
	default:
		return ""
	}
}

func (f *Formatter) indentFor(lvl int) string {
	if lvl <= 1 {
		return ""
	}
	return strings.Repeat(string(f.indentChar), (lvl-1)*f.indentWidth)
}

// indentFirstText places text that opens a structural element on its own
// indented line.
func indentFirstText(text, indent string) string {
	return indent + strings.TrimLeft(text, trimSet)
}

// closeStructuralContents right-trims the rendered children of a structural
// element and terminates them with exactly one newline when anything is left.
func closeStructuralContents(contents string) string {
	contents = strings.TrimRight(contents, trimSet)
	if contents != "" {
		contents += "\n"
	}
	return contents
}

func (f *Formatter) prettyPrint(n *Node, lvl int) string {
	if n.Type == DocumentNode {
		return BuildDoctype(n) + f.prettyPrintContents(n, lvl+1)
	}

	tag := TagName(n)
	class := classify(tag)
	// Inline tags directly inside a structural parent are laid out as blocks.
	class.inline = class.inline && !IsStructuralTag(TagName(n.Parent))
	inline := class.inline
	ppOkay := class.prettyPrintable()

	atts := FormatAttributes(n, class.noEntities)

	var selfClose, closeTag string
	if class.void {
		selfClose = "/"
	} else {
		closeTag = "</" + tag + ">"
	}

	indent := f.indentFor(lvl)

	var contents string
	if class.structural && tag != "html" {
		contents = f.prettyPrintContents(n, lvl+1)
	} else {
		contents = f.prettyPrintContents(n, lvl)
	}

	if class.structural {
		contents = closeStructuralContents(contents)
	}

	var sb strings.Builder
	sb.Grow(len(indent)*2 + len(tag)*2 + len(atts) + len(contents) + 8)

	if !inline {
		sb.WriteString(indent)
	}
	sb.WriteString("<" + tag + atts + selfClose + ">")

	if ppOkay && class.structural && contents != "" {
		sb.WriteByte('\n')
	}

	sb.WriteString(contents)

	if ppOkay && contents != "" && !strings.HasSuffix(contents, "\n") && class.structural {
		sb.WriteByte('\n')
	}

	if !inline && class.structural && closeTag != "" && contents != "" {
		sb.WriteString(indent)
	}

	sb.WriteString(closeTag)

	if ppOkay {
		sb.WriteByte('\n')
	}

	return sb.String()
}

func (f *Formatter) prettyPrintContents(n *Node, lvl int) string {
	tag := TagName(n)
	class := classify(tag)

	var sb strings.Builder
	for i, child := range n.Children {
		switch child.Type {
		case TextNode:
			val := child.Data
			if !class.noEntities {
				val = EscapeText(val)
			}
			if i == 0 && class.structural {
				val = indentFirstText(val, f.indentFor(lvl))
			}
			sb.WriteString(val)

		case ElementNode, TemplateNode:
			sb.WriteString(f.prettyPrint(child, lvl))

		case WhitespaceNode:
			if class.keepSpace || class.inline {
				sb.WriteString(child.Data)
			}

		case CDATANode:
			sb.WriteString("<![CDATA[" + child.Data + "]]>")

		case CommentNode:
			sb.WriteString("<!--" + child.Data + "-->")

		default:
			if f.onWarning != nil {
				f.onWarning(Warning{Type: child.Type, Parent: tag})
			}
		}
	}
	return sb.String()
}
