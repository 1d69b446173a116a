package prettyprint

import (
	"strings"
	"testing"
)

func elem(tag string, attrs []Attribute, children ...*Node) *Node {
	n := &Node{Type: ElementNode, Tag: tag, OriginalTag: tag, Attr: attrs}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *Node { return &Node{Type: TextNode, Data: s} }

func space(s string) *Node { return &Node{Type: WhitespaceNode, Data: s} }

func document(dt *Doctype, children ...*Node) *Node {
	n := &Node{Type: DocumentNode, Doctype: dt}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

// page wraps body children in the html/head/body skeleton every HTML5
// parser produces.
func page(body ...*Node) *Node {
	return document(nil, elem("html", nil, elem("head", nil), elem("body", nil, body...)))
}

func wantPage(body string) string {
	if body == "" {
		return "<html>\n<head></head>\n<body></body>\n</html>\n"
	}
	return "<html>\n<head></head>\n<body>\n" + body + "</body>\n</html>\n"
}

func TestFormatNestedBlocks(t *testing.T) {
	tree := page(elem("div", nil, elem("p", nil, text("Hi & bye"))))

	got := Format(tree)
	expected := wantPage("  <div>\n    <p>Hi &amp; bye</p>\n  </div>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatVoidElement(t *testing.T) {
	tree := page(elem("img", []Attribute{{Name: "src", Value: "foo.png"}}))

	got := Format(tree)
	expected := wantPage("  <img src=\"foo.png\"/>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
	if strings.Contains(got, "</img>") {
		t.Fatalf("void element must not have a closing tag: %q", got)
	}
}

func TestFormatInlineAnchorKeepsQuoteStyle(t *testing.T) {
	tree := page(elem("p", nil,
		text("See "),
		elem("a", []Attribute{{Name: "href", Value: "x", Quote: '\''}}, text("link")),
		text("."),
	))

	got := Format(tree)
	expected := wantPage("  <p>See <a href='x'>link</a>.</p>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatDoctypePreamble(t *testing.T) {
	tree := document(&Doctype{
		Name:     "html",
		PublicID: "-//W3C//DTD XHTML 1.0 Strict//EN",
		SystemID: "http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd",
	}, elem("html", nil))

	got := Format(tree)
	expected := "<!DOCTYPE html PUBLIC \"-//W3C//DTD XHTML 1.0 Strict//EN\"\n" +
		"    \"http://www.w3.org/TR/xhtml1/DTD/xhtml1-strict.dtd\">\n" +
		"<html></html>\n"
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatPreservesPreContent(t *testing.T) {
	content := "  line1\n    line2 <x>\n"
	tree := page(elem("pre", nil, text(content)))

	got := Format(tree)
	expected := wantPage("  <pre>  line1\n    line2 &lt;x&gt;\n</pre>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatScriptIsNotEscaped(t *testing.T) {
	tree := document(nil, elem("html", nil,
		elem("head", nil, elem("script", []Attribute{{Name: "src", Value: "a.js?x=1&y=2"}}, text("\n  var a = 1 < 2;\n"))),
		elem("body", nil),
	))

	got := Format(tree)
	expected := "<html>\n<head>\n" +
		"  <script src=\"a.js?x=1&y=2\">    var a = 1 < 2;\n  </script>\n" +
		"</head>\n<body></body>\n</html>\n"
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatDropsWhitespaceBetweenBlocks(t *testing.T) {
	tree := page(
		space("\n  "),
		elem("ul", nil,
			space("\n    "),
			elem("li", nil, text("One")),
			space("\n    "),
			elem("li", nil, text("Two")),
			space("\n  "),
		),
		space("\n"),
	)

	got := Format(tree)
	expected := wantPage("  <ul>\n    <li>One</li>\n    <li>Two</li>\n  </ul>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatInlineFlow(t *testing.T) {
	tree := page(elem("p", nil,
		elem("span", nil, text("a"), space(" "), elem("em", nil, text("b"))),
	))

	got := Format(tree)
	expected := wantPage("  <p><span>a <em>b</em></span></p>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatInlineTagInsideStructuralParentIsIndented(t *testing.T) {
	tree := page(elem("div", nil, elem("span", nil, text("x"))))

	got := Format(tree)
	expected := wantPage("  <div>\n    <span>x</span>\n  </div>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatFirstTextOfStructuralElement(t *testing.T) {
	tree := page(elem("div", nil, text("\n     hello\n")))

	got := Format(tree)
	expected := wantPage("  <div>\n    hello\n  </div>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatStructuralVoidElement(t *testing.T) {
	tree := page(elem("hr", nil), elem("br", nil))

	got := Format(tree)
	expected := wantPage("  <hr/>\n  <br/>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatCommentAndCDATA(t *testing.T) {
	tree := page(elem("p", nil,
		&Node{Type: CommentNode, Data: " note "},
		&Node{Type: CDATANode, Data: "x<y"},
	))

	got := Format(tree)
	expected := wantPage("  <p><!-- note --><![CDATA[x<y]]></p>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatTemplateLikeElement(t *testing.T) {
	tmpl := elem("template", nil, elem("p", nil, text("t")))
	tmpl.Type = TemplateNode
	tree := page(tmpl)

	got := Format(tree)
	expected := wantPage("  <template>  <p>t</p>\n</template>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatReportsUnknownNodes(t *testing.T) {
	var warnings []Warning
	f := NewFormatter(WithWarningHandler(func(w Warning) {
		warnings = append(warnings, w)
	}))
	tree := page(&Node{Type: UnknownNode, Data: "?"}, elem("p", nil, text("kept")))

	got := f.Format(tree)
	expected := wantPage("  <p>kept</p>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Type != UnknownNode || warnings[0].Parent != "body" {
		t.Fatalf("unexpected warning: %+v", warnings[0])
	}
}

func TestFormatCustomIndent(t *testing.T) {
	f := NewFormatter(WithIndent('\t', 1))
	tree := page(elem("div", nil, elem("p", nil, text("x"))))

	got := f.Format(tree)
	expected := wantPage("\t<div>\n\t\t<p>x</p>\n\t</div>\n")
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatElementRoot(t *testing.T) {
	root := page(elem("div", []Attribute{{Name: "id", Value: "b"}}, elem("span", nil, text("y"))))
	div := root.Children[0].Children[1].Children[0]

	got := Format(div)
	expected := "<div id=\"b\">\n  <span>y</span>\n</div>\n"
	if got != expected {
		t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, expected)
	}
}

func TestFormatNilNode(t *testing.T) {
	if got := Format(nil); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}

func TestCloseStructuralContents(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{" \n\t", ""},
		{"  <p>x</p>\n\n  ", "  <p>x</p>\n"},
		{"text", "text\n"},
	}
	for _, tt := range tests {
		if got := closeStructuralContents(tt.in); got != tt.want {
			t.Fatalf("closeStructuralContents(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIndentFirstText(t *testing.T) {
	if got := indentFirstText("\n \t hello \n", "    "); got != "    hello \n" {
		t.Fatalf("unexpected result: %q", got)
	}
}

func TestFormatTextRootIsEmpty(t *testing.T) {
	if got := Format(text("x")); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
