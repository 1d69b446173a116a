package prettyprint

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/antchfx/xmlquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/charset"
)

// InputFormat selects the tree builder used for a source.
type InputFormat string

const (
	FormatAuto     InputFormat = "auto"
	FormatHTML     InputFormat = "html"
	FormatXHTML    InputFormat = "xhtml"
	FormatMarkdown InputFormat = "markdown"
)

// DetectFormat picks an input format from a file name extension.
func DetectFormat(filename string) InputFormat {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xhtml", ".xht", ".xml", ".svg", ".opf", ".ncx":
		return FormatXHTML
	case ".md", ".markdown", ".mkd":
		return FormatMarkdown
	default:
		return FormatHTML
	}
}

// Tree is a parsed source: the Node tree plus the parser's own tree, kept
// for subtree selection.
type Tree struct {
	Root *Node

	htmlRoot  *html.Node
	htmlIndex map[*html.Node]*Node
	xmlRoot   *xmlquery.Node
	xmlIndex  map[*xmlquery.Node]*Node
}

// Parser loads markup sources into Trees.
type Parser struct {
	format InputFormat
}

// NewParser creates a parser for the given format. FormatAuto detects the
// format from the file name in LoadFromFile and means HTML otherwise.
func NewParser(format InputFormat) *Parser {
	if format == "" {
		format = FormatAuto
	}
	return &Parser{format: format}
}

// LoadFromString parses markup held in a string.
func (p *Parser) LoadFromString(src string) (*Tree, error) {
	return p.LoadFromReader(strings.NewReader(src))
}

// LoadFromFile reads and parses a file.
func (p *Parser) LoadFromFile(filename string) (*Tree, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, NewIOError(fmt.Sprintf("failed to read %s", filename), err)
	}

	format := p.format
	if format == FormatAuto {
		format = DetectFormat(filename)
	}
	return parseBytes(format, data)
}

// LoadFromReader parses everything read from r.
func (p *Parser) LoadFromReader(r io.Reader) (*Tree, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, NewIOError("failed to read input", err)
	}
	format := p.format
	if format == FormatAuto {
		format = FormatHTML
	}
	return parseBytes(format, data)
}

func parseBytes(format InputFormat, data []byte) (*Tree, error) {
	switch format {
	case FormatHTML:
		return parseHTML(data)
	case FormatXHTML:
		return parseXHTML(data)
	case FormatMarkdown:
		return parseMarkdown(data)
	default:
		return nil, NewConfigError(fmt.Sprintf("unknown input format %q", format), nil)
	}
}

// decodeHTML converts data to UTF-8 using its BOM, meta charset or the
// HTML5 default.
func decodeHTML(data []byte) ([]byte, error) {
	r, err := charset.NewReader(bytes.NewReader(data), "")
	if err != nil {
		return nil, err
	}
	return io.ReadAll(r)
}

func parseHTML(data []byte) (*Tree, error) {
	src, err := decodeHTML(data)
	if err != nil {
		return nil, NewParseError("failed to decode html", err)
	}
	return parseUTF8HTML(src)
}

func parseUTF8HTML(src []byte) (*Tree, error) {
	doc, err := html.Parse(bytes.NewReader(src))
	if err != nil {
		return nil, NewParseError("failed to parse html", err)
	}
	root, index := convertHTML(doc, src)
	return &Tree{Root: root, htmlRoot: doc, htmlIndex: index}, nil
}

// xhtmlDecoder keeps XML strictness but resolves the HTML named entities
// XHTML content routinely uses.
var xhtmlDecoder = xmlquery.DecoderOptions{
	Strict:        true,
	Entity:        xml.HTMLEntity,
	CharsetReader: charset.NewReaderLabel,
}

const xmlDeclaration = "<?xml version=\"1.0\"?>\n"

var (
	utf8BOM   = []byte("\xef\xbb\xbf")
	xmlPrefix = []byte("<?xml")
)

// withXMLDeclaration prepends an xml declaration when data has none.
// xmlquery only attaches prolog directives such as <!DOCTYPE> to the
// document when a declaration precedes them.
func withXMLDeclaration(data []byte) []byte {
	body := bytes.TrimPrefix(data, utf8BOM)
	if bytes.HasPrefix(bytes.TrimLeft(body, " \t\r\n"), xmlPrefix) {
		return data
	}
	out := make([]byte, 0, len(data)+len(xmlDeclaration))
	out = append(out, xmlDeclaration...)
	return append(out, body...)
}

func parseXHTML(data []byte) (*Tree, error) {
	doc, err := xmlquery.ParseWithOptions(bytes.NewReader(withXMLDeclaration(data)), xmlquery.ParserOptions{
		Decoder: &xhtmlDecoder,
	})
	if err != nil {
		return nil, NewParseError("failed to parse xhtml", err)
	}
	root, index := convertXML(doc)
	return &Tree{Root: root, xmlRoot: doc, xmlIndex: index}, nil
}
