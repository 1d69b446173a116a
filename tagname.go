package prettyprint

import "strings"

// Sentinel names of non-element nodes.
const (
	DocumentName = "#document"
	TextName     = "#text"
	CDATAName    = "#cdata"
)

// svgTagNames maps lowercased SVG tag names to their canonical camel case.
var svgTagNames = map[string]string{
	"altglyph":            "altGlyph",
	"altglyphdef":         "altGlyphDef",
	"altglyphitem":        "altGlyphItem",
	"animatecolor":        "animateColor",
	"animatemotion":       "animateMotion",
	"animatetransform":    "animateTransform",
	"clippath":            "clipPath",
	"feblend":             "feBlend",
	"fecolormatrix":       "feColorMatrix",
	"fecomponenttransfer": "feComponentTransfer",
	"fecomposite":         "feComposite",
	"feconvolvematrix":    "feConvolveMatrix",
	"fediffuselighting":   "feDiffuseLighting",
	"fedisplacementmap":   "feDisplacementMap",
	"fedistantlight":      "feDistantLight",
	"fedropshadow":        "feDropShadow",
	"feflood":             "feFlood",
	"fefunca":             "feFuncA",
	"fefuncb":             "feFuncB",
	"fefuncg":             "feFuncG",
	"fefuncr":             "feFuncR",
	"fegaussianblur":      "feGaussianBlur",
	"feimage":             "feImage",
	"femerge":             "feMerge",
	"femergenode":         "feMergeNode",
	"femorphology":        "feMorphology",
	"feoffset":            "feOffset",
	"fepointlight":        "fePointLight",
	"fespecularlighting":  "feSpecularLighting",
	"fespotlight":         "feSpotLight",
	"fetile":              "feTile",
	"feturbulence":        "feTurbulence",
	"foreignobject":       "foreignObject",
	"glyphref":            "glyphRef",
	"lineargradient":      "linearGradient",
	"radialgradient":      "radialGradient",
	"textpath":            "textPath",
}

// NormalizeSVGTagName returns the canonical spelling of an SVG tag name
// and whether one is known. The result differs from name only in case.
func NormalizeSVGTagName(name string) (string, bool) {
	canonical, ok := svgTagNames[strings.ToLower(name)]
	return canonical, ok
}

// TagName returns the serialized name of n.
//
// Elements use the parser-normalized tag. Foreign SVG elements and elements
// the parser did not recognise fall back to the source spelling, which keeps
// casing that generic normalization loses.
func TagName(n *Node) string {
	if n == nil {
		return ""
	}
	switch n.Type {
	case DocumentNode:
		return DocumentName
	case TextNode, WhitespaceNode:
		return TextName
	case CDATANode:
		return CDATAName
	}

	name := n.Tag
	if name != "" && n.Namespace != NamespaceSVG {
		return name
	}

	original := n.OriginalTag
	if n.Namespace == NamespaceSVG {
		if canonical, ok := NormalizeSVGTagName(original); ok {
			return canonical
		}
	}
	if name == "" {
		return original
	}
	return name
}
