package prettyprint

import (
	"strings"

	"github.com/samber/lo"
)

// tagSet is an immutable set of lowercase tag names.
type tagSet map[string]struct{}

func newTagSet(tags string) tagSet {
	return lo.SliceToMap(strings.Fields(tags), func(tag string) (string, struct{}) {
		return tag, struct{}{}
	})
}

func (ts tagSet) has(tag string) bool {
	_, ok := ts[tag]
	return ok
}

// Tag classification tables. Built once at package init and never mutated.
var (
	nonBreakingInline = newTagSet(`a abbr acronym b bdo big br button cite code del
		dfn em font i image img input ins kbd label map nobr object q s samp select
		small span strike strong sub sup textarea tt u var wbr`)

	preserveWhitespace = newTagSet(`pre textarea script style`)

	specialHandling = newTagSet(`html body`)

	noEntitySub = newTagSet(`script style`)

	voidTags = newTagSet(`area base basefont bgsound br command col embed
		event-source frame hr image img input keygen link menuitem meta param
		source spacer track wbr`)

	structuralTags = newTagSet(`article aside blockquote body canvas div dl figure
		footer head header hr html ol section script style table ul`)
)

// IsInlineTag reports whether tag flows with surrounding text.
func IsInlineTag(tag string) bool { return nonBreakingInline.has(tag) }

// IsWhitespacePreserving reports whether descendant text of tag is emitted verbatim.
func IsWhitespacePreserving(tag string) bool { return preserveWhitespace.has(tag) }

// IsSpecialHandling reports whether tag is html or body.
func IsSpecialHandling(tag string) bool { return specialHandling.has(tag) }

// IsNoEntitySubstitution reports whether text and attributes of tag are emitted unescaped.
func IsNoEntitySubstitution(tag string) bool { return noEntitySub.has(tag) }

// IsVoidTag reports whether tag never has content or a closing tag.
func IsVoidTag(tag string) bool { return voidTags.has(tag) }

// IsStructuralTag reports whether tag is laid out as an indented block.
func IsStructuralTag(tag string) bool { return structuralTags.has(tag) }

// tagClass is the classification of one tag name.
type tagClass struct {
	inline     bool
	keepSpace  bool
	noEntities bool
	void       bool
	structural bool
}

func classify(tag string) tagClass {
	return tagClass{
		inline:     nonBreakingInline.has(tag),
		keepSpace:  preserveWhitespace.has(tag),
		noEntities: noEntitySub.has(tag),
		void:       voidTags.has(tag),
		structural: structuralTags.has(tag),
	}
}

// prettyPrintable reports whether newlines may be injected around the element.
func (c tagClass) prettyPrintable() bool {
	return !c.inline && !c.keepSpace
}

var attrNamespacePrefixes = [...]string{
	AttrNamespaceNone:  "",
	AttrNamespaceXLink: "xlink:",
	AttrNamespaceXML:   "xml:",
	AttrNamespaceXMLNS: "xmlns:",
}

// AttributeName returns the serialized name of a, prefixed by its namespace.
// A literal "xmlns" attribute is never prefixed.
func AttributeName(a Attribute) string {
	if a.Namespace == AttrNamespaceNone || a.Name == "xmlns" {
		return a.Name
	}
	if int(a.Namespace) >= len(attrNamespacePrefixes) {
		return a.Name
	}
	return attrNamespacePrefixes[a.Namespace] + a.Name
}
