package prettyprint

import "testing"

func TestTagClassification(t *testing.T) {
	tests := []struct {
		tag  string
		want tagClass
	}{
		{"a", tagClass{inline: true}},
		{"img", tagClass{inline: true, void: true}},
		{"textarea", tagClass{inline: true, keepSpace: true}},
		{"pre", tagClass{keepSpace: true}},
		{"script", tagClass{keepSpace: true, noEntities: true, structural: true}},
		{"html", tagClass{structural: true}},
		{"body", tagClass{structural: true}},
		{"hr", tagClass{void: true, structural: true}},
		{"div", tagClass{structural: true}},
		{"p", tagClass{}},
		{"DIV", tagClass{}},
	}
	for _, tt := range tests {
		if got := classify(tt.tag); got != tt.want {
			t.Fatalf("classify(%q) = %+v, want %+v", tt.tag, got, tt.want)
		}
	}
}

func TestExportedClassifiers(t *testing.T) {
	if !IsInlineTag("span") || IsInlineTag("div") {
		t.Fatal("unexpected inline classification")
	}
	if !IsWhitespacePreserving("style") || IsWhitespacePreserving("p") {
		t.Fatal("unexpected whitespace classification")
	}
	if !IsSpecialHandling("html") || IsSpecialHandling("head") {
		t.Fatal("unexpected special handling classification")
	}
	if !IsNoEntitySubstitution("script") || IsNoEntitySubstitution("pre") {
		t.Fatal("unexpected entity classification")
	}
	if !IsVoidTag("meta") || IsVoidTag("span") {
		t.Fatal("unexpected void classification")
	}
	if !IsStructuralTag("table") || IsStructuralTag("tr") {
		t.Fatal("unexpected structural classification")
	}
}

func TestPrettyPrintable(t *testing.T) {
	if classify("span").prettyPrintable() {
		t.Fatal("inline elements must not get injected newlines")
	}
	if classify("pre").prettyPrintable() {
		t.Fatal("whitespace preserving elements must not get injected newlines")
	}
	if !classify("div").prettyPrintable() {
		t.Fatal("block elements must be pretty printable")
	}
}

func TestAttributeName(t *testing.T) {
	tests := []struct {
		attr Attribute
		want string
	}{
		{Attribute{Name: "href"}, "href"},
		{Attribute{Name: "href", Namespace: AttrNamespaceXLink}, "xlink:href"},
		{Attribute{Name: "lang", Namespace: AttrNamespaceXML}, "xml:lang"},
		{Attribute{Name: "xlink", Namespace: AttrNamespaceXMLNS}, "xmlns:xlink"},
		{Attribute{Name: "xmlns", Namespace: AttrNamespaceXMLNS}, "xmlns"},
	}
	for _, tt := range tests {
		if got := AttributeName(tt.attr); got != tt.want {
			t.Fatalf("AttributeName(%+v) = %q, want %q", tt.attr, got, tt.want)
		}
	}
}
