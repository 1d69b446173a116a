// Package prettyprint serializes parsed HTML and XHTML trees back into
// indented, human readable markup. Re-parsing the output yields the same
// tree.
package prettyprint

import (
	"log/slog"
	"strings"
)

// FormatFile parses filename according to cfg and returns the formatted
// document.
func FormatFile(filename string, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	tree, err := NewParser(cfg.InputFormat).LoadFromFile(filename)
	if err != nil {
		return "", err
	}
	return FormatTree(tree, cfg)
}

// FormatTree formats a parsed tree, or only the subtrees picked by the
// configured selector. The result ends with exactly one newline unless it
// is empty.
func FormatTree(tree *Tree, cfg *Config) (string, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	f := cfg.NewFormatter()

	var roots []*Node
	var err error
	switch {
	case cfg.SelectCSS != "":
		roots, err = tree.SelectCSS(cfg.SelectCSS)
	case cfg.SelectXPath != "":
		roots, err = tree.SelectXPath(cfg.SelectXPath)
	default:
		return withTrailingNewline(f.Format(tree.Root)), nil
	}
	if err != nil {
		return "", err
	}
	if len(roots) == 0 {
		slog.Warn("selector matched nothing", "css", cfg.SelectCSS, "xpath", cfg.SelectXPath)
		return "", nil
	}

	var sb strings.Builder
	for _, root := range roots {
		sb.WriteString(withTrailingNewline(f.Format(root)))
	}
	return sb.String(), nil
}

func withTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
