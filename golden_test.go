package prettyprint

import (
	_ "embed"
	"testing"

	"github.com/BurntSushi/toml"
)

//go:embed testdata/cases.toml
var goldenCasesTOML []byte

type goldenCase struct {
	Name     string `toml:"name"`
	Format   string `toml:"format"`
	Input    string `toml:"input"`
	Expected string `toml:"expected"`
}

func (tc goldenCase) parser() *Parser {
	if tc.Format == "" {
		return NewParser(FormatHTML)
	}
	return NewParser(InputFormat(tc.Format))
}

func loadGoldenCases(t *testing.T) []goldenCase {
	t.Helper()
	var file struct {
		Case []goldenCase `toml:"case"`
	}
	if _, err := toml.Decode(string(goldenCasesTOML), &file); err != nil {
		t.Fatalf("decode golden cases: %v", err)
	}
	if len(file.Case) == 0 {
		t.Fatal("no golden cases found")
	}
	return file.Case
}

func TestGoldenCases(t *testing.T) {
	for _, tc := range loadGoldenCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			tree, err := tc.parser().LoadFromString(tc.Input)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			got := Format(tree.Root)
			if got != tc.Expected {
				t.Fatalf("unexpected output:\n got: %q\nwant: %q", got, tc.Expected)
			}
		})
	}
}

func TestGoldenCasesAreIdempotent(t *testing.T) {
	for _, tc := range loadGoldenCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			tree, err := tc.parser().LoadFromString(tc.Expected)
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if got := Format(tree.Root); got != tc.Expected {
				t.Fatalf("second pass changed output:\n got: %q\nwant: %q", got, tc.Expected)
			}
		})
	}
}
