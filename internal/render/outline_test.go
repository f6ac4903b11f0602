package render

import (
	"strings"
	"testing"

	"github.com/hesusruiz/wikitext/wikitext"
)

func TestBuildOutlineD2ListsHeadingsAtTopLevel(t *testing.T) {
	// Headings in the parsed tree are flat siblings carrying a Level, not a
	// nested container of the sections that follow them, so the outline
	// lists each heading as its own top-level shape rather than nesting.
	output := wikitext.Default().Parse("= Top =\ntext\n== Sub ==\nmore\n")
	got := buildOutlineD2(output.Nodes)

	if !strings.Contains(got, `"Top"`) {
		t.Errorf("outline %q missing top heading", got)
	}
	if !strings.Contains(got, `"Sub"`) {
		t.Errorf("outline %q missing second heading", got)
	}
	if strings.Contains(got, ".") {
		t.Errorf("outline %q should have no nested prefixes for flat sibling headings", got)
	}
}

func TestBuildOutlineD2TableDimensions(t *testing.T) {
	output := wikitext.Default().Parse("{|\n|a||b\n|-\n|c||d\n|}")
	got := buildOutlineD2(output.Nodes)

	if !strings.Contains(got, "table 2x2") {
		t.Errorf("outline %q missing 2x2 table summary", got)
	}
}

func TestBuildOutlineD2EmptyDocument(t *testing.T) {
	got := buildOutlineD2(nil)
	if !strings.Contains(got, "no headings or tables") {
		t.Errorf("outline %q should describe an empty document", got)
	}
}
