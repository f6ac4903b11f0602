package lookup

import (
	"testing"

	"github.com/hesusruiz/wikitext/wikitext"
)

func TestSelectLanguageSectionByName(t *testing.T) {
	output := wikitext.Default().Parse("==English==\nA word.\n==French==\nUn mot.\n")

	section, ok := selectLanguageSection(output.Nodes, "french")
	if !ok {
		t.Fatalf("expected to find the French section")
	}
	if got := renderPlain(section); got != "Un mot.\n" {
		t.Errorf("section text = %q, want %q", got, "Un mot.\n")
	}
}

func TestSelectLanguageSectionDefaultsToFirst(t *testing.T) {
	output := wikitext.Default().Parse("==English==\nA word.\n==French==\nUn mot.\n")

	section, ok := selectLanguageSection(output.Nodes, "")
	if !ok {
		t.Fatalf("expected to find a section")
	}
	if got := renderPlain(section); got != "A word.\n" {
		t.Errorf("section text = %q, want %q", got, "A word.\n")
	}
}

func TestSelectLanguageSectionStopsAtNextHeading(t *testing.T) {
	output := wikitext.Default().Parse("==English==\nline one\n=== Noun ===\nnested\n==French==\nother\n")

	section, ok := selectLanguageSection(output.Nodes, "english")
	if !ok {
		t.Fatalf("expected to find the English section")
	}
	for _, n := range section {
		if h, ok := n.(wikitext.Heading); ok && h.Level <= 2 {
			t.Errorf("English section should not include a following level-2 heading, got %#v", h)
		}
	}
}

func TestSelectLanguageSectionNotFound(t *testing.T) {
	output := wikitext.Default().Parse("==English==\nA word.\n")

	_, ok := selectLanguageSection(output.Nodes, "german")
	if ok {
		t.Error("expected selectLanguageSection to report not found for an absent language")
	}
}
