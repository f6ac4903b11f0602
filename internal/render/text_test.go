package render

import (
	"strings"
	"testing"

	"github.com/hesusruiz/wikitext/wikitext"
)

func TestTextRendersHeadingAndList(t *testing.T) {
	output := wikitext.Default().Parse("== Title ==\n* one\n* two\n")

	var buf strings.Builder
	if err := Text(&buf, output.Nodes); err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	got := buf.String()

	if !strings.Contains(got, "Title") {
		t.Errorf("rendering %q does not contain heading title", got)
	}
	if !strings.Contains(got, "* one") || !strings.Contains(got, "* two") {
		t.Errorf("rendering %q is missing expected list bullets", got)
	}
}

func TestTextElidesSkippableHeadingSubsection(t *testing.T) {
	output := wikitext.Default().Parse("== Synonyms ==\nsame, alike\n== Next ==\nmore text\n")

	var buf strings.Builder
	if err := Text(&buf, output.Nodes); err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	got := buf.String()

	if strings.Contains(got, "same, alike") {
		t.Errorf("rendering %q should have elided the Synonyms subsection body", got)
	}
	if !strings.Contains(got, "Next") || !strings.Contains(got, "more text") {
		t.Errorf("rendering %q should keep the following non-skippable section", got)
	}
}

func TestTextTable(t *testing.T) {
	output := wikitext.Default().Parse("{|\n|a||b\n|}")

	var buf strings.Builder
	if err := Text(&buf, output.Nodes); err != nil {
		t.Fatalf("Text() error = %v", err)
	}
	got := buf.String()

	if !strings.Contains(got, "a") || !strings.Contains(got, "b") {
		t.Errorf("rendering %q is missing table cell contents", got)
	}
}
