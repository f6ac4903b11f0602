package dump

import (
	"io"
	"strings"
	"testing"

	"github.com/hesusruiz/wikitext/wikitext"
)

const sampleExport = `<mediawiki>
  <page>
    <title>Alpha</title>
    <ns>0</ns>
    <id>1</id>
    <revision>
      <id>10</id>
      <text>'''Alpha''' is a page.</text>
    </revision>
  </page>
  <page>
    <title>Beta</title>
    <ns>0</ns>
    <id>2</id>
    <redirect title="Alpha" />
    <revision>
      <id>11</id>
      <text>#REDIRECT [[Alpha]]</text>
    </revision>
  </page>
  <page>
    <title>Alpha</title>
    <ns>0</ns>
    <id>1</id>
    <revision>
      <id>12</id>
      <text>duplicate title, should be skipped</text>
    </revision>
  </page>
</mediawiki>`

func readAll(t *testing.T, r *Reader) []*Result {
	t.Helper()
	var results []*Result
	for {
		res, err := r.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		results = append(results, res)
	}
	return results
}

func TestReaderSkipsDuplicateTitles(t *testing.T) {
	r := NewReader(strings.NewReader(sampleExport), false, wikitext.Default())
	results := readAll(t, r)

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2 (duplicate Alpha skipped)", len(results))
	}
	if results[0].Page.Title != "Alpha" {
		t.Errorf("results[0].Page.Title = %q, want Alpha", results[0].Page.Title)
	}
	if len(results[0].Output.Nodes) == 0 {
		t.Errorf("expected parsed output nodes for Alpha")
	}
}

func TestReaderSkipRedirects(t *testing.T) {
	r := NewReader(strings.NewReader(sampleExport), false, wikitext.Default())
	r.SkipRedirects = true
	results := readAll(t, r)

	for _, res := range results {
		if res.Page.IsRedirect() {
			t.Errorf("result %q should have been skipped as a redirect", res.Page.Title)
		}
	}
	if len(results) != 1 {
		t.Fatalf("got %d results, want 1 (Alpha only)", len(results))
	}
}

func TestPageIsRedirectDetectsTextPrefix(t *testing.T) {
	p := &Page{}
	p.Revision.Text.Text = "  #REDIRECT [[Target]]"
	if !p.IsRedirect() {
		t.Error("expected IsRedirect() true for text starting with #REDIRECT")
	}
}
