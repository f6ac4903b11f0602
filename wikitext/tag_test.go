package wikitext

import "testing"

func TestTagStartEndPair(t *testing.T) {
	output := parseDefault(t, "<span>text</span>")
	if _, ok := output.Nodes[0].(StartTag); !ok {
		t.Fatalf("node[0] type = %T, want StartTag", output.Nodes[0])
	}
	var gotEnd bool
	for _, n := range output.Nodes {
		if end, ok := n.(EndTag); ok {
			gotEnd = true
			if end.Name != "span" {
				t.Errorf("end tag name = %q, want span", end.Name)
			}
		}
	}
	if !gotEnd {
		t.Errorf("expected an EndTag node in %#v", output.Nodes)
	}
}

func TestExtensionTagBody(t *testing.T) {
	output := parseDefault(t, "<ref>a citation</ref>")
	var tag Tag
	var found bool
	for _, n := range output.Nodes {
		if tg, ok := n.(Tag); ok {
			tag = tg
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Tag node in %#v", output.Nodes)
	}
	if tag.Name != "ref" {
		t.Errorf("tag name = %q, want ref", tag.Name)
	}
}

func TestExtensionTagAttributesCaptured(t *testing.T) {
	output := parseDefault(t, `<syntaxhighlight lang="go">package main</syntaxhighlight>`)
	var tag Tag
	var found bool
	for _, n := range output.Nodes {
		if tg, ok := n.(Tag); ok {
			tag = tg
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Tag node in %#v", output.Nodes)
	}
	if tag.Attributes != `lang="go"` {
		t.Errorf("attributes = %q, want %q", tag.Attributes, `lang="go"`)
	}
	if got := nodesToText(t, tag.Nodes); got != "package main" {
		t.Errorf("body = %q, want %q", got, "package main")
	}
}

func TestSelfClosingExtensionTagAttributesCaptured(t *testing.T) {
	output := parseDefault(t, `<ref name="x"/>`)
	var tag Tag
	var found bool
	for _, n := range output.Nodes {
		if tg, ok := n.(Tag); ok {
			tag = tg
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Tag node in %#v", output.Nodes)
	}
	if tag.Attributes != `name="x"` {
		t.Errorf("attributes = %q, want %q", tag.Attributes, `name="x"`)
	}
}

func TestNowikiIsOpaque(t *testing.T) {
	output := parseDefault(t, "<nowiki>'''not bold'''</nowiki>")
	var tag Tag
	var found bool
	for _, n := range output.Nodes {
		if tg, ok := n.(Tag); ok {
			tag = tg
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a Tag node in %#v", output.Nodes)
	}
	for _, n := range tag.Nodes {
		if _, ok := n.(Bold); ok {
			t.Errorf("nowiki body should not be parsed as wiki-text, got Bold node")
		}
	}
}

func TestUnrecognizedTagNameWarns(t *testing.T) {
	output := parseDefault(t, "<notatag>text</notatag>")
	var gotWarning bool
	for _, w := range output.Warnings {
		if w.Message == UnrecognizedTagName {
			gotWarning = true
		}
	}
	if !gotWarning {
		t.Errorf("expected UnrecognizedTagName warning, got %#v", output.Warnings)
	}
}

func TestUnexpectedEndTagWarns(t *testing.T) {
	output := parseDefault(t, "</ref>")
	var gotWarning bool
	for _, w := range output.Warnings {
		if w.Message == UnexpectedEndTag {
			gotWarning = true
		}
	}
	if !gotWarning {
		t.Errorf("expected UnexpectedEndTag warning, got %#v", output.Warnings)
	}
}
