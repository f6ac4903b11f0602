package wikitext

import "testing"

func TestLinkTrailExtendsLink(t *testing.T) {
	output := parseDefault(t, "[[cat]]s and dogs")
	link, ok := output.Nodes[0].(Link)
	if !ok {
		t.Fatalf("node[0] type = %T, want Link", output.Nodes[0])
	}
	if link.Target != "cat" {
		t.Errorf("target = %q, want %q", link.Target, "cat")
	}
	if got := nodesToText(t, link.Text); got != "s" {
		t.Errorf("trail text = %q, want %q", got, "s")
	}
}

func TestLinkWithPipedText(t *testing.T) {
	output := parseDefault(t, "[[Target|display text]]")
	link, ok := output.Nodes[0].(Link)
	if !ok {
		t.Fatalf("node[0] type = %T, want Link", output.Nodes[0])
	}
	if link.Target != "Target" {
		t.Errorf("target = %q, want %q", link.Target, "Target")
	}
	if got := nodesToText(t, link.Text); got != "display text" {
		t.Errorf("text = %q, want %q", got, "display text")
	}
}

func TestNestedNonFileLinkRewinds(t *testing.T) {
	output := parseDefault(t, "[[Outer [[Inner]] more]]")
	var gotWarning bool
	for _, w := range output.Warnings {
		if w.Message == InvalidLinkSyntax {
			gotWarning = true
		}
	}
	if !gotWarning {
		t.Errorf("expected InvalidLinkSyntax warning, got %#v", output.Warnings)
	}
}

func TestCategoryLinkDoesNotAbsorbTrail(t *testing.T) {
	// Link trail only extends a plain Link; a Category's closing "]]" ends
	// the node outright, and the trailing "s" becomes separate sibling text.
	output := parseDefault(t, "[[Category:Foo|Bar]]s")
	category, ok := output.Nodes[0].(Category)
	if !ok {
		t.Fatalf("node[0] type = %T, want Category", output.Nodes[0])
	}
	if got := nodesToText(t, category.Ordinal); got != "Bar" {
		t.Errorf("ordinal = %q, want %q", got, "Bar")
	}
	if len(output.Nodes) < 2 {
		t.Fatalf("expected a sibling Text node after the Category, got %#v", output.Nodes)
	}
	text, ok := output.Nodes[1].(Text)
	if !ok || text.Value != "s" {
		t.Errorf("node[1] = %#v, want Text(%q)", output.Nodes[1], "s")
	}
}

func TestImageLinkNestsFurtherLinks(t *testing.T) {
	output := parseDefault(t, "[[File:example.png|see [[Target]]]]")
	var image Image
	var found bool
	for _, n := range output.Nodes {
		if img, ok := n.(Image); ok {
			image = img
			found = true
		}
	}
	if !found {
		t.Fatalf("expected an Image node in %#v", output.Nodes)
	}
	if image.Target != "example.png" {
		t.Errorf("target = %q, want %q", image.Target, "example.png")
	}
	var gotNestedLink bool
	for _, n := range image.Text {
		if _, ok := n.(Link); ok {
			gotNestedLink = true
		}
	}
	if !gotNestedLink {
		t.Errorf("expected a nested Link inside the Image's caption, got %#v", image.Text)
	}
}
