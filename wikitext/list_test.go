package wikitext

import "testing"

func TestOrderedListItems(t *testing.T) {
	output := parseDefault(t, "# one\n# two\n# three\n")
	list, ok := output.Nodes[0].(OrderedList)
	if !ok {
		t.Fatalf("node[0] type = %T, want OrderedList", output.Nodes[0])
	}
	if len(list.Items) != 3 {
		t.Fatalf("items = %d, want 3", len(list.Items))
	}
}

func TestNestedUnorderedList(t *testing.T) {
	output := parseDefault(t, "* outer\n** inner\n* outer again\n")
	list, ok := output.Nodes[0].(UnorderedList)
	if !ok {
		t.Fatalf("node[0] type = %T, want UnorderedList", output.Nodes[0])
	}
	if len(list.Items) != 2 {
		t.Fatalf("outer items = %d, want 2", len(list.Items))
	}

	var foundNested bool
	for _, n := range list.Items[0].Nodes {
		if inner, ok := n.(UnorderedList); ok && len(inner.Items) == 1 {
			foundNested = true
		}
	}
	if !foundNested {
		t.Errorf("expected a nested UnorderedList inside the first item, got %#v", list.Items[0].Nodes)
	}
}

func TestDefinitionListTermAndDetails(t *testing.T) {
	output := parseDefault(t, "; term\n: details\n")
	list, ok := output.Nodes[0].(DefinitionList)
	if !ok {
		t.Fatalf("node[0] type = %T, want DefinitionList", output.Nodes[0])
	}
	if len(list.Items) != 2 {
		t.Fatalf("items = %d, want 2", len(list.Items))
	}
	if list.Items[0].Type != DefinitionListTerm {
		t.Errorf("items[0].Type = %v, want DefinitionListTerm", list.Items[0].Type)
	}
	if list.Items[1].Type != DefinitionListDetails {
		t.Errorf("items[1].Type = %v, want DefinitionListDetails", list.Items[1].Type)
	}
}

func TestDefinitionTermContinuationWarning(t *testing.T) {
	output := parseDefault(t, ":term\n;continuation\n")
	var gotWarning bool
	for _, w := range output.Warnings {
		if w.Message == DefinitionTermContinuation {
			gotWarning = true
		}
	}
	if !gotWarning {
		t.Errorf("expected DefinitionTermContinuation warning, got %#v", output.Warnings)
	}
}

func TestListClosesAtPlainLine(t *testing.T) {
	output := parseDefault(t, "* item\nplain line\n")
	if _, ok := output.Nodes[0].(UnorderedList); !ok {
		t.Fatalf("node[0] type = %T, want UnorderedList", output.Nodes[0])
	}
	var foundText bool
	for _, n := range output.Nodes[1:] {
		if _, ok := n.(Text); ok {
			foundText = true
		}
	}
	if !foundText {
		t.Errorf("expected the plain line to appear outside the list, got %#v", output.Nodes)
	}
}
