package wikitext

import "testing"

func TestHeadingLevelsOneThroughSix(t *testing.T) {
	for level := 1; level <= 6; level++ {
		marker := ""
		for i := 0; i < level; i++ {
			marker += "="
		}
		text := marker + " T " + marker
		output := parseDefault(t, text)
		heading, ok := output.Nodes[0].(Heading)
		if !ok {
			t.Fatalf("level %d: node[0] type = %T, want Heading", level, output.Nodes[0])
		}
		if heading.Level != level {
			t.Errorf("level %d: heading.Level = %d", level, heading.Level)
		}
	}
}

func TestHeadingLevelAboveSixCapped(t *testing.T) {
	output := parseDefault(t, "======= T =======")
	heading, ok := output.Nodes[0].(Heading)
	if !ok {
		t.Fatalf("node[0] type = %T, want Heading", output.Nodes[0])
	}
	if heading.Level != 6 {
		t.Errorf("heading.Level = %d, want 6 (capped)", heading.Level)
	}
}

func TestHeadingInvalidSyntaxRewinds(t *testing.T) {
	// The line has no trailing run of '=' at all, so the heading is rewound
	// wholesale rather than closed, and every byte — including the opening
	// "==" — comes back as plain text.
	const text = "== Title = not closed properly"
	output := parseDefault(t, text)
	if _, ok := output.Nodes[0].(Heading); ok {
		t.Fatalf("expected rewind to plain text, got Heading")
	}
	if got := nodesToText(t, output.Nodes); got != text {
		t.Errorf("rewound text = %q, want %q", got, text)
	}
	var gotWarning bool
	for _, w := range output.Warnings {
		if w.Message == InvalidHeadingSyntaxRewinding {
			gotWarning = true
		}
	}
	if !gotWarning {
		t.Errorf("expected InvalidHeadingSyntaxRewinding warning, got %#v", output.Warnings)
	}
}

func TestHeadingEmbeddedEqualsDoesNotCloseEarly(t *testing.T) {
	// A '=' in the middle of the line must never be mistaken for the
	// closing run; only the line's actual tail decides where a heading
	// closes.
	output := parseDefault(t, "== a = b ==\n")
	heading, ok := output.Nodes[0].(Heading)
	if !ok {
		t.Fatalf("node[0] type = %T, want Heading", output.Nodes[0])
	}
	if heading.Level != 2 {
		t.Errorf("heading.Level = %d, want 2", heading.Level)
	}
	if got := nodesToText(t, heading.Nodes); got != " a = b " {
		t.Errorf("heading text = %q, want %q", got, " a = b ")
	}
}

func TestHeadingGreaterThanBeforeEqualsNeverCloses(t *testing.T) {
	// A '=' immediately preceded by '>' is never treated as closing a
	// heading, matching the reference parser's lookback quirk.
	output := parseDefault(t, "== a >=b ==")
	heading, ok := output.Nodes[0].(Heading)
	if !ok {
		t.Fatalf("node[0] type = %T, want Heading", output.Nodes[0])
	}
	if heading.Level != 2 {
		t.Errorf("heading.Level = %d, want 2", heading.Level)
	}
}
