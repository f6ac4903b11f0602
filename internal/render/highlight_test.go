package render

import (
	"testing"

	"github.com/hesusruiz/wikitext/wikitext"
)

func TestDetectLangFindsAttribute(t *testing.T) {
	output := wikitext.Default().Parse(`<syntaxhighlight lang="go">package main</syntaxhighlight>`)
	tag, ok := output.Nodes[0].(wikitext.Tag)
	if !ok {
		t.Fatalf("node[0] type = %T, want Tag", output.Nodes[0])
	}
	if got := detectLang(tag.Attributes); got != "go" {
		t.Errorf("detectLang() = %q, want %q", got, "go")
	}
}

func TestDetectLangMissingAttribute(t *testing.T) {
	output := wikitext.Default().Parse(`<syntaxhighlight>package main</syntaxhighlight>`)
	tag, ok := output.Nodes[0].(wikitext.Tag)
	if !ok {
		t.Fatalf("node[0] type = %T, want Tag", output.Nodes[0])
	}
	if got := detectLang(tag.Attributes); got != "" {
		t.Errorf("detectLang() = %q, want empty string", got)
	}
}
