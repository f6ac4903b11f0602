package render

import (
	"fmt"
	"io"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"

	"github.com/hesusruiz/wikitext/wikitext"
)

// HighlightCodeTags finds every Tag node in nodes whose name is
// "syntaxhighlight" or "source" and writes its body to w as
// chroma-highlighted HTML, choosing a lexer from the tag's "lang"
// attribute text when present, falling back to content-based lexer
// detection otherwise.
func HighlightCodeTags(w io.Writer, nodes []wikitext.Node) error {
	style := styles.Get("github")
	formatter := chromahtml.New(chromahtml.WithClasses(true))

	var walk func([]wikitext.Node) error
	walk = func(ns []wikitext.Node) error {
		for _, n := range ns {
			switch v := n.(type) {
			case wikitext.Tag:
				if v.Name == "syntaxhighlight" || v.Name == "source" {
					code := renderInline(v.Nodes)
					lang := detectLang(v.Attributes)
					lexer := lexers.Get(lang)
					if lexer == nil {
						lexer = lexers.Analyse(code)
					}
					if lexer == nil {
						lexer = lexers.Fallback
					}
					iterator, err := lexer.Tokenise(nil, code)
					if err != nil {
						return fmt.Errorf("tokenising code block: %w", err)
					}
					if err := formatter.Format(w, style, iterator); err != nil {
						return fmt.Errorf("formatting code block: %w", err)
					}
				}
				if err := walk(v.Nodes); err != nil {
					return err
				}
			case wikitext.Heading:
				if err := walk(v.Nodes); err != nil {
					return err
				}
			}
		}
		return nil
	}
	return walk(nodes)
}

// detectLang looks for a "lang=..." token inside an extension tag's raw
// attribute text; the reference tag grammar doesn't parse tag attributes
// into structured data, so this is a best-effort textual scan.
func detectLang(attributes string) string {
	text := attributes
	const marker = "lang="
	idx := strings.Index(text, marker)
	if idx == -1 {
		return ""
	}
	rest := text[idx+len(marker):]
	rest = strings.Trim(rest, `"' `)
	end := strings.IndexAny(rest, `"' `+"\n")
	if end == -1 {
		return rest
	}
	return rest[:end]
}
