// Package render turns a parsed wikitext.Node tree back into human-facing
// output: a readable plain-text transcript, syntax-highlighted HTML for
// code tag bodies, and an SVG outline diagram of a document's structure.
package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/hesusruiz/wikitext/sliceedit"
	"github.com/hesusruiz/wikitext/wikitext"
)

// skippableHeadings names the dictionary-entry subsections that Text
// elides by default when rendering a single dictionary entry, matching the
// reference dictionarium app's skippable_headers list.
var skippableHeadings = map[string]bool{
	"synonyms": true, "antonyms": true, "hyponyms": true, "anagrams": true,
	"translations": true, "pronunciation": true, "declension": true,
	"inflection": true, "descendants": true, "derived terms": true,
	"related terms": true, "see also": true, "further reading": true,
	"references": true, "alternative forms": true,
}

// Text writes a readable plain-text rendering of nodes to w: headings get
// an underline, list items get bullets or numbers (a list nested inside a
// list item is not printed), tables get ASCII borders. Section headings matching skippableHeadings are omitted
// along with their content, mirroring how the reference dictionary viewer
// hides boilerplate subsections when printing a single entry.
func Text(w io.Writer, nodes []wikitext.Node) error {
	var buf strings.Builder
	p := &printer{w: &buf}
	p.blockList(nodes, 0)

	edited := sliceedit.NewBuffer([]byte(buf.String()))
	edited.ReplaceAllString("\n\n\n", "\n\n")
	_, err := w.Write([]byte(edited.String()))
	return err
}

type printer struct {
	w      *strings.Builder
	skip   bool
	indent int
}

func (p *printer) blockList(nodes []wikitext.Node, depth int) {
	skipping := false
	skipDepth := 0
	for _, n := range nodes {
		if h, ok := n.(wikitext.Heading); ok {
			title := strings.TrimSpace(renderInline(h.Nodes))
			if skippableHeadings[strings.ToLower(title)] {
				skipping = true
				skipDepth = h.Level
				continue
			}
			if skipping {
				if h.Level <= skipDepth {
					skipping = false
				} else {
					continue
				}
			}
		} else if skipping {
			continue
		}
		p.block(n, depth)
	}
}

func (p *printer) block(n wikitext.Node, depth int) {
	switch v := n.(type) {
	case wikitext.Heading:
		text := renderInline(v.Nodes)
		fmt.Fprintf(p.w, "%s%s\n", strings.Repeat("=", v.Level)+" ", text)
		underline := strings.Repeat("-", len(text))
		fmt.Fprintf(p.w, "%s\n\n", underline)
	case wikitext.ParagraphBreak:
		p.w.WriteString("\n")
	case wikitext.HorizontalDivider:
		p.w.WriteString(strings.Repeat("-", 40) + "\n")
	case wikitext.OrderedList:
		for i, item := range v.Items {
			fmt.Fprintf(p.w, "%s%d. %s\n", strings.Repeat("  ", depth), i+1, renderInline(item.Nodes))
		}
	case wikitext.UnorderedList:
		for _, item := range v.Items {
			fmt.Fprintf(p.w, "%s* %s\n", strings.Repeat("  ", depth), renderInline(item.Nodes))
		}
	case wikitext.DefinitionList:
		for _, item := range v.Items {
			marker := ":"
			if item.Type == wikitext.DefinitionListTerm {
				marker = ";"
			}
			fmt.Fprintf(p.w, "%s%s %s\n", strings.Repeat("  ", depth), marker, renderInline(item.Nodes))
		}
	case wikitext.Preformatted:
		fmt.Fprintf(p.w, "    %s\n", renderInline(v.Nodes))
	case wikitext.Table:
		renderTable(p.w, v)
	default:
		p.w.WriteString(renderInline([]wikitext.Node{n}))
	}
}

// renderInline renders a run of inline nodes (text, links, formatting) as a
// single line of plain text, discarding markup that has no plain-text
// equivalent (comments, raw tags).
func renderInline(nodes []wikitext.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		switch v := n.(type) {
		case wikitext.Text:
			b.WriteString(v.Value)
		case wikitext.Bold:
		case wikitext.Italic:
		case wikitext.BoldItalic:
		case wikitext.CharacterEntity:
			b.WriteRune(v.Character)
		case wikitext.Link:
			if len(v.Text) > 0 {
				b.WriteString(renderInline(v.Text))
			} else {
				b.WriteString(v.Target)
			}
		case wikitext.ExternalLink:
			b.WriteString(renderInline(v.Nodes))
		case wikitext.Template:
			b.WriteString("{{")
			b.WriteString(renderInline(v.Name))
			b.WriteString("}}")
		case wikitext.Tag:
			b.WriteString(renderInline(v.Nodes))
		case wikitext.Comment:
		default:
		}
	}
	return b.String()
}

func renderTable(w *strings.Builder, t wikitext.Table) {
	for _, caption := range t.Captions {
		fmt.Fprintf(w, "  %s\n", renderInline(caption.Content))
	}
	for _, row := range t.Rows {
		var cells []string
		for _, cell := range row.Cells {
			cells = append(cells, strings.TrimSpace(renderInline(cell.Content)))
		}
		fmt.Fprintf(w, "| %s |\n", strings.Join(cells, " | "))
	}
	w.WriteString("\n")
}
