package render

import (
	"context"
	"fmt"
	"strings"

	"oss.terrastruct.com/d2/d2graph"
	"oss.terrastruct.com/d2/d2layouts/d2dagrelayout"
	"oss.terrastruct.com/d2/d2lib"
	"oss.terrastruct.com/d2/d2renderers/d2svg"
	"oss.terrastruct.com/d2/d2themes/d2themescatalog"
	"oss.terrastruct.com/d2/lib/textmeasure"

	"github.com/hesusruiz/wikitext/wikitext"
)

// Outline renders an SVG diagram of a document's heading/table structure:
// one top-level box per heading (headings are flat siblings in the parsed
// tree, so boxes are not nested) and one box per table showing its
// row/column counts. This repurposes the same D2
// compile-and-render pipeline the teacher uses for user-authored D2 source
// blocks, but the D2 program itself is generated from the parsed outline
// rather than typed by hand.
func Outline(nodes []wikitext.Node) ([]byte, error) {
	d2Source := buildOutlineD2(nodes)

	ruler, err := textmeasure.NewRuler()
	if err != nil {
		return nil, fmt.Errorf("outline: creating text ruler: %w", err)
	}

	layout := func(ctx context.Context, g *d2graph.Graph) error {
		return d2dagrelayout.Layout(ctx, g, nil)
	}

	diagram, _, err := d2lib.Compile(context.Background(), d2Source, &d2lib.CompileOptions{
		Layout: layout,
		Ruler:  ruler,
	})
	if err != nil {
		return nil, fmt.Errorf("outline: compiling diagram: %w", err)
	}

	out, err := d2svg.Render(diagram, &d2svg.RenderOpts{
		Pad:     d2svg.DEFAULT_PADDING,
		ThemeID: d2themescatalog.NeutralDefault.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("outline: rendering diagram: %w", err)
	}
	return out, nil
}

// buildOutlineD2 walks the top-level nodes and emits a D2 program with one
// top-level shape per heading, in document order and without nesting, and
// one shape per table summarizing its row and column counts.
func buildOutlineD2(nodes []wikitext.Node) string {
	var b strings.Builder
	var path []string
	counter := 0

	var walk func([]wikitext.Node, int)
	walk = func(ns []wikitext.Node, level int) {
		for _, n := range ns {
			switch v := n.(type) {
			case wikitext.Heading:
				counter++
				id := fmt.Sprintf("h%d", counter)
				title := strings.TrimSpace(renderInline(v.Nodes))
				if title == "" {
					title = "untitled"
				}
				prefix := strings.Join(append(append([]string{}, path...), id), ".")
				fmt.Fprintf(&b, "%s: %q\n", prefix, title)
				path = append(path, id)
				walk(v.Nodes, level+1)
				path = path[:len(path)-1]
			case wikitext.Table:
				counter++
				id := fmt.Sprintf("t%d", counter)
				cols := 0
				if len(v.Rows) > 0 {
					cols = len(v.Rows[0].Cells)
				}
				prefix := strings.Join(append(append([]string{}, path...), id), ".")
				fmt.Fprintf(&b, "%s: %q\n", prefix, fmt.Sprintf("table %dx%d", len(v.Rows), cols))
			}
		}
	}
	walk(nodes, 0)
	if b.Len() == 0 {
		b.WriteString("empty: \"(no headings or tables)\"\n")
	}
	return b.String()
}
