// Package dump streams pages out of a MediaWiki XML export (optionally
// bzip2-compressed, as Wikipedia's public dumps are distributed), parsing
// each page's wikitext with a wikitext.Configuration as it goes.
package dump

import (
	"compress/bzip2"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/hesusruiz/wikitext/wikitext"
)

// Page is one <page> element of a MediaWiki XML export.
type Page struct {
	XMLName xml.Name `xml:"page"`
	Title   string   `xml:"title"`
	Ns      string   `xml:"ns"`
	ID      string   `xml:"id"`
	Redirect struct {
		Title string `xml:"title,attr"`
	} `xml:"redirect"`
	Revision struct {
		ID   string `xml:"id"`
		Text struct {
			Text string `xml:",chardata"`
		} `xml:"text"`
	} `xml:"revision"`
}

// IsRedirect reports whether the page is a redirect rather than an
// article with real content.
func (p *Page) IsRedirect() bool {
	return p.Redirect.Title != "" || strings.HasPrefix(strings.TrimSpace(p.Revision.Text.Text), "#REDIRECT")
}

// Result pairs a dump page with the outcome of parsing its wikitext.
type Result struct {
	Page   Page
	Output wikitext.Output
}

// Reader streams Page/Output pairs out of a MediaWiki export, skipping
// duplicate titles and (optionally) redirects.
type Reader struct {
	SkipRedirects bool
	Log           *zap.SugaredLogger

	decoder *xml.Decoder
	seen    map[string]bool
	cfg     *wikitext.Configuration
}

// NewReader returns a Reader that decodes export from r, decompressing it
// with bzip2 first when bzip2Compressed is true, and parses each page's
// wikitext with cfg.
func NewReader(r io.Reader, bzip2Compressed bool, cfg *wikitext.Configuration) *Reader {
	if bzip2Compressed {
		r = bzip2.NewReader(r)
	}
	return &Reader{
		decoder: xml.NewDecoder(r),
		seen:    make(map[string]bool),
		cfg:     cfg,
	}
}

// Next returns the next page in the export with its wikitext parsed, or
// io.EOF once the export is exhausted. Pages with a title already seen are
// skipped silently, matching the reference dump tool's duplicate handling.
func (r *Reader) Next() (*Result, error) {
	for {
		tok, err := r.decoder.Token()
		if err != nil {
			if err == io.EOF {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("dump: reading token: %w", err)
		}
		start, ok := tok.(xml.StartElement)
		if !ok || start.Name.Local != "page" {
			continue
		}

		var page Page
		if err := r.decoder.DecodeElement(&page, &start); err != nil {
			return nil, fmt.Errorf("dump: decoding page: %w", err)
		}
		if r.seen[page.Title] {
			if r.Log != nil {
				r.Log.Debugw("skipping duplicate title", "title", page.Title)
			}
			continue
		}
		r.seen[page.Title] = true

		if r.SkipRedirects && page.IsRedirect() {
			continue
		}

		output := r.cfg.Parse(page.Revision.Text.Text)
		return &Result{Page: page, Output: output}, nil
	}
}
