// Package lookup is a dictionary front-end over the wikitext parser: given
// a headword, it finds the word's raw wikitext either in a local
// bzip2-compressed Wiktionary dump (by way of a byte-offset index) or,
// failing that, by querying the Wiktionary action API, then
// renders only the requested language's section.
package lookup

import (
	"bufio"
	"compress/bzip2"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/hesusruiz/wikitext/internal/render"
	"github.com/hesusruiz/wikitext/wikitext"
)

// WiktionaryAPIPath is the default Wiktionary action API endpoint used by
// lookupOnline when no other base URL is configured.
const WiktionaryAPIPath = "https://en.wiktionary.org/w/api.php?action=parse&format=json&prop=wikitext&page="

// Source finds and parses dictionary entries for headwords, either from a
// local bzip2 dump + index or from an online API, and renders a single
// requested language section from the result.
type Source struct {
	IndexPath      string
	DictionaryPath string
	APIBaseURL     string
	Configuration  *wikitext.Configuration
	Log            *zap.SugaredLogger
}

// Lookup finds word's wikitext (local dump first, online API as a
// fallback), parses it, and returns the rendered text of the section for
// lang, or the first language section found if lang is empty. ok is false
// if the word could not be found by either method.
func (s *Source) Lookup(word, lang string) (text string, ok bool, err error) {
	raw, ok, err := s.lookupLocal(word)
	if err != nil {
		return "", false, err
	}
	if !ok {
		raw, ok, err = s.lookupOnline(word)
		if err != nil {
			return "", false, err
		}
		if !ok {
			return "", false, nil
		}
	}

	output := s.Configuration.Parse(raw)
	section, found := selectLanguageSection(output.Nodes, lang)
	if !found {
		return "", false, nil
	}
	var b strings.Builder
	if err := render.Text(&b, section); err != nil {
		return "", false, err
	}
	return b.String(), true, nil
}

// lookupLocal scans the index file (lines of the form
// "offset:pageID:title") for word, then seeks into the bzip2-compressed
// dictionary dump at the matching offset, finds the <page>...</page>
// element for that title and returns the wikitext of its revision.
func (s *Source) lookupLocal(word string) (string, bool, error) {
	if s.IndexPath == "" {
		return "", false, nil
	}
	indexFile, err := os.Open(s.IndexPath)
	if err != nil {
		return "", false, nil
	}
	defer indexFile.Close()

	scanner := bufio.NewScanner(bufio.NewReader(bzip2.NewReader(indexFile)))
	for scanner.Scan() {
		parts := strings.SplitN(scanner.Text(), ":", 3)
		if len(parts) != 3 {
			continue
		}
		offsetStr, title := parts[0], parts[2]
		if title != word {
			continue
		}
		offset, err := strconv.ParseInt(offsetStr, 10, 64)
		if err != nil {
			return "", false, fmt.Errorf("lookup: parsing index offset: %w", err)
		}
		return s.extractPage(offset, title)
	}
	if err := scanner.Err(); err != nil {
		return "", false, fmt.Errorf("lookup: scanning index: %w", err)
	}
	return "", false, nil
}

func (s *Source) extractPage(offset int64, title string) (string, bool, error) {
	f, err := os.Open(s.DictionaryPath)
	if err != nil {
		return "", false, fmt.Errorf("lookup: opening dictionary dump: %w", err)
	}
	defer f.Close()
	if _, err := f.Seek(offset, io.SeekStart); err != nil {
		return "", false, fmt.Errorf("lookup: seeking dictionary dump: %w", err)
	}

	scanner := bufio.NewScanner(bufio.NewReader(bzip2.NewReader(f)))
	var buf strings.Builder
	inPage := false
	titleLine := fmt.Sprintf("    <title>%s</title>", title)
	for scanner.Scan() {
		line := scanner.Text()
		if line == titleLine {
			buf.WriteString("  <page>\n")
			inPage = true
		}
		if inPage {
			buf.WriteString(line)
			buf.WriteString("\n")
			if line == "  </page>" {
				break
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", false, fmt.Errorf("lookup: scanning dictionary dump: %w", err)
	}
	if !inPage {
		return "", false, nil
	}
	var page struct {
		Text string `xml:"revision>text"`
	}
	if err := xml.Unmarshal([]byte(buf.String()), &page); err != nil {
		return "", false, fmt.Errorf("lookup: decoding dictionary page: %w", err)
	}
	return page.Text, true, nil
}

func (s *Source) lookupOnline(word string) (string, bool, error) {
	base := s.APIBaseURL
	if base == "" {
		base = WiktionaryAPIPath
	}
	resp, err := http.Get(base + url.QueryEscape(word))
	if err != nil {
		return "", false, fmt.Errorf("lookup: querying wiktionary: %w", err)
	}
	defer resp.Body.Close()

	var body struct {
		Parse struct {
			Wikitext struct {
				Text string `json:"*"`
			} `json:"wikitext"`
		} `json:"parse"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", false, fmt.Errorf("lookup: decoding wiktionary response: %w", err)
	}
	if body.Parse.Wikitext.Text == "" {
		return "", false, nil
	}
	return body.Parse.Wikitext.Text, true, nil
}

// selectLanguageSection finds the top-level Heading (a "==Language==" line)
// matching lang case-insensitively, or the first top-level Heading if lang
// is empty, and returns the nodes of its section: everything at the top
// level between it and the next Heading of the same or a shallower level
// (or the end of the document). Headings are flat siblings of their
// sections rather than containers of them, so the section body has to be
// gathered from the surrounding node list, not from the Heading itself.
func selectLanguageSection(nodes []wikitext.Node, lang string) ([]wikitext.Node, bool) {
	for i, n := range nodes {
		h, ok := n.(wikitext.Heading)
		if !ok || h.Level != 2 {
			continue
		}
		if lang != "" {
			title := strings.TrimSpace(renderPlain(h.Nodes))
			if !strings.EqualFold(title, lang) {
				continue
			}
		}
		end := len(nodes)
		for j := i + 1; j < len(nodes); j++ {
			if next, ok := nodes[j].(wikitext.Heading); ok && next.Level <= h.Level {
				end = j
				break
			}
		}
		return nodes[i+1 : end], true
	}
	return nil, false
}

func renderPlain(nodes []wikitext.Node) string {
	var b strings.Builder
	for _, n := range nodes {
		if t, ok := n.(wikitext.Text); ok {
			b.WriteString(t.Value)
		}
	}
	return b.String()
}
