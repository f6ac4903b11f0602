package main

import (
	"fmt"
	"strings"

	"github.com/hesusruiz/vcutils/yaml"

	"github.com/hesusruiz/wikitext/wikitext"
)

// loadConfiguration loads a wikitext.Configuration from a YAML file shaped
// like:
//
//	categoryNamespaces: "Category, CAT"
//	fileNamespaces: "File, Image"
//	protocols: "http://, https://, mailto:"
//	magicWords: "NOTOC, TOC"
//	redirectMagicWords: "REDIRECT"
//	extensionTags: "ref, nowiki"
//	linkTrail: abcdefghijklmnopqrstuvwxyz
//
// the same way hesusruiz-rite's own front matter is loaded with
// yaml.ParseYamlFile and `.String(key, default)` accessors. An empty path
// returns wikitext.Default().
func loadConfiguration(path string) (*wikitext.Configuration, error) {
	if path == "" {
		return wikitext.Default(), nil
	}
	y, err := yaml.ParseYamlFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading configuration %q: %w", path, err)
	}
	source := wikitext.ConfigurationSource{
		CategoryNamespaces: splitList(y.String("categoryNamespaces", "Category")),
		FileNamespaces:     splitList(y.String("fileNamespaces", "File, Image")),
		Protocols:          splitList(y.String("protocols", "http://, https://")),
		MagicWords:         splitList(y.String("magicWords", "")),
		RedirectMagicWords: splitList(y.String("redirectMagicWords", "REDIRECT")),
		ExtensionTags:      splitList(y.String("extensionTags", "ref, nowiki")),
		LinkTrail:          y.String("linkTrail", "abcdefghijklmnopqrstuvwxyz"),
	}
	return wikitext.New(source), nil
}

func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}
