package wikitext

import "strings"

// Namespace distinguishes the handful of link namespaces that change how a
// link is parsed: a Category link has no rendered target text by default,
// an File/Image link's trailing parameters are captions rather than link
// text.
type Namespace int

const (
	// NamespaceCategory is a namespace configured as a category namespace.
	NamespaceCategory Namespace = iota
	// NamespaceFile is a namespace configured as a file namespace.
	NamespaceFile
)

// TagClass says how a configured tag name is handled by the tag parser.
type TagClass int

const (
	// TagClassTag is a plain HTML-like tag: StartTag/EndTag nodes are
	// emitted directly, with no effect on nesting of other constructs.
	TagClassTag TagClass = iota
	// TagClassExtensionTag is a paired or self-closing tag (<ref>, <pre>,
	// <nowiki>, ...) whose body becomes the Nodes of a single Tag node.
	TagClassExtensionTag
)

// ConfigurationSource is the plain-data description of a wiki's parsing
// configuration: the set of namespace names, magic words, protocols and tag
// names it recognizes. It is the form loaded from YAML by cmd/wikitext and
// compiled into a Configuration by New.
type ConfigurationSource struct {
	CategoryNamespaces []string
	ExtensionTags      []string
	FileNamespaces     []string
	LinkTrail          string
	MagicWords         []string
	Protocols          []string
	RedirectMagicWords []string
}

// Configuration is the compiled form of a ConfigurationSource: tries ready
// for byte-level matching, and the link-trail character set.
type Configuration struct {
	CharacterEntities    *Trie
	LinkTrailCharacterSet map[rune]struct{}
	MagicWords           *Trie
	Namespaces           *Trie
	Protocols            *Trie
	RedirectMagicWords   *Trie
	TagNameMap           map[string]TagClass
}

// builtinHTMLTags is the fixed set of HTML tag names the reference parser
// always recognizes as TagClassTag, regardless of ConfigurationSource.
var builtinHTMLTags = []string{
	"abbr", "b", "bdi", "bdo", "blockquote", "br", "caption", "center", "cite",
	"code", "data", "dd", "del", "dfn", "div", "dl", "dt", "em", "font",
	"h1", "h2", "h3", "h4", "h5", "h6", "hr", "i", "ins", "kbd", "li", "mark",
	"ol", "p", "pre", "q", "rb", "rp", "rt", "ruby", "s", "samp", "small",
	"span", "strike", "strong", "sub", "sup", "table", "td", "th", "time",
	"tr", "tt", "u", "ul", "var", "wbr",
}

// New compiles a ConfigurationSource into a ready-to-use Configuration.
func New(source ConfigurationSource) *Configuration {
	cfg := &Configuration{
		CharacterEntities:     NewTrie(),
		LinkTrailCharacterSet: make(map[rune]struct{}),
		MagicWords:            NewTrie(),
		Namespaces:            NewTrie(),
		Protocols:             NewTrie(),
		RedirectMagicWords:    NewTrie(),
		TagNameMap:            make(map[string]TagClass),
	}

	for name, r := range htmlCharacterEntities {
		cfg.CharacterEntities.AddCaseSensitiveTerm(name, r)
	}

	for _, r := range source.LinkTrail {
		cfg.LinkTrailCharacterSet[r] = struct{}{}
	}

	for _, word := range source.MagicWords {
		cfg.MagicWords.AddTerm(word, nil)
	}

	for _, name := range source.CategoryNamespaces {
		cfg.Namespaces.AddTerm(name, NamespaceCategory)
	}
	for _, name := range source.FileNamespaces {
		cfg.Namespaces.AddTerm(name, NamespaceFile)
	}

	for _, protocol := range source.Protocols {
		cfg.Protocols.AddTerm(protocol, nil)
	}

	for _, word := range source.RedirectMagicWords {
		cfg.RedirectMagicWords.AddTerm(word, nil)
	}

	for _, name := range builtinHTMLTags {
		cfg.TagNameMap[name] = TagClassTag
	}
	for _, name := range source.ExtensionTags {
		cfg.TagNameMap[strings.ToLower(name)] = TagClassExtensionTag
	}

	return cfg
}

// Default returns a Configuration built from a representative English-
// Wikipedia-like ConfigurationSource, suitable for tests and prototyping
// (see SPEC_FULL.md for the exact fixture values and why they were chosen).
func Default() *Configuration {
	return New(ConfigurationSource{
		CategoryNamespaces: []string{"Category", "CAT"},
		ExtensionTags: []string{
			"nowiki", "math", "pre", "ref", "references", "gallery",
			"syntaxhighlight", "source",
		},
		FileNamespaces:     []string{"File", "Image", "Media"},
		LinkTrail:          "abcdefghijklmnopqrstuvwxyz",
		MagicWords:         []string{"NOTOC", "NOEDITSECTION", "FORCETOC", "TOC", "NOGALLERY"},
		Protocols:          []string{"http://", "https://", "ftp://", "mailto:", "news:", "irc://", "geo:"},
		RedirectMagicWords: []string{"REDIRECT"},
	})
}

// Parse parses wikiText with this configuration, returning the resulting
// node tree and any warnings collected along the way.
func (c *Configuration) Parse(wikiText string) Output {
	return parse(c, wikiText)
}

// Output is the result of parsing: the top-level nodes and any warnings
// collected along the way.
type Output struct {
	Nodes    []Node
	Warnings []Warning
}
