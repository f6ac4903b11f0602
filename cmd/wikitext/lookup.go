package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hesusruiz/wikitext/internal/lookup"
)

var lookupCommand = &cli.Command{
	Name:      "lookup",
	Usage:     "look up a word in a local or online Wiktionary dump and print its entry",
	UsageText: "wikitext lookup [--index FILE --dictionary FILE] [--lang LANG] WORD",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "index", Usage: "path to the dump's byte-offset index file"},
		&cli.StringFlag{Name: "dictionary", Usage: "path to the bzip2-compressed dictionary dump"},
		&cli.StringFlag{Name: "lang", Usage: "language section to print (default: first section found)"},
		&cli.StringFlag{Name: "api", Usage: "Wiktionary API base URL to use when the word is not found in a local dump"},
	},
	Action: runLookup,
}

func runLookup(c *cli.Context) error {
	if !c.Args().Present() {
		return fmt.Errorf("lookup: a WORD argument is required")
	}
	cfg, err := loadConfiguration(c.String("config"))
	if err != nil {
		return err
	}

	source := &lookup.Source{
		IndexPath:      c.String("index"),
		DictionaryPath: c.String("dictionary"),
		APIBaseURL:     c.String("api"),
		Configuration:  cfg,
		Log:            log,
	}

	text, ok, err := source.Lookup(c.Args().First(), c.String("lang"))
	if err != nil {
		return fmt.Errorf("looking up %q: %w", c.Args().First(), err)
	}
	if !ok {
		fmt.Fprintf(os.Stderr, "no entry found for %q\n", c.Args().First())
		os.Exit(1)
	}
	fmt.Print(text)
	return nil
}
