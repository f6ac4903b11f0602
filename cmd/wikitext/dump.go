package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hesusruiz/wikitext/internal/dump"
)

var dumpCommand = &cli.Command{
	Name:      "dump",
	Usage:     "stream a MediaWiki XML export and report parse warnings per page",
	UsageText: "wikitext dump [--bzip2] DUMP_FILE",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "bzip2",
			Usage: "the dump file is bzip2-compressed, as Wikipedia's public dumps are",
		},
		&cli.BoolFlag{
			Name:  "skip-redirects",
			Usage: "skip pages that are redirects",
		},
	},
	Action: runDump,
}

func runDump(c *cli.Context) error {
	if !c.Args().Present() {
		return fmt.Errorf("dump: a DUMP_FILE argument is required")
	}
	cfg, err := loadConfiguration(c.String("config"))
	if err != nil {
		return err
	}

	f, err := os.Open(c.Args().First())
	if err != nil {
		return fmt.Errorf("opening dump file: %w", err)
	}
	defer f.Close()

	reader := dump.NewReader(f, c.Bool("bzip2"), cfg)
	reader.SkipRedirects = c.Bool("skip-redirects")
	reader.Log = log

	pages := 0
	warnings := 0
	for {
		result, err := reader.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("reading dump: %w", err)
		}
		pages++
		if len(result.Output.Warnings) > 0 {
			warnings += len(result.Output.Warnings)
			log.Infow("page parsed with warnings", "title", result.Page.Title, "warnings", len(result.Output.Warnings))
		}
	}

	log.Infow("dump complete", "pages", pages, "warnings", warnings)
	return nil
}
