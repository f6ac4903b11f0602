package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/hesusruiz/wikitext/internal/render"
)

var parseCommand = &cli.Command{
	Name:      "parse",
	Usage:     "parse a wiki-text file and print its rendered text, or only its warnings",
	UsageText: "wikitext parse [--outline FILE] [INPUT_FILE]",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  "outline",
			Usage: "also render an SVG heading/table outline diagram to `FILE`",
		},
		&cli.BoolFlag{
			Name:  "warnings",
			Usage: "print only the parse warnings, not the rendered text",
		},
	},
	Action: runParse,
}

func runParse(c *cli.Context) error {
	cfg, err := loadConfiguration(c.String("config"))
	if err != nil {
		return err
	}

	var data []byte
	if c.Args().Present() {
		data, err = os.ReadFile(c.Args().First())
	} else {
		data, err = readAllStdin()
	}
	if err != nil {
		return fmt.Errorf("reading input: %w", err)
	}

	output := cfg.Parse(string(data))
	log.Infow("parsed document", "nodes", len(output.Nodes), "warnings", len(output.Warnings))

	if c.Bool("warnings") {
		for _, w := range output.Warnings {
			fmt.Printf("%d-%d: %s\n", w.Start, w.End, w.Message.Message())
		}
		return nil
	}

	if err := render.Text(os.Stdout, output.Nodes); err != nil {
		return fmt.Errorf("rendering text: %w", err)
	}

	if path := c.String("outline"); path != "" {
		svg, err := render.Outline(output.Nodes)
		if err != nil {
			return fmt.Errorf("rendering outline: %w", err)
		}
		if err := os.WriteFile(path, svg, 0664); err != nil {
			return fmt.Errorf("writing outline %q: %w", path, err)
		}
	}
	return nil
}

func readAllStdin() ([]byte, error) {
	return io.ReadAll(os.Stdin)
}
