// Copyright 2023 Jesus Ruiz. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

var log *zap.SugaredLogger

func setupLogging(debug bool) error {
	var z *zap.Logger
	var err error
	if debug {
		z, err = zap.NewDevelopment()
	} else {
		z, err = zap.NewProduction()
	}
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	log = z.Sugar()
	return nil
}

func main() {
	app := &cli.App{
		Name:     "wikitext",
		Version:  "v0.1",
		Compiled: time.Now(),
		Authors: []*cli.Author{
			{Name: "Jesus Ruiz", Email: "hesus.ruiz@gmail.com"},
		},
		Usage:     "parse MediaWiki wiki-text and inspect or render the result",
		UsageText: "wikitext [global options] command [command options] [INPUT_FILE]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "run in debug mode",
			},
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "load a parser configuration from `FILE` (YAML), default built-in configuration otherwise",
			},
		},
		Before: func(c *cli.Context) error {
			return setupLogging(c.Bool("debug"))
		},
		Commands: []*cli.Command{
			parseCommand,
			dumpCommand,
			lookupCommand,
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
