// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package wiki implements a command to query
// the Wikipedia taxonomic classifications
// about the outgroup of a triple.
package wiki

import (
	"context"
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/triplet/config"
	"github.com/js-arias/triplet/lineage"
	"github.com/js-arias/triplet/logger"
	"github.com/js-arias/triplet/triple"
	"github.com/js-arias/triplet/wikipedia"
)

var Command = &command.Command{
	Usage: `wiki [--config <file>] [--lineages] [--verbose]
	<name> <name> <name>`,
	Short: "query Wikipedia about a triple",
	Long: `
Command wiki reads three species names, searches the Wikipedia page of each
name, and reads the taxonomic classification of each page. The outgroup is
the species whose classification shares the less inclusive rank with the
other two.

The output is the position (1, 2, or 3) of the outgroup in the argument
list, or 0 if the classifications do not resolve the triple. If a page is not
found, or it does not have a taxonomic classification, or two names are found
in the same page, the command ends with an error.

The arguments of the command are the three names of the triple. Names with
spaces must be quoted.

If the flag --lineages is defined, the classification of each species will be
printed after the outgroup, one line per species.

By default, the English Wikipedia will be used. Use the flag --config to read
the configuration of the service from a configuration file (see
'triplet help config').

Use the flag --verbose to print the visited pages in the standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var configFile string
var printLineages bool
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&configFile, "config", "", "")
	c.Flags().BoolVar(&printLineages, "lineages", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) != 3 {
		return c.UsageError("expecting three names")
	}
	t := triple.New(args[0], args[1], args[2])
	if err := t.Validate(); err != nil {
		return c.UsageError(err.Error())
	}

	cfg, err := config.ReadFile(configFile)
	if err != nil {
		return err
	}
	log := logger.NewWriter(c.Stderr(), verbose)
	defer log.Sync()

	ctx := context.Background()
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	o := wikipedia.New(cfg, log, lineage.New())
	code, err := o.Outgroup(ctx, t)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "%d\n", code)

	if !printLineages {
		return nil
	}
	for _, n := range t {
		title, err := o.Client.Search(ctx, n)
		if err != nil {
			return err
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\t%s\n", n, title, strings.Join(o.Cache.Lineage(title), ", "))
	}
	return nil
}
