// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package otl implements a command to query
// the Open Tree of Life
// about the outgroup of a triple.
package otl

import (
	"context"
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/triplet/config"
	"github.com/js-arias/triplet/logger"
	"github.com/js-arias/triplet/opentree"
	"github.com/js-arias/triplet/triple"
)

var Command = &command.Command{
	Usage: `otl [--config <file>] [--verbose]
	<name> <name> <name>`,
	Short: "query the Open Tree of Life about a triple",
	Long: `
Command otl reads three species names, matches the names with the Open Tree
taxonomy, and retrieves the induced subtree of the three taxa from the
synthetic tree of the Open Tree of Life.

The output is the position (1, 2, or 3) of the outgroup in the argument
list, or 0 if the induced subtree does not resolve the triple. If a name is
not found, or it is ambiguous, or two names are synonyms, the command ends
with an error.

The arguments of the command are the three names of the triple. Names with
spaces must be quoted.

By default, the public Open Tree web services will be used. Use the flag
--config to read the configuration of the service from a configuration file
(see 'triplet help config').

Use the flag --verbose to print the matched taxonomic IDs and the induced
subtree in the standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var configFile string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&configFile, "config", "", "")
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

	o := opentree.New(cfg, log)
	code, err := o.Outgroup(ctx, t)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.Stdout(), "%d\n", code)
	return nil
}
