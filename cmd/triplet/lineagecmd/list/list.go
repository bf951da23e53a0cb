// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package list implements a command to print
// the taxa with lineages in a triplet project.
package list

import (
	"fmt"
	"strings"

	"github.com/js-arias/command"
	"github.com/js-arias/triplet/project"
)

var Command = &command.Command{
	Usage: "list [--lineage] <project-file>",
	Short: "print a list of the taxa with lineages",
	Long: `
Command list reads the lineages from a triplet project and prints the taxon
names in the standard output.

The argument of the command is the name of the project file.

If the flag --lineage is defined, the lineage of each taxon, from the root to
the tip, will be printed after the taxon name.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var printLineage bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&printLineage, "lineage", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	d, err := p.Lineages()
	if err != nil {
		return err
	}

	for _, tax := range d.Taxa() {
		if !printLineage {
			fmt.Fprintf(c.Stdout(), "%s\n", tax)
			continue
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", tax, strings.Join(d.Lineage(tax), " > "))
	}
	return nil
}
