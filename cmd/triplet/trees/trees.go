// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package trees implements a command to print
// the induced trees of a triplet project.
package trees

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/triplet/induced"
	"github.com/js-arias/triplet/project"
	"golang.org/x/exp/slices"
)

var Command = &command.Command{
	Usage: "trees [--terms] <project-file>",
	Short: "print the induced trees of a project",
	Long: `
Command trees reads the induced trees stored in a triplet project (see the
flag --trees of 'triplet compare'), and prints the name of each tree and the
name of its outgroup, or "unresolved" if the tree is a polytomy, in the
standard output.

The argument of the command is the name of the project file.

If the flag --terms is defined, the names of the terminals of all trees will
be printed instead.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var termsFlag bool

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&termsFlag, "terms", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	tc, err := p.Trees()
	if err != nil {
		return err
	}

	names := tc.Names()
	slices.Sort(names)

	if termsFlag {
		terms := make(map[string]bool)
		for _, tn := range names {
			t := tc.Tree(tn)
			if t == nil {
				continue
			}
			for _, tax := range t.Terms() {
				terms[tax] = true
			}
		}
		ls := make([]string, 0, len(terms))
		for tax := range terms {
			ls = append(ls, tax)
		}
		slices.Sort(ls)
		for _, tax := range ls {
			fmt.Fprintf(c.Stdout(), "%s\n", tax)
		}
		return nil
	}

	for _, tn := range names {
		t := tc.Tree(tn)
		if t == nil {
			continue
		}
		out, err := induced.Outgroup(t)
		if err != nil {
			return err
		}
		if out == "" {
			out = "unresolved"
		}
		fmt.Fprintf(c.Stdout(), "%s\t%s\n", tn, out)
	}
	return nil
}
