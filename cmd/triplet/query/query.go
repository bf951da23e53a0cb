// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package query implements a command to set
// and print the triples of a triplet project.
package query

import (
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/triplet/logger"
	"github.com/js-arias/triplet/project"
	"github.com/js-arias/triplet/triple"
)

var Command = &command.Command{
	Usage: `query [--add <query-file>] [--verbose]
	<project-file>`,
	Short: "set or print the triples of a project",
	Long: `
Command query prints the triples of species defined in a triplet project, one
triple per line, in the form of a tab-delimited file. Triples with an empty
or repeated name are marked as invalid in the standard error.

The argument of the command is the name of the project file.

If the flag --add is defined, the indicated file will be set as the query file
of the project, after checking that the file can be read. If no project file
exists, a new project will be created. See 'triplet help query-files' for the
format of the query files.

Use the flag --verbose to print the ignored rows of a CSV query file in the
standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var addFile string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&addFile, "add", "", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	log := logger.NewWriter(c.Stderr(), verbose)
	defer log.Sync()

	if addFile != "" {
		p, err := openProject(args[0])
		if err != nil {
			return err
		}
		p.Add(project.Queries, addFile)
		if _, err := p.Queries(log); err != nil {
			return err
		}
		return p.Write()
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	ls, err := p.Queries(log)
	if err != nil {
		return err
	}
	for i, t := range ls {
		if err := t.Validate(); err != nil {
			fmt.Fprintf(c.Stderr(), "WARNING: query %d: %v\n", i+1, err)
		}
	}
	return triple.TSV(c.Stdout(), ls)
}

func openProject(name string) (*project.Project, error) {
	p, err := project.Read(name)
	if errors.Is(err, os.ErrNotExist) {
		p := project.New()
		p.SetName(name)
		return p, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to open project %q: %v", name, err)
	}
	return p, nil
}
