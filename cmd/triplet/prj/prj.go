// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package prj implements a command to print
// the basic information of a project.
package prj

import (
	"fmt"
	"io"

	"github.com/js-arias/command"
	"github.com/js-arias/triplet/project"
)

var Command = &command.Command{
	Usage: "prj <project-file>",
	Short: "print information about a project",
	Long: `
Command prj reads a triplet project and prints the information of the
different project elements into the standard output.

The argument of the command is the name of the project file.
	`,
	Run: run,
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	if err := readConfig(c.Stdout(), p); err != nil {
		return err
	}
	if p.Path(project.Queries) != "" {
		if err := readQueries(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.Lineages) != "" {
		if err := readLineages(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.Results) != "" {
		if err := readResults(c.Stdout(), p); err != nil {
			return err
		}
	}
	if p.Path(project.Trees) != "" {
		if err := readTrees(c.Stdout(), p); err != nil {
			return err
		}
	}
	return nil
}

func readConfig(w io.Writer, p *project.Project) error {
	cfg, err := p.Config()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Oracle configuration:\n")
	if name := p.Path(project.Config); name != "" {
		fmt.Fprintf(w, "\tfile: %s\n", name)
	} else {
		fmt.Fprintf(w, "\tfile: <default values>\n")
	}
	fmt.Fprintf(w, "\topentree: %s [%.2f req/s]\n", cfg.OpenTree.URL, cfg.OpenTree.Rate)
	fmt.Fprintf(w, "\twikipedia: %s [%.2f req/s]\n", cfg.Wikipedia.URL, cfg.Wikipedia.Rate)
	fmt.Fprintf(w, "\ttimeout: %v\n", cfg.Timeout)
	fmt.Fprintf(w, "\tworkers: %d\n", cfg.Workers)
	fmt.Fprintf(w, "\n")
	return nil
}

func readQueries(w io.Writer, p *project.Project) error {
	ls, err := p.Queries(nil)
	if err != nil {
		return err
	}

	var invalid int
	for _, t := range ls {
		if t.Validate() != nil {
			invalid++
		}
	}

	fmt.Fprintf(w, "Queries:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Queries))
	fmt.Fprintf(w, "\ttriples: %d\n", len(ls))
	if invalid > 0 {
		fmt.Fprintf(w, "\tinvalid triples: %d\n", invalid)
	}
	fmt.Fprintf(w, "\n")
	return nil
}

func readLineages(w io.Writer, p *project.Project) error {
	d, err := p.Lineages()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Lineages:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Lineages))
	fmt.Fprintf(w, "\tdefined taxa: %d\n", len(d.Taxa()))
	fmt.Fprintf(w, "\n")
	return nil
}

func readResults(w io.Writer, p *project.Project) error {
	res, err := p.Results()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Results:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Results))
	fmt.Fprintf(w, "\toracles: %s, %s\n", res.Oracles[0], res.Oracles[1])
	fmt.Fprintf(w, "\ttriples: %d\n", len(res.Records))
	fmt.Fprintf(w, "\n")
	return nil
}

func readTrees(w io.Writer, p *project.Project) error {
	tc, err := p.Trees()
	if err != nil {
		return err
	}

	terms := make(map[string]bool)
	for _, tn := range tc.Names() {
		t := tc.Tree(tn)
		if t == nil {
			continue
		}
		for _, tax := range t.Terms() {
			terms[tax] = true
		}
	}

	fmt.Fprintf(w, "Induced trees:\n")
	fmt.Fprintf(w, "\tfile: %s\n", p.Path(project.Trees))
	fmt.Fprintf(w, "\ttrees: %d\n", len(tc.Names()))
	fmt.Fprintf(w, "\tterminals: %d\n", len(terms))
	fmt.Fprintf(w, "\n")
	return nil
}
