// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package reportcmd implements a command to report
// the results of a comparison.
package reportcmd

import (
	"fmt"

	"github.com/js-arias/command"
	"github.com/js-arias/triplet/project"
	"github.com/js-arias/triplet/report"
)

var Command = &command.Command{
	Usage: `report [-i|--input <file>]
	[--plot <file>] [--level <value>]
	<project-file>`,
	Short: "report the results of a comparison",
	Long: `
Command report reads the results of a comparison between two oracles, and
prints the number of triples in each combination of outcomes of the oracles,
as well as the number of triples in which the oracles agreed or disagreed,
in the standard output.

The argument of the command is the name of the project file. By default, the
result file of the project will be used. Use the flag --input, or -i, to read
a different result file.

The agreement between the oracles is reported with a credible interval; by
default the interval is at 95%. Use the flag --level to set a different
level.

If the flag --plot is defined, a bar chart with the outcomes of the
comparison will be saved in the indicated file.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var input string
var plotFile string
var level float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&input, "input", "", "")
	c.Flags().StringVar(&input, "i", "", "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
	c.Flags().Float64Var(&level, "level", 0.95, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if level <= 0 || level >= 1 {
		return c.UsageError(fmt.Sprintf("invalid --level value %.3f", level))
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	if input != "" {
		p.Add(project.Results, input)
	}

	res, err := p.Results()
	if err != nil {
		return err
	}
	nameA, nameB := res.Oracles[0], res.Oracles[1]
	if nameA == "" {
		nameA = "oracle-a"
	}
	if nameB == "" {
		nameB = "oracle-b"
	}

	ag := res.Aggregator()
	if err := report.Text(c.Stdout(), ag, nameA, nameB); err != nil {
		return err
	}
	if err := report.Agreement(ag.Counts(), level).Write(c.Stdout()); err != nil {
		return err
	}

	if plotFile != "" {
		if err := report.Plot(plotFile, ag, nameA, nameB); err != nil {
			return fmt.Errorf("while writing plot %q: %v", plotFile, err)
		}
	}
	return nil
}

