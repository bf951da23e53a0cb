// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package cmpcmd implements a command to compare
// the outgroups inferred by two oracles
// on the triples of a project.
package cmpcmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/js-arias/command"
	"github.com/js-arias/timetree"
	"github.com/js-arias/triplet/compare"
	"github.com/js-arias/triplet/induced"
	"github.com/js-arias/triplet/lineage"
	"github.com/js-arias/triplet/logger"
	"github.com/js-arias/triplet/opentree"
	"github.com/js-arias/triplet/oracle"
	"github.com/js-arias/triplet/outcome"
	"github.com/js-arias/triplet/project"
	"github.com/js-arias/triplet/report"
	"github.com/js-arias/triplet/wikipedia"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `compare [--offline] [--exec <program>]
	[--workers <number>] [--timeout <seconds>]
	[-o|--output <file>] [--trees <file>]
	[--plot <file>] [--level <value>]
	[--verbose]
	<project-file>`,
	Short: "compare two oracles on the triples of a project",
	Long: `
Command compare reads the triples of species defined in a project, and asks two
oracles about the outgroup of each triple. Then it reports the number of
triples in which each oracle failed, was unable to resolve the triple, or
resolved the triple, and the number of triples in which both oracles agreed
or disagreed about the outgroup.

The argument of the command is the name of the project file. The project must
have a query file. See 'triplet help query-files'.

The first oracle is the induced subtree of the Open Tree of Life synthetic
tree. The second oracle is the taxonomic classification in the Wikipedia
pages of the species. If the flag --offline is defined, the second oracle will
use the lineages stored in the project (see 'triplet lineage add'). If the
flag --exec is defined, the second oracle will be the given program, that
will be called with the three names of each triple as arguments, and must
print the position of the outgroup (0 if unresolved) in the standard output.

The parameters of the web services are defined in the configuration file of
the project (see 'triplet help config'). The flag --workers sets the number
of triples compared at the same time, and the flag --timeout sets the maximum
time, in seconds, of a query to an oracle. Both flags override the values of
the configuration.

The outcome of each triple is stored in a result file. By default, the file
defined in the project will be used, or 'results.tab' if no file is defined.
Use the flag --output, or -o, to define a different file. See
'triplet help result-files'.

If the flag --trees is defined, the trees of each triple resolved by an
oracle will be stored in the indicated file, and the file will be added to
the project.

If the flag --plot is defined, a bar chart with the outcomes of the
comparison will be saved in the indicated file.

The agreement between the oracles is reported with a credible interval; by
default the interval is at 95%. Use the flag --level to set a different
level.

Use the flag --verbose to print the progress of the comparison in the
standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var offline bool
var verbose bool
var execProg string
var workers int
var timeout float64
var output string
var treeFile string
var plotFile string
var level float64

func setFlags(c *command.Command) {
	c.Flags().BoolVar(&offline, "offline", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
	c.Flags().StringVar(&execProg, "exec", "", "")
	c.Flags().IntVar(&workers, "workers", 0, "")
	c.Flags().Float64Var(&timeout, "timeout", 0, "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&treeFile, "trees", "", "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
	c.Flags().Float64Var(&level, "level", 0.95, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if offline && execProg != "" {
		return c.UsageError("flags --offline and --exec are incompatible")
	}
	if level <= 0 || level >= 1 {
		return c.UsageError(fmt.Sprintf("invalid --level value %.3f", level))
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}

	cfg, err := p.Config()
	if err != nil {
		return err
	}
	if workers > 0 {
		cfg.Workers = workers
	}
	if timeout > 0 {
		cfg.Timeout = time.Duration(timeout * float64(time.Second))
	}

	log := logger.NewWriter(c.Stderr(), verbose)
	defer log.Sync()

	ls, err := p.Queries(log)
	if err != nil {
		return err
	}

	a := opentree.New(cfg, log)
	var b oracle.Oracle = wikipedia.New(cfg, log, lineage.New())
	switch {
	case offline:
		d, err := p.Lineages()
		if err != nil {
			return err
		}
		b = d
	case execProg != "":
		b = oracle.Exec{
			Label: filepath.Base(execProg),
			Path:  execProg,
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	log.Info("comparing oracles",
		zap.String("oracle-a", a.Name()),
		zap.String("oracle-b", b.Name()),
		zap.Int("triples", len(ls)),
		zap.Int("workers", cfg.Workers),
		zap.Duration("timeout", cfg.Timeout),
	)
	ag, recs, err := compare.Run(ctx, ls, a, b, compare.Options{
		Timeout: cfg.Timeout,
		Workers: cfg.Workers,
		Logger:  log,
	})
	if errors.Is(err, context.Canceled) {
		log.Warn("comparison interrupted", zap.Int("compared", len(recs)))
	} else if err != nil {
		return err
	}

	if output == "" {
		output = p.Path(project.Results)
		if output == "" {
			output = "results.tab"
		}
	}
	res := &compare.Results{
		Oracles: [2]string{a.Name(), b.Name()},
		Records: recs,
		Skipped: ag.Counts().Skipped,
	}
	if err := writeResults(output, res); err != nil {
		return err
	}
	p.Add(project.Results, output)

	if treeFile != "" {
		if err := writeTrees(treeFile, a.Name(), b.Name(), recs); err != nil {
			return err
		}
		p.Add(project.Trees, treeFile)
	}
	if err := p.Write(); err != nil {
		return err
	}

	if err := report.Text(c.Stdout(), ag, a.Name(), b.Name()); err != nil {
		return err
	}
	if err := report.Agreement(ag.Counts(), level).Write(c.Stdout()); err != nil {
		return err
	}

	if plotFile != "" {
		if err := report.Plot(plotFile, ag, a.Name(), b.Name()); err != nil {
			return err
		}
	}
	return nil
}

func writeResults(name string, res *compare.Results) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := compare.WriteTSV(f, res); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}

func writeTrees(name, nameA, nameB string, recs []compare.Record) (err error) {
	tc := timetree.NewCollection()
	for i, r := range recs {
		for _, o := range []struct {
			name string
			out  outcome.Outcome
		}{
			{nameA, r.A},
			{nameB, r.B},
		} {
			if o.out.Class == outcome.Failed {
				continue
			}
			tn := fmt.Sprintf("%s-%d", o.name, i+1)
			t, err := induced.Tree(tn, r.Triple, o.out.Outgroup)
			if err != nil {
				return err
			}
			if err := tc.Add(t); err != nil {
				return fmt.Errorf("when adding tree %q: %v", tn, err)
			}
		}
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := tc.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", name, err)
	}
	return nil
}
