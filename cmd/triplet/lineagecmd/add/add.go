// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package add implements a command to add
// the Wikipedia lineages of taxa
// to a triplet project.
package add

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/js-arias/command"
	"github.com/js-arias/triplet/lineage"
	"github.com/js-arias/triplet/logger"
	"github.com/js-arias/triplet/project"
	"github.com/js-arias/triplet/wikipedia"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `add [-f|--file <lineage-file>] [--queries]
	[--replace] [--verbose]
	<project-file> [<name>...]`,
	Short: "add Wikipedia lineages to a project",
	Long: `
Command add searches the Wikipedia page of one or more taxon names, reads the
taxonomic classification of each page, and adds the classification, as a
lineage, to a triplet project. The lineages can be used to compare triples
without a network connection (see 'triplet compare').

The first argument of the command is the name of the project file. If no
project file exists, a new project will be created.

One or more taxon names can be given as arguments. Names with spaces must be
quoted. If the flag --queries is defined, all the names of the triples in the
query file of the project will be added.

By default, taxa with a lineage already in the project are ignored. Use the
flag --replace to read the lineage of these taxa again.

If a page is not found, or it does not have a taxonomic classification, the
taxon is reported in the standard error and ignored.

By default the lineages will be stored in the lineage file currently defined
for the project. If the project does not have a lineage file, a new one will
be created with the name 'lineages.tab'. A different file name can be defined
with the flag --file or -f. If this flag is used, and there is a lineage file
already defined, then a new file with that name will be created, and used as
the lineage file for the project (previously defined lineages will be kept).

Use the flag --verbose to print the visited pages in the standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var lineageFile string
var fromQueries bool
var replace bool
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&lineageFile, "file", "", "")
	c.Flags().StringVar(&lineageFile, "f", "", "")
	c.Flags().BoolVar(&fromQueries, "queries", false, "")
	c.Flags().BoolVar(&replace, "replace", false, "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	log := logger.NewWriter(c.Stderr(), verbose)
	defer log.Sync()

	names := args[1:]
	if fromQueries {
		ls, err := p.Queries(log)
		if err != nil {
			return err
		}
		for _, t := range ls {
			names = append(names, t[:]...)
		}
	}
	if len(names) == 0 {
		return c.UsageError("expecting taxon names")
	}

	d := lineage.New()
	if p.Path(project.Lineages) != "" {
		d, err = p.Lineages()
		if err != nil {
			return err
		}
	}

	cfg, err := p.Config()
	if err != nil {
		return err
	}
	o := wikipedia.New(cfg, log, nil)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var added, failed int
	for _, n := range names {
		if ctx.Err() != nil {
			break
		}
		if !replace && len(d.Lineage(n)) > 0 {
			continue
		}

		ls, err := readLineage(ctx, o.Client, n)
		if err != nil {
			log.Warn("lineage not found", zap.String("taxon", n), zap.Error(err))
			failed++
			continue
		}
		d.Set(n, ls)
		added++
	}
	log.Info("lineages read", zap.Int("added", added), zap.Int("failed", failed))

	if lineageFile == "" {
		lineageFile = p.Path(project.Lineages)
		if lineageFile == "" {
			lineageFile = "lineages.tab"
		}
	}
	if err := writeLineages(d); err != nil {
		return err
	}
	p.Add(project.Lineages, lineageFile)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
}

func readLineage(ctx context.Context, c *wikipedia.Client, name string) (lineage.Lineage, error) {
	title, err := c.Search(ctx, name)
	if err != nil {
		return nil, err
	}
	return c.Lineage(ctx, title)
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

func writeLineages(d *lineage.Data) (err error) {
	f, err := os.Create(lineageFile)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := d.TSV(f); err != nil {
		return fmt.Errorf("while writing to %q: %v", lineageFile, err)
	}
	return nil
}
