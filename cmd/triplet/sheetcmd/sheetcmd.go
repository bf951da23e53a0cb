// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sheetcmd implements a command to download
// the queries of a project
// from a shared spreadsheet.
package sheetcmd

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/triplet/logger"
	"github.com/js-arias/triplet/project"
	"github.com/js-arias/triplet/sheet"
	"github.com/js-arias/triplet/triple"
	"go.uber.org/zap"
)

var Command = &command.Command{
	Usage: `sheet [-u|--url <url>] [-d|--doc-id <id>]
	[-o|--output <file>] [--verbose]
	<project-file>`,
	Short: "download queries from a shared spreadsheet",
	Long: `
Command sheet downloads the first sheet of a shared Google spreadsheet as a CSV
file, and sets the file as the query file of a project.

The argument of the command is the name of the project file. If no project
file exists, a new project will be created.

The spreadsheet is identified either by its URL, using the flag --url, or -u,
or by its document ID, using the flag --doc-id, or -d. One of the flags is
required. Both Google Docs and Google Drive URLs are accepted.

The spreadsheet must be in the format of a query file (see
'triplet help query-files'): a header row, and then rows with a label and
the three names of each triple. Rows with less than four columns are ignored.

By default, the file will be stored as 'queries.csv'. Use the flag --output,
or -o, to define a different file name. The file name must end in '.csv'.

Use the flag --verbose to print the ignored rows in the standard error.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var docURL string
var docID string
var output string
var verbose bool

func setFlags(c *command.Command) {
	c.Flags().StringVar(&docURL, "url", "", "")
	c.Flags().StringVar(&docURL, "u", "", "")
	c.Flags().StringVar(&docID, "doc-id", "", "")
	c.Flags().StringVar(&docID, "d", "", "")
	c.Flags().StringVar(&output, "output", "queries.csv", "")
	c.Flags().StringVar(&output, "o", "queries.csv", "")
	c.Flags().BoolVar(&verbose, "verbose", false, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}
	if docID == "" {
		if docURL == "" {
			return c.UsageError("expecting flag --url or --doc-id")
		}
		id, err := sheet.DocID(docURL)
		if err != nil {
			return fmt.Errorf("%v: consider using the flag --doc-id", err)
		}
		docID = id
	}

	p, err := openProject(args[0])
	if err != nil {
		return err
	}

	log := logger.NewWriter(c.Stderr(), verbose)
	defer log.Sync()

	cl := &sheet.Client{}
	data, err := cl.Download(context.Background(), docID)
	if err != nil {
		return err
	}

	ls, err := triple.ReadCSV(bytes.NewReader(data), log)
	if err != nil {
		return fmt.Errorf("spreadsheet %q: %v", docID, err)
	}
	if len(ls) == 0 {
		return fmt.Errorf("spreadsheet %q: no triples found", docID)
	}
	log.Info("spreadsheet downloaded",
		zap.String("doc-id", docID),
		zap.Int("triples", len(ls)),
		zap.String("file", output),
	)

	if err := os.WriteFile(output, data, 0o644); err != nil {
		return err
	}
	p.Add(project.Queries, output)
	if err := p.Write(); err != nil {
		return err
	}
	return nil
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
