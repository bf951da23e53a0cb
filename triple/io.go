// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package triple

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// ReadCSV reads triples from a spreadsheet
// exported as a CSV file.
//
// The first row with at least four columns is the header.
// In the following rows,
// the first column is a label of the query
// and the next three columns are the names of the triple.
// Any other column is ignored.
// Rows with less than four columns are skipped
// with a warning.
//
// Here is an example file:
//
//	query,first,second,third
//	q1,Alces alces,Rattus norvegicus,Meles meles
//	q2,Homo sapiens,Pan troglodytes,Gorilla gorilla
func ReadCSV(r io.Reader, logger *zap.Logger) ([]Triple, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	tab := csv.NewReader(r)
	tab.FieldsPerRecord = -1
	tab.TrimLeadingSpace = true

	var ls []Triple
	header := false
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}
		if len(row) < 4 {
			logger.Warn("row with too few columns",
				zap.Int("row", ln),
				zap.String("content", strings.Join(row, ",")),
			)
			continue
		}
		if !header {
			header = true
			continue
		}
		ls = append(ls, New(row[1], row[2], row[3]))
	}
	return ls, nil
}

var tsvHeader = []string{
	"first",
	"second",
	"third",
}

// ReadTSV reads triples from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - first, the name of the first species
//   - second, the name of the second species
//   - third, the name of the third species
//
// Here is an example file:
//
//	# species triples
//	first	second	third
//	Alces alces	Rattus norvegicus	Meles meles
func ReadTSV(r io.Reader) ([]Triple, error) {
	tab := csv.NewReader(r)
	tab.Comma = '\t'
	tab.Comment = '#'

	head, err := tab.Read()
	if err != nil {
		return nil, fmt.Errorf("while reading header: %v", err)
	}
	fields := make(map[string]int, len(head))
	for i, h := range head {
		h = strings.ToLower(h)
		fields[h] = i
	}
	for _, h := range tsvHeader {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	var ls []Triple
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		t := New(row[fields["first"]], row[fields["second"]], row[fields["third"]])
		ls = append(ls, t)
	}
	return ls, nil
}

// TSV writes a list of triples as a TSV file.
func TSV(w io.Writer, ls []Triple) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(tsvHeader); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, t := range ls {
		if err := tab.Write(t[:]); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}

// Read reads triples from a file,
// selecting the format by the file extension:
// files ending in ".csv" are read as spreadsheet exports,
// any other file as a TSV file.
func Read(r io.Reader, name string, logger *zap.Logger) ([]Triple, error) {
	if strings.HasSuffix(strings.ToLower(name), ".csv") {
		return ReadCSV(r, logger)
	}
	return ReadTSV(r)
}
