// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package lineage

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ReadTSV reads a set of lineages
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - taxon, the taxonomic name of the taxon
//   - rank, the name of a rank in the lineage of the taxon
//
// The ranks of a taxon must be given in root-to-tip order.
//
// Here is an example file:
//
//	taxon	rank
//	Rattus norvegicus	Animalia
//	Rattus norvegicus	Chordata
//	Rattus norvegicus	Mammalia
//	Rattus norvegicus	Rodentia
func ReadTSV(r io.Reader) (*Data, error) {
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
	for _, h := range []string{"taxon", "rank"} {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	d := New()
	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		f := "taxon"
		tax := row[fields[f]]

		f = "rank"
		rank := row[fields[f]]

		d.Add(tax, rank)
	}
	return d, nil
}

// TSV writes lineages as a TSV file.
func (d *Data) TSV(w io.Writer) error {
	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	// header
	header := []string{"taxon", "rank"}
	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}

	for _, tx := range d.Taxa() {
		for _, r := range d.Lineage(tx) {
			row := []string{
				tx,
				r,
			}
			if err := tab.Write(row); err != nil {
				return fmt.Errorf("when writing data: %v", err)
			}
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
