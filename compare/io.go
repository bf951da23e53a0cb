// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package compare

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/js-arias/triplet/outcome"
	"github.com/js-arias/triplet/triple"
)

var header = []string{
	"first",
	"second",
	"third",
	"oracle-a",
	"oracle-b",
}

// Results are the records of a comparison
// with the names of the compared oracles.
type Results struct {
	Oracles [2]string
	Records []Record

	// Skipped is the number of triples
	// rejected before querying the oracles.
	Skipped int
}

// Aggregator returns an aggregator
// with the outcomes of the records
// and the skipped triples.
func (res *Results) Aggregator() *Aggregator {
	ag := FromRecords(res.Records)
	for i := 0; i < res.Skipped; i++ {
		ag.Skip()
	}
	return ag
}

// ReadTSV reads the records of a comparison
// from a TSV file.
//
// The TSV file must contain the following fields:
//
//   - first, second, third, the names of the triple
//   - oracle-a, the outcome of the first oracle
//   - oracle-b, the outcome of the second oracle
//
// An outcome is either "failed", "unresolved",
// or the 1-based position of the outgroup.
// The names of the oracles,
// separated by a tab,
// are read from an "oracles" comment before the header,
// and the number of skipped triples
// from a "skipped" comment.
//
// Here is an example file:
//
//	# oracles: opentree	wikipedia
//	# skipped: 1
//	first	second	third	oracle-a	oracle-b
//	Homo sapiens	Pan troglodytes	Quercus robur	3	3
//	Alces alces	Rattus norvegicus	Meles meles	2	unresolved
func ReadTSV(r io.Reader) (*Results, error) {
	br := bufio.NewReader(r)
	res := &Results{}
	for {
		b, err := br.Peek(1)
		if err != nil || b[0] != '#' {
			break
		}
		ln, err := br.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("while reading header: %v", err)
		}
		ln = strings.TrimSpace(strings.TrimPrefix(ln, "#"))
		if v, ok := strings.CutPrefix(ln, "oracles:"); ok {
			names := strings.Split(strings.TrimSpace(v), "\t")
			if len(names) != 2 {
				continue
			}
			a, b := strings.TrimSpace(names[0]), strings.TrimSpace(names[1])
			if a == "" || b == "" {
				continue
			}
			res.Oracles = [2]string{a, b}
			continue
		}
		if v, ok := strings.CutPrefix(ln, "skipped:"); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil || n < 0 {
				return nil, fmt.Errorf("invalid skipped count %q", strings.TrimSpace(v))
			}
			res.Skipped = n
		}
	}

	tab := csv.NewReader(br)
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
	for _, h := range header {
		if _, ok := fields[h]; !ok {
			return nil, fmt.Errorf("expecting field %q", h)
		}
	}

	for {
		row, err := tab.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		ln, _ := tab.FieldPos(0)
		if err != nil {
			return nil, fmt.Errorf("on row %d: %v", ln, err)
		}

		t := triple.New(row[fields["first"]], row[fields["second"]], row[fields["third"]])

		f := "oracle-a"
		a, err := outcome.Parse(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		f = "oracle-b"
		b, err := outcome.Parse(row[fields[f]])
		if err != nil {
			return nil, fmt.Errorf("on row %d: field %q: %v", ln, f, err)
		}

		res.Records = append(res.Records, Record{
			Triple: t,
			A:      a,
			B:      b,
		})
	}
	return res, nil
}

// WriteTSV writes the records of a comparison
// as a TSV file.
// The names of the oracles
// and the number of skipped triples
// are stored as comments.
func WriteTSV(w io.Writer, res *Results) error {
	if _, err := fmt.Fprintf(w, "# oracles: %s\t%s\n", res.Oracles[0], res.Oracles[1]); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	if res.Skipped > 0 {
		if _, err := fmt.Fprintf(w, "# skipped: %d\n", res.Skipped); err != nil {
			return fmt.Errorf("unable to write header: %v", err)
		}
	}

	tab := csv.NewWriter(w)
	tab.Comma = '\t'
	tab.UseCRLF = true

	if err := tab.Write(header); err != nil {
		return fmt.Errorf("unable to write header: %v", err)
	}
	for _, r := range res.Records {
		row := []string{
			r.Triple[0],
			r.Triple[1],
			r.Triple[2],
			r.A.String(),
			r.B.String(),
		}
		if err := tab.Write(row); err != nil {
			return fmt.Errorf("when writing data: %v", err)
		}
	}

	tab.Flush()
	if err := tab.Error(); err != nil {
		return fmt.Errorf("when writing data: %v", err)
	}
	return nil
}
