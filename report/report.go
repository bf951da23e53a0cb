// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package report implements summaries
// of the comparison between two oracles.
package report

import (
	"bufio"
	"fmt"
	"io"
	"math"

	"github.com/js-arias/triplet/compare"
	"github.com/js-arias/triplet/outcome"
	"gonum.org/v1/gonum/stat/distuv"
)

var labels = map[outcome.Class]string{
	outcome.Failed:     "failed",
	outcome.Unresolved: "didn't know",
	outcome.Resolved:   "reported a resolved tree",
}

// Label returns a human readable description
// of an outcome class.
func Label(c outcome.Class) string {
	return labels[c]
}

// Text writes the outcome matrix
// and the agreement counts
// of a comparison.
func Text(w io.Writer, ag *compare.Aggregator, nameA, nameB string) error {
	bw := bufio.NewWriter(w)

	m := ag.Matrix()
	for _, a := range outcome.Classes() {
		for _, b := range outcome.Classes() {
			fmt.Fprintf(bw, "# of queries where %s %s and %s %s was: %d\n", nameA, Label(a), nameB, Label(b), m[a][b])
		}
	}

	c := ag.Counts()
	fmt.Fprintf(bw, "# of queries where both resolved the tree and they disagreed: %d\n", c.Disagreed)
	fmt.Fprintf(bw, "# of queries where both resolved the tree and they agreed: %d\n", c.Agreed)
	if c.Skipped > 0 {
		fmt.Fprintf(bw, "# of queries skipped: %d\n", c.Skipped)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("while writing report: %v", err)
	}
	return nil
}

// An Interval is the proportion of agreements
// among the triples resolved by both oracles,
// with a credible interval.
type Interval struct {
	// Number of triples resolved by both oracles.
	N int

	// Observed proportion of agreements.
	// It is NaN if N is zero.
	Proportion float64

	Level float64
	Low   float64
	High  float64
}

// Agreement returns the proportion of agreements
// and its equal-tailed credible interval
// at the given level (for example 0.95),
// using a Beta posterior with a uniform prior.
func Agreement(c compare.Counts, level float64) Interval {
	n := c.Agreed + c.Disagreed
	p := math.NaN()
	if n > 0 {
		p = float64(c.Agreed) / float64(n)
	}

	post := distuv.Beta{
		Alpha: float64(c.Agreed) + 1,
		Beta:  float64(c.Disagreed) + 1,
	}
	tail := (1 - level) / 2
	return Interval{
		N:          n,
		Proportion: p,
		Level:      level,
		Low:        post.Quantile(tail),
		High:       post.Quantile(1 - tail),
	}
}

// Write writes an agreement interval.
func (in Interval) Write(w io.Writer) error {
	if in.N == 0 {
		_, err := fmt.Fprintf(w, "agreement: no triple resolved by both oracles\n")
		return err
	}
	_, err := fmt.Fprintf(w, "agreement: %.4f [%.0f%% CI: %.4f-%.4f] on %d triples\n", in.Proportion, in.Level*100, in.Low, in.High, in.N)
	return err
}
