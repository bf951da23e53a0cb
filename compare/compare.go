// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package compare implements the comparison
// of two oracles on a batch of species triples.
package compare

import (
	"github.com/js-arias/triplet/outcome"
	"github.com/js-arias/triplet/triple"
)

// Matrix counts the triples
// by the outcome class of each oracle.
// The first index is the class of the first oracle,
// and the second index the class of the second oracle.
type Matrix [outcome.NumClass][outcome.NumClass]int

// Total returns the number of triples in the matrix.
func (m Matrix) Total() int {
	var sum int
	for _, r := range m {
		for _, v := range r {
			sum += v
		}
	}
	return sum
}

// Counts are the agreement counts
// between the oracles.
type Counts struct {
	// Triples resolved by both oracles
	// with the same outgroup.
	Agreed int

	// Triples resolved by both oracles
	// with a different outgroup.
	Disagreed int

	// Triples rejected before querying the oracles.
	Skipped int
}

// A Record is the result of a triple
// in a comparison.
type Record struct {
	Triple triple.Triple
	A      outcome.Outcome
	B      outcome.Outcome
}

// An Aggregator accumulates the outcomes
// of the oracles.
type Aggregator struct {
	m Matrix
	c Counts
}

// New returns a new empty aggregator.
func New() *Aggregator {
	return &Aggregator{}
}

// Add adds the outcomes of the oracles
// for a triple.
func (ag *Aggregator) Add(a, b outcome.Outcome) {
	ag.m[a.Class][b.Class]++
	if a.Class != outcome.Resolved || b.Class != outcome.Resolved {
		return
	}
	if a.Outgroup == b.Outgroup {
		ag.c.Agreed++
		return
	}
	ag.c.Disagreed++
}

// Skip counts a triple rejected before
// querying the oracles.
func (ag *Aggregator) Skip() {
	ag.c.Skipped++
}

// Matrix returns the outcome matrix.
func (ag *Aggregator) Matrix() Matrix {
	return ag.m
}

// Counts returns the agreement counts.
func (ag *Aggregator) Counts() Counts {
	return ag.c
}

// Total returns the number of triples
// added to the aggregator.
func (ag *Aggregator) Total() int {
	return ag.m.Total()
}

// FromRecords returns an aggregator
// with the outcomes of a list of records.
func FromRecords(recs []Record) *Aggregator {
	ag := New()
	for _, r := range recs {
		ag.Add(r.A, r.B)
	}
	return ag
}
