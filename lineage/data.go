// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package lineage

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/js-arias/triplet/triple"
)

// ErrNotFound is returned when a taxon
// does not have a lineage.
var ErrNotFound = errors.New("lineage not found")

// Data is a collection of lineages
// associated with taxon names.
type Data struct {
	taxa map[string]*taxon
}

type taxon struct {
	name string
	ls   Lineage
}

// New creates a new empty dataset.
func New() *Data {
	return &Data{taxa: make(map[string]*taxon)}
}

// Set sets the lineage of a taxon.
// Any previous lineage of the taxon is replaced.
func (d *Data) Set(name string, ls Lineage) {
	name = canon(name)
	if name == "" {
		return
	}
	if len(ls) == 0 {
		delete(d.taxa, key(name))
		return
	}
	d.taxa[key(name)] = &taxon{
		name: name,
		ls:   slices.Clone(ls),
	}
}

// Add adds a rank at the tip
// of the lineage of a taxon.
func (d *Data) Add(name, rank string) {
	name = canon(name)
	if name == "" {
		return
	}
	rank = strings.TrimSpace(rank)
	if rank == "" {
		return
	}

	tx, ok := d.taxa[key(name)]
	if !ok {
		tx = &taxon{name: name}
		d.taxa[key(name)] = tx
	}
	tx.ls = append(tx.ls, rank)
}

// Lineage returns the lineage of a taxon.
func (d *Data) Lineage(name string) Lineage {
	tx, ok := d.taxa[key(canon(name))]
	if !ok {
		return nil
	}
	return slices.Clone(tx.ls)
}

// Taxa returns the names of the taxa
// with a defined lineage.
func (d *Data) Taxa() []string {
	ls := make([]string, 0, len(d.taxa))
	for _, tx := range d.taxa {
		ls = append(ls, tx.name)
	}
	slices.Sort(ls)
	return ls
}

// Name returns the name of the dataset
// when used as an oracle.
func (d *Data) Name() string {
	return "lineages"
}

// Outgroup returns the outgroup position of a triple
// using the stored lineages.
func (d *Data) Outgroup(ctx context.Context, t triple.Triple) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	var ls [3]Lineage
	for i, n := range t {
		l := d.Lineage(n)
		if len(l) == 0 {
			return 0, fmt.Errorf("%w: taxon %q", ErrNotFound, n)
		}
		ls[i] = l
	}
	return Classify(ls[0], ls[1], ls[2]), nil
}

func canon(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func key(name string) string {
	return strings.ToLower(name)
}
