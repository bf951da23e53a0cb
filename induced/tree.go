// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package induced

import (
	"fmt"

	"github.com/js-arias/timetree"
	"github.com/js-arias/triplet/triple"
)

// Unit is the branch length used
// when building trees of a triple.
// Induced trees do not have branch lengths,
// so the age of a node is just its depth
// measured in millions of years.
const Unit = 1_000_000

// Tree returns a time tree
// for a classified triple.
// If outgroup is 0,
// the tree is a polytomy of the three taxa;
// otherwise the taxon at the outgroup position
// is the sister of the other two.
//
// Terminals are at the present,
// and internal nodes are separated by a Unit.
func Tree(name string, t triple.Triple, outgroup int) (*timetree.Tree, error) {
	if outgroup < 0 || outgroup > len(t) {
		return nil, fmt.Errorf("tree %q: invalid outgroup %d", name, outgroup)
	}

	if outgroup == 0 {
		tr := timetree.New(name, Unit)
		for _, n := range t {
			if _, err := tr.Add(0, Unit, n); err != nil {
				return nil, fmt.Errorf("tree %q: %v", name, err)
			}
		}
		return tr, nil
	}

	tr := timetree.New(name, 2*Unit)
	if _, err := tr.Add(0, 2*Unit, t.Pos(outgroup)); err != nil {
		return nil, fmt.Errorf("tree %q: %v", name, err)
	}
	in, err := tr.Add(0, Unit, "")
	if err != nil {
		return nil, fmt.Errorf("tree %q: %v", name, err)
	}
	for i, n := range t {
		if i+1 == outgroup {
			continue
		}
		if _, err := tr.Add(in, Unit, n); err != nil {
			return nil, fmt.Errorf("tree %q: %v", name, err)
		}
	}
	return tr, nil
}

// Outgroup returns the name of the outgroup
// of a tree of three terminals.
// It returns an empty string
// if the tree is a polytomy.
func Outgroup(t *timetree.Tree) (string, error) {
	if terms := t.Terms(); len(terms) != 3 {
		return "", fmt.Errorf("tree %q: %w: %d terminals", t.Name(), ErrContract, len(terms))
	}

	root := t.Root()
	children := t.Children(root)
	switch len(children) {
	case 3:
		return "", nil
	case 2:
	default:
		return "", fmt.Errorf("tree %q: %w: root with %d descendants", t.Name(), ErrMalformed, len(children))
	}

	for _, c := range children {
		if t.IsTerm(c) {
			return t.Taxon(c), nil
		}
	}
	return "", fmt.Errorf("tree %q: %w: root without terminal descendants", t.Name(), ErrMalformed)
}
