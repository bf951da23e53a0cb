// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package induced implements the classification
// of induced subtrees of three taxa.
//
// An induced subtree is the minimal tree
// over a set of requested terminals
// extracted from a reference phylogeny.
// The trees are expected in parenthetical (Newick) format
// with terminals labeled by their taxonomic ID,
// as in "(ott30,(ott10,ott20)mrcaott10ott20)ott93302;".
package induced

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Prefix is the label prefix
// of the terminals in an induced tree.
const Prefix = "ott"

// ErrMalformed is returned
// when the tree string has an unexpected structure.
var ErrMalformed = errors.New("malformed induced tree")

// ErrContract is returned
// when the tree is well formed,
// but it does not correspond to the requested IDs.
var ErrContract = errors.New("induced tree does not match the requested IDs")

var sisterPair = regexp.MustCompile(`\(\s*` + Prefix + `([0-9]+)\s*,\s*` + Prefix + `([0-9]+)\s*\)`)

// Classify returns the 1-based position
// of the outgroup in ids,
// using an induced tree.
// If the tree is a polytomy,
// it returns 0.
func Classify(ids []int64, tree string) (int, error) {
	if len(ids) != 3 {
		return 0, fmt.Errorf("%w: expecting 3 IDs, got %d", ErrContract, len(ids))
	}

	open := strings.Count(tree, "(")
	if cl := strings.Count(tree, ")"); cl != open {
		return 0, fmt.Errorf("%w: tree %q: unbalanced parenthesis", ErrMalformed, tree)
	}

	switch open {
	case 1:
		return 0, nil
	case 2:
	default:
		return 0, fmt.Errorf("%w: tree %q: %d groups in a tree of three terminals", ErrMalformed, tree, open)
	}

	m := sisterPair.FindStringSubmatch(tree)
	if m == nil {
		return 0, fmt.Errorf("%w: tree %q: sister pair not found", ErrMalformed, tree)
	}
	one, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: tree %q: %v", ErrMalformed, tree, err)
	}
	other, err := strconv.ParseInt(m[2], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: tree %q: %v", ErrMalformed, tree, err)
	}

	out := 0
	var hasOne, hasOther bool
	for i, id := range ids {
		switch id {
		case one:
			hasOne = true
			continue
		case other:
			hasOther = true
			continue
		}
		if out != 0 {
			return 0, contractErr(ids, one, other, tree)
		}
		out = i + 1
	}
	if out == 0 || one == other || !hasOne || !hasOther {
		return 0, contractErr(ids, one, other, tree)
	}
	return out, nil
}

func contractErr(ids []int64, one, other int64, tree string) error {
	return fmt.Errorf("%w: IDs %v: sister pair (%d,%d) of tree %q", ErrContract, ids, one, other, tree)
}
