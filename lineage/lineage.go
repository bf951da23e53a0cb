// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lineage implements root-to-tip classifications
// and their use to infer the outgroup
// of a triple of species.
package lineage

import "strings"

// A Lineage is an ordered list of taxonomic ranks
// from the root to the tip of a classification.
type Lineage []string

// IsPlaceholder returns true if a rank name
// is a marker of an elided or unknown rank
// (for example "....." in a Wikipedia infobox).
func IsPlaceholder(name string) bool {
	name = strings.TrimSpace(name)
	if name == "" {
		return true
	}
	if strings.HasPrefix(name, ".") || strings.HasPrefix(name, "…") {
		return true
	}
	return false
}

// LastShared returns the index in x
// of the deepest rank of x
// that is also found in y.
// Placeholder ranks are ignored.
// It returns -1 if no rank is shared.
func LastShared(x, y Lineage) int {
	in := make(map[string]bool, len(y))
	for _, r := range y {
		if IsPlaceholder(r) {
			continue
		}
		in[r] = true
	}

	last := -1
	for i, r := range x {
		if IsPlaceholder(r) {
			continue
		}
		if in[r] {
			last = i
		}
	}
	return last
}

// Classify returns the 1-based position of the outgroup
// of three lineages,
// using the depth of the deepest shared rank
// as a proxy of the recency of common ancestry.
// It returns 0 if the outgroup can not be determined.
//
// The lineage of the first taxon is used as reference.
// If the first taxon shares a deeper rank with the second taxon
// than with the third,
// the third is the outgroup,
// and if it is deeper with the third,
// the second is the outgroup.
// In case of a tie,
// the second taxon is used as reference:
// if it shares a deeper rank with the third taxon,
// the first is the outgroup,
// if it is deeper with the first,
// the third is the outgroup,
// otherwise the triple is unresolved.
func Classify(a, b, c Lineage) int {
	ab := LastShared(a, b)
	ac := LastShared(a, c)
	if ab > ac {
		return 3
	}
	if ab < ac {
		return 2
	}

	ba := LastShared(b, a)
	bc := LastShared(b, c)
	switch {
	case ba < bc:
		return 1
	case ba > bc:
		return 3
	}
	return 0
}
