// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package triple implements species triples,
// the queries compared by the oracles.
package triple

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicate is returned by Validate
// when a triple has repeated names.
var ErrDuplicate = errors.New("triple names are not distinct")

// ErrEmpty is returned by Validate
// when a triple has an empty name.
var ErrEmpty = errors.New("empty name in triple")

// A Triple is an ordered set of three species names.
// The position of each name is the argument order
// used to query the oracles.
type Triple [3]string

// New returns a triple
// with canonical names.
func New(first, second, third string) Triple {
	return Triple{canon(first), canon(second), canon(third)}
}

// Validate returns an error
// if the triple has an empty name
// or if two names are equal.
func (t Triple) Validate() error {
	seen := make(map[string]int, len(t))
	for i, n := range t {
		k := strings.ToLower(canon(n))
		if k == "" {
			return fmt.Errorf("%w: position %d", ErrEmpty, i+1)
		}
		if p, ok := seen[k]; ok {
			return fmt.Errorf("%w: %q at positions %d and %d", ErrDuplicate, n, p+1, i+1)
		}
		seen[k] = i
	}
	return nil
}

// Pos returns the name at the given 1-based position.
func (t Triple) Pos(i int) string {
	if i < 1 || i > len(t) {
		return ""
	}
	return t[i-1]
}

func (t Triple) String() string {
	return fmt.Sprintf("%q %q %q", t[0], t[1], t[2])
}

// canon returns a taxon name
// with its internal spaces collapsed.
func canon(name string) string {
	return strings.Join(strings.Fields(name), " ")
}
