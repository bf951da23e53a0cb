// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package oracle defines the interface
// for sources of phylogenetic inference
// on species triples.
package oracle

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"github.com/js-arias/triplet/triple"
)

// An Oracle infers the outgroup of a triple.
//
// Outgroup returns the 1-based position of the outgroup,
// or 0 if the oracle knows the triple
// but it is unable to resolve it.
// Any problem in the query is returned as an error.
type Oracle interface {
	// Name returns a short name of the oracle
	// used in reports.
	Name() string

	Outgroup(ctx context.Context, t triple.Triple) (int, error)
}

// Func is a function used as an oracle.
type Func struct {
	Label string
	Fn    func(ctx context.Context, t triple.Triple) (int, error)
}

// Name implements the Oracle interface.
func (f Func) Name() string {
	return f.Label
}

// Outgroup implements the Oracle interface.
func (f Func) Outgroup(ctx context.Context, t triple.Triple) (int, error) {
	return f.Fn(ctx, t)
}

// Exec is an oracle implemented by an external program.
//
// The program is called with the given arguments
// followed by the three names of the triple,
// and it must print the outgroup code
// in the standard output.
// A non-zero exit status is an oracle failure.
type Exec struct {
	Label string
	Path  string
	Args  []string

	// Env is added to the environment of the process.
	Env []string
}

// Name implements the Oracle interface.
func (e Exec) Name() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Path
}

// Outgroup implements the Oracle interface.
func (e Exec) Outgroup(ctx context.Context, t triple.Triple) (int, error) {
	args := append([]string{}, e.Args...)
	args = append(args, t[:]...)

	cmd := exec.CommandContext(ctx, e.Path, args...)
	if len(e.Env) > 0 {
		cmd.Env = append(cmd.Environ(), e.Env...)
	}
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return 0, fmt.Errorf("oracle %q: %v: %s", e.Name(), err, msg)
		}
		return 0, fmt.Errorf("oracle %q: %v", e.Name(), err)
	}

	v, err := strconv.Atoi(strings.TrimSpace(string(out)))
	if err != nil {
		return 0, fmt.Errorf("oracle %q: invalid output: %v", e.Name(), err)
	}
	return v, nil
}
