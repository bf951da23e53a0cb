// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package outcome implements the tri-state result
// of an oracle query on a species triple.
//
// An oracle answers with an integer code:
// 0 when it can not resolve the triple,
// or the 1-based position of the outgroup.
// Any error in the query,
// or any other code,
// is a failure.
package outcome

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrOutOfRange is returned as the cause of a failure
// when an oracle reports a code outside the valid range.
var ErrOutOfRange = errors.New("oracle code out of range")

// Class is the class of an oracle outcome.
type Class int

// Valid outcome classes.
// The values are used as indices
// of the outcome matrix.
const (
	// The oracle was unable to answer.
	Failed Class = iota

	// The oracle answered,
	// but the triple is a polytomy.
	Unresolved

	// The oracle answered with an outgroup.
	Resolved
)

// NumClass is the number of outcome classes.
const NumClass = 3

// Classes returns the outcome classes
// in matrix order.
func Classes() []Class {
	return []Class{Failed, Unresolved, Resolved}
}

var classLabel = map[Class]string{
	Failed:     "failed",
	Unresolved: "unresolved",
	Resolved:   "resolved",
}

func (c Class) String() string {
	if s, ok := classLabel[c]; ok {
		return s
	}
	return fmt.Sprintf("class(%d)", int(c))
}

// An Outcome is the normalized answer
// of an oracle for a triple.
type Outcome struct {
	Class Class

	// Outgroup is the 1-based position
	// of the outgroup in the triple.
	// It is 0 if the outcome is not resolved.
	Outgroup int

	// Err is the cause of a failure.
	Err error
}

// Normalize converts the raw answer of an oracle
// into an outcome.
func Normalize(code int, err error) Outcome {
	if err != nil {
		return Outcome{Class: Failed, Err: err}
	}
	switch {
	case code == 0:
		return Outcome{Class: Unresolved}
	case code >= 1 && code <= 3:
		return Outcome{Class: Resolved, Outgroup: code}
	}
	return Outcome{
		Class: Failed,
		Err:   fmt.Errorf("%w: %d", ErrOutOfRange, code),
	}
}

// Fail returns a failed outcome
// with the given cause.
func Fail(err error) Outcome {
	return Outcome{Class: Failed, Err: err}
}

// String returns the outcome as used in result files:
// "failed", "unresolved",
// or the index of the outgroup.
func (o Outcome) String() string {
	if o.Class == Resolved {
		return strconv.Itoa(o.Outgroup)
	}
	return o.Class.String()
}

// Parse reads an outcome
// in the format produced by String.
func Parse(s string) (Outcome, error) {
	switch s {
	case "failed":
		return Outcome{Class: Failed}, nil
	case "unresolved":
		return Outcome{Class: Unresolved}, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return Outcome{}, fmt.Errorf("invalid outcome %q", s)
	}
	o := Normalize(v, nil)
	if o.Class != Resolved {
		return Outcome{}, fmt.Errorf("invalid outcome %q", s)
	}
	return o, nil
}
