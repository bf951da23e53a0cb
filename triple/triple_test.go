// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package triple_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/triplet/triple"
)

func TestValidate(t *testing.T) {
	tests := map[string]struct {
		t    triple.Triple
		want error
	}{
		"distinct":   {triple.New("Alces alces", "Rattus norvegicus", "Meles meles"), nil},
		"duplicate":  {triple.New("Alces alces", "Rattus norvegicus", "Alces alces"), triple.ErrDuplicate},
		"case":       {triple.New("Alces alces", "alces  ALCES", "Meles meles"), triple.ErrDuplicate},
		"empty name": {triple.New("Alces alces", " ", "Meles meles"), triple.ErrEmpty},
	}

	for name, test := range tests {
		err := test.t.Validate()
		if test.want == nil {
			if err != nil {
				t.Errorf("%s: unexpected error: %v", name, err)
			}
			continue
		}
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got error %v, want %v", name, err, test.want)
		}
	}
}

func TestPos(t *testing.T) {
	tr := triple.New("Alces alces", "Rattus norvegicus", "Meles meles")
	if got := tr.Pos(2); got != "Rattus norvegicus" {
		t.Errorf("pos 2: got %q", got)
	}
	if got := tr.Pos(4); got != "" {
		t.Errorf("pos 4: got %q, want empty", got)
	}
}

func TestReadCSV(t *testing.T) {
	in := `query,first,second,third
q1,Alces alces,Rattus  norvegicus,Meles meles
short,row
q2,Homo sapiens,Pan troglodytes,Gorilla gorilla,extra
`
	got, err := triple.ReadCSV(strings.NewReader(in), nil)
	if err != nil {
		t.Fatalf("unable to read CSV data: %v", err)
	}

	want := []triple.Triple{
		{"Alces alces", "Rattus norvegicus", "Meles meles"},
		{"Homo sapiens", "Pan troglodytes", "Gorilla gorilla"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("triples mismatch (-want +got):\n%s", diff)
	}
}

func TestTSV(t *testing.T) {
	want := []triple.Triple{
		{"Alces alces", "Rattus norvegicus", "Meles meles"},
		{"Homo sapiens", "Pan troglodytes", "Gorilla gorilla"},
	}

	var w bytes.Buffer
	if err := triple.TSV(&w, want); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	got, err := triple.Read(strings.NewReader(w.String()), "queries.tab", nil)
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("triples mismatch (-want +got):\n%s", diff)
	}
}
