// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package lineage_test

import (
	"bytes"
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/js-arias/triplet/lineage"
	"github.com/js-arias/triplet/triple"
)

var alces = lineage.Lineage{
	"Eukaryota", "Unikonta", "Opisthokonta", "Holozoa", "Filozoa", "Animalia", "Eumetazoa",
	"Bilateria", "Nephrozoa", "Deuterostomia", "Chordata", "Craniata", "Vertebrata",
	"Gnathostomata", "Eugnathostomata", "Teleostomi", "Tetrapoda", "Reptiliomorpha", "Amniota",
	"Synapsida", ".....", "Mammaliaformes", "Mammalia", "Eutheria", "Placentalia", ".....",
	"Artiodactyla", "Cetruminantia", "Ruminantiamorpha", "Ruminantia", "Pecora", "Cervidae",
	"Capreolinae", "Alces",
}

var rattus = lineage.Lineage{"Animalia", "Chordata", "Mammalia", "Rodentia", "Muridae", "Rattus", "R. norvegicus"}

var meles = lineage.Lineage{"Animalia", "Chordata", "Mammalia", "Carnivora", "Mustelidae", "Meles", "M. meles"}

func TestLastShared(t *testing.T) {
	if got := lineage.LastShared(alces, rattus); got != 22 {
		t.Errorf("alces-rattus: got %d, want %d", got, 22)
	}
	if got := lineage.LastShared(rattus, meles); got != 2 {
		t.Errorf("rattus-meles: got %d, want %d", got, 2)
	}
	if got := lineage.LastShared(rattus, lineage.Lineage{"Plantae"}); got != -1 {
		t.Errorf("rattus-plantae: got %d, want %d", got, -1)
	}

	// placeholders are never a match
	x := lineage.Lineage{"Animalia", "....."}
	y := lineage.Lineage{"Animalia", "....."}
	if got := lineage.LastShared(x, y); got != 0 {
		t.Errorf("placeholder: got %d, want %d", got, 0)
	}
}

func TestClassify(t *testing.T) {
	mammal := lineage.Lineage{"Eukaryota", "Animalia", "Chordata", "Mammalia", "Primates", "Homo"}
	ape := lineage.Lineage{"Eukaryota", "Animalia", "Chordata", "Mammalia", "Primates", "Pan"}
	plant := lineage.Lineage{"Eukaryota", "Plantae", "Tracheophyta", "Magnoliopsida", "Quercus"}

	tests := map[string]struct {
		a, b, c lineage.Lineage
		want    int
	}{
		"third outgroup": {mammal, ape, plant, 3},
		"mammals and a plant": {
			lineage.Lineage{"Eukaryota", "Animalia", "Chordata", "Mammalia", "Rodentia"},
			lineage.Lineage{"Eukaryota", "Animalia", "Chordata", "Mammalia", "Carnivora"},
			lineage.Lineage{"Eukaryota", "Plantae"},
			3,
		},
		"second outgroup":    {mammal, plant, ape, 2},
		"first outgroup":     {plant, mammal, ape, 1},
		"moose, rat, badger": {alces, rattus, meles, 0},
		"rat, badger, moose": {rattus, meles, alces, 0},
		"all equal":          {plant, plant, plant, 0},
		"nothing shared": {
			lineage.Lineage{"Plantae"},
			lineage.Lineage{"Fungi"},
			lineage.Lineage{"Animalia"},
			0,
		},
		"placeholder shallow": {
			lineage.Lineage{"Animalia", ".....", "Mammalia"},
			lineage.Lineage{"Animalia", "....."},
			lineage.Lineage{"Animalia", "Mammalia"},
			2,
		},
		"tie, second frame, first outgroup": {
			lineage.Lineage{"Eukaryota", "Animalia"},
			lineage.Lineage{"Animalia", "Chordata", "Aves"},
			lineage.Lineage{"Eukaryota", "Animalia", "Chordata", "Aves"},
			1,
		},
		"tie, second frame, third outgroup": {
			lineage.Lineage{"Eukaryota", "Animalia"},
			lineage.Lineage{"Animalia", "Eukaryota"},
			lineage.Lineage{"Animalia"},
			3,
		},
	}

	for name, test := range tests {
		got := lineage.Classify(test.a, test.b, test.c)
		if got != test.want {
			t.Errorf("%s: got %d, want %d", name, got, test.want)
		}
	}
}

func TestData(t *testing.T) {
	d := newData()
	testData(t, "data", d)

	var w bytes.Buffer
	if err := d.TSV(&w); err != nil {
		t.Fatalf("unable to write TSV data: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	nd, err := lineage.ReadTSV(strings.NewReader(w.String()))
	if err != nil {
		t.Fatalf("unable to read TSV data: %v", err)
	}
	testData(t, "tsv", nd)
}

func TestOracle(t *testing.T) {
	d := newData()
	d.Set("Homo sapiens", lineage.Lineage{"Animalia", "Chordata", "Mammalia", "Primates", "Hominidae", "Homo"})

	got, err := d.Outgroup(context.Background(), triple.New("Homo sapiens", "Rattus norvegicus", "Meles meles"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != 0 {
		t.Errorf("outgroup: got %d, want %d", got, 0)
	}

	_, err = d.Outgroup(context.Background(), triple.New("Homo sapiens", "Rattus norvegicus", "Quercus robur"))
	if !errors.Is(err, lineage.ErrNotFound) {
		t.Errorf("missing taxon: got error %v, want %v", err, lineage.ErrNotFound)
	}
}

func newData() *lineage.Data {
	d := lineage.New()
	for _, r := range rattus {
		d.Add("Rattus norvegicus", r)
	}
	d.Set("Meles  meles", meles)
	return d
}

func testData(t testing.TB, name string, d *lineage.Data) {
	t.Helper()

	taxa := []string{"Meles meles", "Rattus norvegicus"}
	if g := d.Taxa(); !reflect.DeepEqual(g, taxa) {
		t.Errorf("%s: taxa: got %v, want %v", name, g, taxa)
	}

	if g := d.Lineage("rattus norvegicus"); !reflect.DeepEqual(g, rattus) {
		t.Errorf("%s: lineage of %q: got %v, want %v", name, "Rattus norvegicus", g, rattus)
	}
	if g := d.Lineage("Meles meles"); !reflect.DeepEqual(g, meles) {
		t.Errorf("%s: lineage of %q: got %v, want %v", name, "Meles meles", g, meles)
	}
}
