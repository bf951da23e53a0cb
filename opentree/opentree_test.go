// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package opentree_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/js-arias/triplet/config"
	"github.com/js-arias/triplet/induced"
	"github.com/js-arias/triplet/opentree"
	"github.com/js-arias/triplet/triple"
)

var taxonomy = map[string]int64{
	"Homo sapiens":    770315,
	"Pan troglodytes": 417950,
	"Quercus robur":   791115,
	"Gorilla gorilla": 417965,
	"Homo":            770315,
}

func newServer(t testing.TB) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v3/tnrs/match_names", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Names []string `json:"names"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		name := req.Names[0]

		type taxon struct {
			OttID int64  `json:"ott_id"`
			Name  string `json:"name"`
		}
		type match struct {
			Taxon taxon `json:"taxon"`
		}
		type result struct {
			Name    string  `json:"name"`
			Matches []match `json:"matches"`
		}
		resp := struct {
			Unambiguous []string `json:"unambiguous_names"`
			Results     []result `json:"results"`
		}{}

		if id, ok := taxonomy[name]; ok {
			resp.Unambiguous = []string{name}
			resp.Results = []result{{Name: name, Matches: []match{{Taxon: taxon{OttID: id, Name: name}}}}}
		}
		if name == "Twofold" {
			resp.Unambiguous = []string{name}
			resp.Results = []result{{Name: name, Matches: []match{{}, {}}}}
		}
		json.NewEncoder(w).Encode(resp)
	})
	mux.HandleFunc("POST /v3/tree_of_life/induced_subtree", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			IDs    []int64 `json:"ott_ids"`
			Format string  `json:"label_format"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Format != "id" {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		ids := req.IDs
		var tree string
		switch {
		case ids[2] == 791115:
			tree = fmt.Sprintf("(ott%d,(ott%d,ott%d)mrcaott%dott%d)ott2759;", ids[2], ids[0], ids[1], ids[0], ids[1])
		case ids[0] == 791115:
			tree = fmt.Sprintf("((ott%d,ott%d),ott%d)ott2759;", ids[1], ids[2], ids[0])
		default:
			tree = fmt.Sprintf("(ott%d,ott%d,ott%d)ott312031;", ids[0], ids[1], ids[2])
		}
		json.NewEncoder(w).Encode(map[string]string{"newick": tree})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newOracle(srv *httptest.Server) *opentree.Oracle {
	c := opentree.NewClient(config.Service{URL: srv.URL + "/v3/", Rate: 100}, "triplet-test")
	c.HTTP = srv.Client()
	return &opentree.Oracle{Client: c}
}

func TestMatchName(t *testing.T) {
	srv := newServer(t)
	o := newOracle(srv)
	ctx := context.Background()

	id, err := o.Client.MatchName(ctx, "Homo sapiens")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if id != 770315 {
		t.Errorf("ott id: got %d, want %d", id, 770315)
	}

	for _, n := range []string{"Nonexistent", "Twofold"} {
		if _, err := o.Client.MatchName(ctx, n); !errors.Is(err, opentree.ErrName) {
			t.Errorf("name %q: got error %v, want %v", n, err, opentree.ErrName)
		}
	}
}

func TestOracle(t *testing.T) {
	srv := newServer(t)
	o := newOracle(srv)
	ctx := context.Background()

	tests := map[string]struct {
		t    triple.Triple
		want int
	}{
		"oak outgroup third": {triple.New("Homo sapiens", "Pan troglodytes", "Quercus robur"), 3},
		"oak outgroup first": {triple.New("Quercus robur", "Homo sapiens", "Pan troglodytes"), 1},
		"great apes":         {triple.New("Homo sapiens", "Pan troglodytes", "Gorilla gorilla"), 0},
	}

	for name, test := range tests {
		got, err := o.Outgroup(ctx, test.t)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %d, want %d", name, got, test.want)
		}
	}

	ids, tree, err := o.Induced(ctx, triple.New("Homo sapiens", "Pan troglodytes", "Quercus robur"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if code, err := induced.Classify(ids, tree); err != nil || code != 3 {
		t.Errorf("induced tree %q: got %d, %v", tree, code, err)
	}
}

func TestOracleErrors(t *testing.T) {
	srv := newServer(t)
	o := newOracle(srv)
	ctx := context.Background()

	_, err := o.Outgroup(ctx, triple.New("Homo sapiens", "Pan troglodytes", "Nonexistent"))
	if !errors.Is(err, opentree.ErrName) {
		t.Errorf("unknown name: got error %v, want %v", err, opentree.ErrName)
	}

	_, err = o.Outgroup(ctx, triple.New("Homo sapiens", "Homo", "Quercus robur"))
	if !errors.Is(err, opentree.ErrSynonym) {
		t.Errorf("synonym: got error %v, want %v", err, opentree.ErrSynonym)
	}

	bad := opentree.NewClient(config.Service{URL: srv.URL + "/v2"}, "")
	bad.HTTP = srv.Client()
	if _, err := bad.MatchName(ctx, "Homo sapiens"); err == nil {
		t.Errorf("bad URL: expecting error")
	}
}
