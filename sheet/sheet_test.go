// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package sheet_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/js-arias/triplet/sheet"
)

func TestDocID(t *testing.T) {
	tests := map[string]struct {
		url  string
		want string
	}{
		"docs edit": {
			url:  "https://docs.google.com/spreadsheets/d/1AbCdEfGhIjKlMnOp/edit#gid=0",
			want: "1AbCdEfGhIjKlMnOp",
		},
		"docs plain": {
			url:  "https://docs.google.com/spreadsheets/d/1AbCdEfGhIjKlMnOp",
			want: "1AbCdEfGhIjKlMnOp",
		},
		"drive": {
			url:  "https://drive.google.com/open?id=0BxYz123456&authuser=0",
			want: "0BxYz123456",
		},
	}

	for name, test := range tests {
		got, err := sheet.DocID(test.url)
		if err != nil {
			t.Errorf("%s: unexpected error: %v", name, err)
			continue
		}
		if got != test.want {
			t.Errorf("%s: got %q, want %q", name, got, test.want)
		}
	}

	for _, u := range []string{
		"https://example.com/spreadsheets/d/1AbCdEfGhIjKlMnOp",
		"https://docs.google.com/spreadsheets/d/short",
		"",
	} {
		if _, err := sheet.DocID(u); !errors.Is(err, sheet.ErrDocID) {
			t.Errorf("url %q: got error %v, want %v", u, err, sheet.ErrDocID)
		}
	}
}

const queries = `label,first,second,third
q1,Homo sapiens,Pan troglodytes,Quercus robur
`

func TestDownload(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /spreadsheets/d/{id}/export", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("format") != "csv" || q.Get("gid") != "0" {
			http.Error(w, "bad export", http.StatusBadRequest)
			return
		}
		switch r.PathValue("id") {
		case "1AbCdEfGhIjKlMnOp":
			fmt.Fprint(w, queries)
		case "Empty123456":
		default:
			http.NotFound(w, r)
		}
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := &sheet.Client{URL: srv.URL, HTTP: srv.Client()}
	ctx := context.Background()

	got, err := c.Download(ctx, "1AbCdEfGhIjKlMnOp")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(got) != queries {
		t.Errorf("content: got %q, want %q", got, queries)
	}

	for _, id := range []string{"Unknown12345", "Empty123456"} {
		if _, err := c.Download(ctx, id); err == nil {
			t.Errorf("doc %q: expecting error", id)
		}
	}
}
