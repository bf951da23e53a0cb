// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package wikipedia_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/js-arias/triplet/config"
	"github.com/js-arias/triplet/lineage"
	"github.com/js-arias/triplet/triple"
	"github.com/js-arias/triplet/wikipedia"
)

// infobox returns a taxonomic infobox.
// If template is not empty,
// the header links to the taxonomy template.
func infobox(title, template string, ranks ...string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "<div><p>%s</p>\n", title)
	sb.WriteString(`<table class="infobox biota" style="text-align: left;"><tbody>` + "\n")
	fmt.Fprintf(&sb, "<tr><th colspan=\"2\">%s</th></tr>\n", title)
	sb.WriteString(`<tr><td colspan="2"><img src="x.jpg"/></td></tr>` + "\n")
	sb.WriteString(`<tr><th colspan="2"><a href="/wiki/Taxonomy_(biology)">Scientific classification</a>`)
	if template != "" {
		fmt.Fprintf(&sb, ` <span class="plainlinks"><a href="%s%s">edit</a></span>`, wikipedia.TemplatePrefix, template)
	}
	sb.WriteString("</th></tr>\n")
	for _, r := range ranks {
		fmt.Fprintf(&sb, "<tr><td>Rank:</td><td><a href=\"/wiki/%s\">%s</a><sup>[1]</sup></td></tr>\n", r, r)
	}
	sb.WriteString(`<tr><th colspan="2">Binomial name</th></tr>` + "\n")
	sb.WriteString("</tbody></table></div>\n")
	return sb.String()
}

func template(ranks ...string) string {
	var sb strings.Builder
	sb.WriteString("<html><body>\n")
	sb.WriteString(`<table class="infobox biota"><tbody>` + "\n")
	sb.WriteString(`<tr><th colspan="2">Ancestral taxa</th></tr>` + "\n")
	for _, r := range ranks {
		fmt.Fprintf(&sb, "<tr><td>Rank:</td><td>%s</td></tr>\n", r)
	}
	sb.WriteString("</tbody></table></body></html>\n")
	return sb.String()
}

var pages = map[string]string{
	"Moose": infobox("Moose", "",
		"Eukaryota", "Animalia", "Chordata", "Mammalia", "Artiodactyla", "Cervidae", "Alces", "A. alces"),
	"Black rat": infobox("Black rat", "",
		"Eukaryota", "Animalia", "Chordata", "Mammalia", "Rodentia", "Muridae", "Rattus", "R. rattus"),
	"European badger": infobox("European badger", "Meles"),
	"Quercus robur": infobox("Quercus robur", "",
		"Eukaryota", "Plantae", "Tracheophyta", ".....", "Fagales", "Fagaceae", "Quercus", "Q. robur"),
	"Mycena": "<div><p>A genus without an infobox</p></div>",
}

var search = map[string]string{
	"alces alces":      "Moose",
	"moose":            "Moose",
	"rattus rattus":    "Black rat",
	"meles meles":      "European badger",
	"quercus robur":    "Quercus robur",
	"mycena":           "Mycena",
	"missing page":     "Missing page",
	"template missing": "Template missing",
}

func newServer(t testing.TB) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /w/api.php", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		switch q.Get("action") {
		case "query":
			var hits []map[string]string
			if title, ok := search[strings.ToLower(q.Get("srsearch"))]; ok {
				hits = append(hits, map[string]string{"title": title})
			}
			json.NewEncoder(w).Encode(map[string]any{
				"query": map[string]any{"search": hits},
			})
		case "parse":
			title := q.Get("page")
			if title == "Template missing" {
				json.NewEncoder(w).Encode(map[string]any{
					"parse": map[string]string{"title": title, "text": infobox(title, "Missing")},
				})
				return
			}
			text, ok := pages[title]
			if !ok {
				json.NewEncoder(w).Encode(map[string]any{
					"error": map[string]string{"code": "missingtitle", "info": "The page you specified doesn't exist."},
				})
				return
			}
			json.NewEncoder(w).Encode(map[string]any{
				"parse": map[string]string{"title": title, "text": text},
			})
		default:
			http.Error(w, "unknown action", http.StatusBadRequest)
		}
	})
	mux.HandleFunc("GET /wiki/Template:Taxonomy/Meles", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, template("Eukaryota", "Animalia", "Chordata", "Mammalia", "Carnivora", "Mustelidae", "Meles"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newClient(srv *httptest.Server) *wikipedia.Client {
	c := wikipedia.NewClient(config.Service{URL: srv.URL + "/"}, "triplet-test")
	c.HTTP = srv.Client()
	return c
}

func TestParsePage(t *testing.T) {
	ls, tmpl, err := wikipedia.ParsePage(strings.NewReader(pages["Quercus robur"]))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tmpl != "" {
		t.Errorf("template: got %q, want empty", tmpl)
	}
	want := lineage.Lineage{"Eukaryota", "Plantae", "Tracheophyta", "Fagales", "Fagaceae", "Quercus", "Q. robur"}
	if diff := cmp.Diff(want, ls); diff != "" {
		t.Errorf("lineage mismatch (-want +got):\n%s", diff)
	}

	_, tmpl, err = wikipedia.ParsePage(strings.NewReader(pages["European badger"]))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if want := wikipedia.TemplatePrefix + "Meles"; tmpl != want {
		t.Errorf("template: got %q, want %q", tmpl, want)
	}

	if _, _, err := wikipedia.ParsePage(strings.NewReader(pages["Mycena"])); !errors.Is(err, wikipedia.ErrInfobox) {
		t.Errorf("no infobox: got error %v, want %v", err, wikipedia.ErrInfobox)
	}

	double := pages["Moose"] + pages["Black rat"]
	if _, _, err := wikipedia.ParsePage(strings.NewReader(double)); !errors.Is(err, wikipedia.ErrInfobox) {
		t.Errorf("two infoboxes: got error %v, want %v", err, wikipedia.ErrInfobox)
	}
}

func TestLineage(t *testing.T) {
	srv := newServer(t)
	c := newClient(srv)
	ctx := context.Background()

	title, err := c.Search(ctx, "Meles meles")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "European badger" {
		t.Errorf("search: got %q, want %q", title, "European badger")
	}

	ls, err := c.Lineage(ctx, title)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := lineage.Lineage{"Eukaryota", "Animalia", "Chordata", "Mammalia", "Carnivora", "Mustelidae", "Meles"}
	if diff := cmp.Diff(want, ls); diff != "" {
		t.Errorf("lineage mismatch (-want +got):\n%s", diff)
	}

	if _, err := c.Search(ctx, "Nonexistent"); !errors.Is(err, wikipedia.ErrNoHit) {
		t.Errorf("search: got error %v, want %v", err, wikipedia.ErrNoHit)
	}
	if _, err := c.Lineage(ctx, "Missing page"); err == nil {
		t.Errorf("missing page: expecting error")
	}
	if _, err := c.Lineage(ctx, "Template missing"); err == nil {
		t.Errorf("missing template: expecting error")
	}
}

func TestOracle(t *testing.T) {
	srv := newServer(t)
	cache := lineage.New()
	o := &wikipedia.Oracle{
		Client: newClient(srv),
		Cache:  cache,
	}
	ctx := context.Background()

	tests := map[string]struct {
		t    triple.Triple
		want int
	}{
		"plant outgroup":   {triple.New("Alces alces", "Rattus rattus", "Quercus robur"), 3},
		"plant first":      {triple.New("Quercus robur", "Alces alces", "Meles meles"), 1},
		"mammals":          {triple.New("Alces alces", "Rattus rattus", "Meles meles"), 0},
		"plant in between": {triple.New("Meles meles", "Quercus robur", "Rattus rattus"), 2},
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

	if got := cache.Taxa(); len(got) != 4 {
		t.Errorf("cache: got %d taxa %v, want %d", len(got), got, 4)
	}

	_, err := o.Outgroup(ctx, triple.New("Alces alces", "Moose", "Quercus robur"))
	if !errors.Is(err, wikipedia.ErrSamePage) {
		t.Errorf("same page: got error %v, want %v", err, wikipedia.ErrSamePage)
	}
	_, err = o.Outgroup(ctx, triple.New("Alces alces", "Mycena", "Quercus robur"))
	if !errors.Is(err, wikipedia.ErrInfobox) {
		t.Errorf("no infobox: got error %v, want %v", err, wikipedia.ErrInfobox)
	}
}
