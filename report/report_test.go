// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report_test

import (
	"bytes"
	"errors"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/js-arias/triplet/compare"
	"github.com/js-arias/triplet/outcome"
	"github.com/js-arias/triplet/report"
)

func newAggregator() *compare.Aggregator {
	ag := compare.New()
	ag.Add(outcome.Normalize(1, nil), outcome.Normalize(1, nil))
	ag.Add(outcome.Normalize(2, nil), outcome.Normalize(2, nil))
	ag.Add(outcome.Normalize(2, nil), outcome.Normalize(3, nil))
	ag.Add(outcome.Normalize(0, errors.New("fail")), outcome.Normalize(0, nil))
	ag.Skip()
	return ag
}

func TestText(t *testing.T) {
	ag := newAggregator()

	var w bytes.Buffer
	if err := report.Text(&w, ag, "OT", "wikipedia"); err != nil {
		t.Fatalf("unable to write report: %v", err)
	}
	t.Logf("output:\n%s\n", w.String())

	lines := strings.Split(strings.TrimSpace(w.String()), "\n")
	if len(lines) != 12 {
		t.Fatalf("lines: got %d, want %d", len(lines), 12)
	}

	want := []string{
		"# of queries where OT failed and wikipedia didn't know was: 1",
		"# of queries where OT reported a resolved tree and wikipedia reported a resolved tree was: 3",
		"# of queries where OT failed and wikipedia failed was: 0",
		"# of queries where both resolved the tree and they disagreed: 1",
		"# of queries where both resolved the tree and they agreed: 2",
		"# of queries skipped: 1",
	}
	for _, l := range want {
		if !strings.Contains(w.String(), l+"\n") {
			t.Errorf("missing line %q", l)
		}
	}
}

func TestAgreement(t *testing.T) {
	in := report.Agreement(compare.Counts{}, 0.95)
	if in.N != 0 || !math.IsNaN(in.Proportion) {
		t.Errorf("empty: got %+v", in)
	}
	if math.Abs(in.Low-0.025) > 1e-6 || math.Abs(in.High-0.975) > 1e-6 {
		t.Errorf("empty: interval: got %.6f-%.6f, want 0.025-0.975", in.Low, in.High)
	}

	in = report.Agreement(compare.Counts{Agreed: 80, Disagreed: 20}, 0.95)
	if in.N != 100 {
		t.Errorf("n: got %d, want %d", in.N, 100)
	}
	if math.Abs(in.Proportion-0.8) > 1e-9 {
		t.Errorf("proportion: got %.6f, want %.6f", in.Proportion, 0.8)
	}
	if !(in.Low < 0.8 && in.High > 0.8) {
		t.Errorf("interval %.6f-%.6f does not include %.6f", in.Low, in.High, 0.8)
	}
	if in.Low < 0.7 || in.High > 0.9 {
		t.Errorf("interval %.6f-%.6f too wide", in.Low, in.High)
	}

	var w bytes.Buffer
	if err := in.Write(&w); err != nil {
		t.Fatalf("unable to write interval: %v", err)
	}
	if !strings.HasPrefix(w.String(), "agreement: 0.8000 [95% CI: ") {
		t.Errorf("interval output: got %q", w.String())
	}
}

func TestPlot(t *testing.T) {
	name := filepath.Join(t.TempDir(), "outcomes.png")
	if err := report.Plot(name, newAggregator(), "OT", "wikipedia"); err != nil {
		t.Fatalf("unable to save plot: %v", err)
	}
	if st, err := os.Stat(name); err != nil || st.Size() == 0 {
		t.Errorf("plot file not written: %v", err)
	}
}
