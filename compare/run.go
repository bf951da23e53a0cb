// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package compare

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/js-arias/triplet/oracle"
	"github.com/js-arias/triplet/outcome"
	"github.com/js-arias/triplet/triple"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Options are the options of a comparison run.
type Options struct {
	// Timeout is the maximum time of a single oracle query.
	// If zero, there is no timeout.
	Timeout time.Duration

	// Workers is the number of triples
	// processed at the same time.
	// If zero, triples are processed one at a time.
	Workers int

	Logger *zap.Logger
}

// Run queries two oracles on a list of triples
// and returns the aggregated outcomes
// and the record of each processed triple
// in the input order.
//
// Triples with empty or repeated names are skipped
// before querying the oracles.
// A failure of an oracle on a triple
// is counted as a failed outcome,
// and it does not stop the run.
// If the context is canceled,
// the run stops,
// and it returns the outcomes of the triples
// already processed
// together with the context error.
func Run(ctx context.Context, ls []triple.Triple, a, b oracle.Oracle, opts Options) (*Aggregator, []Record, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	workers := opts.Workers
	if workers < 1 {
		workers = 1
	}

	ag := New()
	recs := make([]*Record, len(ls))
	var mu sync.Mutex

	var g errgroup.Group
	g.SetLimit(workers)
	for i, t := range ls {
		if ctx.Err() != nil {
			break
		}
		if err := t.Validate(); err != nil {
			logger.Warn("triple skipped",
				zap.Int("query", i+1),
				zap.Stringer("triple", t),
				zap.Error(err),
			)
			mu.Lock()
			ag.Skip()
			mu.Unlock()
			continue
		}

		g.Go(func() error {
			r := query(ctx, t, a, b, opts.Timeout, logger)
			if ctx.Err() != nil {
				return nil
			}
			mu.Lock()
			ag.Add(r.A, r.B)
			mu.Unlock()
			recs[i] = &r

			logger.Debug("triple compared",
				zap.Int("query", i+1),
				zap.Stringer("triple", t),
				zap.Stringer(a.Name(), r.A),
				zap.Stringer(b.Name(), r.B),
			)
			return nil
		})
	}
	g.Wait()

	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if r == nil {
			continue
		}
		out = append(out, *r)
	}
	return ag, out, ctx.Err()
}

// query asks both oracles about a triple.
// The oracles are queried at the same time.
func query(ctx context.Context, t triple.Triple, a, b oracle.Oracle, timeout time.Duration, logger *zap.Logger) Record {
	r := Record{Triple: t}

	var g errgroup.Group
	g.Go(func() error {
		r.A = ask(ctx, a, t, timeout, logger)
		return nil
	})
	g.Go(func() error {
		r.B = ask(ctx, b, t, timeout, logger)
		return nil
	})
	g.Wait()

	return r
}

type answer struct {
	code int
	err  error
}

// ask queries an oracle
// and returns the normalized outcome.
// The query is abandoned when the timeout is reached,
// even if the oracle ignores the context.
func ask(ctx context.Context, o oracle.Oracle, t triple.Triple, timeout time.Duration, logger *zap.Logger) outcome.Outcome {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	ch := make(chan answer, 1)
	go func() {
		code, err := o.Outgroup(ctx, t)
		ch <- answer{code: code, err: err}
	}()

	var out outcome.Outcome
	select {
	case a := <-ch:
		out = outcome.Normalize(a.code, a.err)
	case <-ctx.Done():
		out = outcome.Fail(fmt.Errorf("oracle %q: %w", o.Name(), ctx.Err()))
	}

	if out.Class != outcome.Failed {
		return out
	}
	if errors.Is(out.Err, outcome.ErrOutOfRange) {
		logger.Warn("oracle answer out of range",
			zap.String("oracle", o.Name()),
			zap.Stringer("triple", t),
			zap.Error(out.Err),
		)
		return out
	}
	logger.Info("oracle failed",
		zap.String("oracle", o.Name()),
		zap.Stringer("triple", t),
		zap.Error(out.Err),
	)
	return out
}
