// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package opentree

import (
	"context"
	"errors"
	"fmt"

	"github.com/js-arias/triplet/config"
	"github.com/js-arias/triplet/induced"
	"github.com/js-arias/triplet/triple"
	"go.uber.org/zap"
)

// ErrSynonym is returned when two names of a triple
// are matched to the same taxon.
var ErrSynonym = errors.New("names matched to the same taxon")

// Oracle is an oracle
// that uses the Open Tree of Life synthetic tree.
type Oracle struct {
	Client *Client
	Logger *zap.Logger
}

// New returns an Open Tree oracle
// using the service defined in a configuration.
func New(cfg config.Config, logger *zap.Logger) *Oracle {
	return &Oracle{
		Client: NewClient(cfg.OpenTree, cfg.UserAgent),
		Logger: logger,
	}
}

// Name implements the oracle interface.
func (o *Oracle) Name() string {
	return "opentree"
}

// Outgroup implements the oracle interface.
func (o *Oracle) Outgroup(ctx context.Context, t triple.Triple) (int, error) {
	ids, tree, err := o.Induced(ctx, t)
	if err != nil {
		return 0, err
	}
	return induced.Classify(ids, tree)
}

// Induced returns the taxonomic IDs of a triple
// and its induced subtree.
func (o *Oracle) Induced(ctx context.Context, t triple.Triple) ([]int64, string, error) {
	logger := o.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	ids := make([]int64, 0, len(t))
	seen := make(map[int64]string, len(t))
	for _, n := range t {
		id, err := o.Client.MatchName(ctx, n)
		if err != nil {
			return nil, "", err
		}
		if p, ok := seen[id]; ok {
			return nil, "", fmt.Errorf("%w: %q and %q: ott%d", ErrSynonym, p, n, id)
		}
		seen[id] = n
		ids = append(ids, id)
		logger.Debug("name matched", zap.String("name", n), zap.Int64("ott", id))
	}

	tree, err := o.Client.InducedSubtree(ctx, ids)
	if err != nil {
		return nil, "", err
	}
	logger.Debug("induced subtree", zap.Int64s("ott", ids), zap.String("tree", tree))
	return ids, tree, nil
}
