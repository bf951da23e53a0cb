// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package opentree implements a client
// for the Open Tree of Life web services,
// and an oracle that uses the induced subtree
// of the synthetic tree
// to infer the outgroup of a triple.
package opentree

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/js-arias/triplet/config"
	"golang.org/x/time/rate"
)

// ErrName is returned when a name
// can not be matched to a single taxon.
var ErrName = errors.New("name without a unique match")

// maxBody is the maximum size of a response.
const maxBody = 4 << 20

// A Client is a client of the Open Tree of Life services.
type Client struct {
	// URL is the base URL of the API,
	// for example "https://api.opentreeoflife.org/v3".
	URL string

	UserAgent string
	HTTP      *http.Client

	// Limiter limits the rate of requests.
	// If nil, there is no limit.
	Limiter *rate.Limiter
}

// NewClient returns a client
// configured with the given service.
func NewClient(svc config.Service, userAgent string) *Client {
	c := &Client{
		URL:       strings.TrimSuffix(svc.URL, "/"),
		UserAgent: userAgent,
		HTTP:      http.DefaultClient,
	}
	if svc.Rate > 0 {
		c.Limiter = rate.NewLimiter(rate.Limit(svc.Rate), 1)
	}
	return c
}

type matchRequest struct {
	Names []string `json:"names"`
}

type matchResponse struct {
	Unambiguous []string `json:"unambiguous_names"`
	Results     []struct {
		Name    string `json:"name"`
		Matches []struct {
			Taxon struct {
				OttID int64  `json:"ott_id"`
				Name  string `json:"name"`
			} `json:"taxon"`
		} `json:"matches"`
	} `json:"results"`
}

// MatchName returns the taxonomic ID (OTT ID)
// of a name.
// The name must be unambiguous
// and it must have a single match.
func (c *Client) MatchName(ctx context.Context, name string) (int64, error) {
	var resp matchResponse
	if err := c.post(ctx, "/tnrs/match_names", matchRequest{Names: []string{name}}, &resp); err != nil {
		return 0, fmt.Errorf("name %q: %v", name, err)
	}

	if len(resp.Unambiguous) != 1 || resp.Unambiguous[0] != name {
		return 0, fmt.Errorf("%w: name %q not found in the Open Tree taxonomy", ErrName, name)
	}
	if len(resp.Results) != 1 {
		return 0, fmt.Errorf("%w: found %d results for name %q", ErrName, len(resp.Results), name)
	}
	m := resp.Results[0].Matches
	if len(m) != 1 {
		return 0, fmt.Errorf("%w: found %d matches for name %q", ErrName, len(m), name)
	}
	return m[0].Taxon.OttID, nil
}

type inducedRequest struct {
	IDs    []int64 `json:"ott_ids"`
	Format string  `json:"label_format"`
}

type inducedResponse struct {
	Newick string `json:"newick"`
}

// InducedSubtree returns the induced subtree
// of the synthetic tree
// for a set of taxonomic IDs,
// with terminals labeled by their ID.
func (c *Client) InducedSubtree(ctx context.Context, ids []int64) (string, error) {
	var resp inducedResponse
	if err := c.post(ctx, "/tree_of_life/induced_subtree", inducedRequest{IDs: ids, Format: "id"}, &resp); err != nil {
		return "", fmt.Errorf("induced subtree of %v: %v", ids, err)
	}
	if resp.Newick == "" {
		return "", fmt.Errorf("induced subtree of %v: empty tree", ids)
	}
	return resp.Newick, nil
}

func (c *Client) post(ctx context.Context, path string, body, v any) error {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return err
		}
	}

	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.URL+path, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(data)))
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("while decoding response: %v", err)
	}
	return nil
}
