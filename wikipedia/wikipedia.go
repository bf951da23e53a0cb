// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package wikipedia implements a client
// that reads taxonomic classifications
// from Wikipedia pages,
// and an oracle that compares the classifications
// to infer the outgroup of a triple.
package wikipedia

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/js-arias/triplet/config"
	"github.com/js-arias/triplet/lineage"
	"github.com/js-arias/triplet/triple"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// ErrNoHit is returned when a search
// does not find any page.
var ErrNoHit = errors.New("no Wikipedia page found")

// ErrSamePage is returned when two names
// of a triple are found in the same page.
var ErrSamePage = errors.New("names found in the same page")

// maxBody is the maximum size of a response.
const maxBody = 8 << 20

// A Client is a client of the Wikipedia API.
type Client struct {
	// URL is the base URL of the wiki,
	// for example "https://en.wikipedia.org".
	URL string

	UserAgent string
	HTTP      *http.Client

	// Limiter limits the rate of requests.
	// If nil, there is no limit.
	Limiter *rate.Limiter

	Logger *zap.Logger
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

type searchResponse struct {
	Query struct {
		Search []struct {
			Title string `json:"title"`
		} `json:"search"`
	} `json:"query"`
}

// Search returns the title of the first page
// found for a name.
func (c *Client) Search(ctx context.Context, name string) (string, error) {
	q := url.Values{}
	q.Set("action", "query")
	q.Set("list", "search")
	q.Set("srsearch", name)
	q.Set("srlimit", "10")
	q.Set("format", "json")

	var resp searchResponse
	if err := c.getJSON(ctx, "/w/api.php?"+q.Encode(), &resp); err != nil {
		return "", fmt.Errorf("search %q: %v", name, err)
	}
	hits := resp.Query.Search
	if len(hits) == 0 {
		return "", fmt.Errorf("%w: %q", ErrNoHit, name)
	}
	if len(hits) > 1 {
		c.logger().Debug("using first search hit",
			zap.String("name", name),
			zap.Int("hits", len(hits)),
			zap.String("page", hits[0].Title),
		)
	}
	return hits[0].Title, nil
}

type parseResponse struct {
	Parse struct {
		Title string `json:"title"`
		Text  string `json:"text"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// PageHTML returns the HTML content of a page.
func (c *Client) PageHTML(ctx context.Context, title string) (string, error) {
	q := url.Values{}
	q.Set("action", "parse")
	q.Set("page", title)
	q.Set("prop", "text")
	q.Set("redirects", "1")
	q.Set("format", "json")
	q.Set("formatversion", "2")

	var resp parseResponse
	if err := c.getJSON(ctx, "/w/api.php?"+q.Encode(), &resp); err != nil {
		return "", fmt.Errorf("page %q: %v", title, err)
	}
	if resp.Error != nil {
		return "", fmt.Errorf("page %q: %s: %s", title, resp.Error.Code, resp.Error.Info)
	}
	return resp.Parse.Text, nil
}

// Lineage returns the classification
// in the taxonomic infobox of a page.
func (c *Client) Lineage(ctx context.Context, title string) (lineage.Lineage, error) {
	page, err := c.PageHTML(ctx, title)
	if err != nil {
		return nil, err
	}
	ls, tmpl, err := ParsePage(strings.NewReader(page))
	if err != nil {
		return nil, fmt.Errorf("page %q: %w", title, err)
	}
	if tmpl == "" {
		return ls, nil
	}

	c.logger().Debug("reading taxonomy template", zap.String("page", title), zap.String("template", tmpl))
	body, err := c.get(ctx, tmpl)
	if err != nil {
		return nil, fmt.Errorf("page %q: template %q: %v", title, tmpl, err)
	}
	ls, err = ParseTemplate(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("page %q: template %q: %w", title, tmpl, err)
	}
	return ls, nil
}

func (c *Client) getJSON(ctx context.Context, path string, v any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("while decoding response: %v", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if c.Limiter != nil {
		if err := c.Limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL+path, nil)
	if err != nil {
		return nil, err
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	hc := c.HTTP
	if hc == nil {
		hc = http.DefaultClient
	}
	resp, err := hc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("HTTP %d", resp.StatusCode)
	}
	return body, nil
}

func (c *Client) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// Oracle is an oracle
// that uses the taxonomic classification
// of Wikipedia pages.
type Oracle struct {
	Client *Client

	// Cache stores the lineages
	// of the already visited pages.
	// If nil,
	// the pages are always read.
	Cache *lineage.Data

	mu sync.Mutex
}

// New returns a Wikipedia oracle
// using the service defined in a configuration.
func New(cfg config.Config, logger *zap.Logger, cache *lineage.Data) *Oracle {
	c := NewClient(cfg.Wikipedia, cfg.UserAgent)
	c.Logger = logger
	return &Oracle{
		Client: c,
		Cache:  cache,
	}
}

// Name implements the oracle interface.
func (o *Oracle) Name() string {
	return "wikipedia"
}

// Outgroup implements the oracle interface.
func (o *Oracle) Outgroup(ctx context.Context, t triple.Triple) (int, error) {
	var titles [3]string
	seen := make(map[string]string, len(t))
	for i, n := range t {
		title, err := o.Client.Search(ctx, n)
		if err != nil {
			return 0, err
		}
		if p, ok := seen[title]; ok {
			return 0, fmt.Errorf("%w: %q and %q: page %q", ErrSamePage, p, n, title)
		}
		seen[title] = n
		titles[i] = title
	}

	var ls [3]lineage.Lineage
	for i, title := range titles {
		l, err := o.lineage(ctx, title)
		if err != nil {
			return 0, err
		}
		ls[i] = l
	}
	return lineage.Classify(ls[0], ls[1], ls[2]), nil
}

func (o *Oracle) lineage(ctx context.Context, title string) (lineage.Lineage, error) {
	if o.Cache != nil {
		o.mu.Lock()
		l := o.Cache.Lineage(title)
		o.mu.Unlock()
		if len(l) > 0 {
			return l, nil
		}
	}

	l, err := o.Client.Lineage(ctx, title)
	if err != nil {
		return nil, err
	}
	if o.Cache != nil {
		o.mu.Lock()
		o.Cache.Set(title, l)
		o.mu.Unlock()
	}
	return l, nil
}
