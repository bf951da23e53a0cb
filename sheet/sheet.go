// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package sheet downloads a shared Google spreadsheet
// as a CSV file.
package sheet

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
)

// DocsURL is the base URL of Google Docs.
const DocsURL = "https://docs.google.com"

// ErrDocID is returned when a document ID
// can not be extracted from an URL.
var ErrDocID = errors.New("document ID not found in URL")

// maxBody is the maximum size of a download.
const maxBody = 32 << 20

var (
	docPattern   = regexp.MustCompile(`^https://docs\.google\.com/spreadsheets.*/([0-9a-zA-Z]{10,120})/?`)
	drivePattern = regexp.MustCompile(`^https://drive\.google\.com.*id=([0-9a-zA-Z]+)[&]?.*`)
)

// DocID returns the document ID
// of a spreadsheet URL.
// It accepts both Google Docs
// and Google Drive links.
func DocID(u string) (string, error) {
	u = strings.TrimSpace(u)
	for _, p := range []*regexp.Regexp{docPattern, drivePattern} {
		if m := p.FindStringSubmatch(u); m != nil {
			return m[1], nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrDocID, u)
}

// A Client downloads spreadsheets.
type Client struct {
	// URL is the base URL of the service.
	// If empty, DocsURL is used.
	URL string

	UserAgent string
	HTTP      *http.Client
}

// Download returns the content of the first sheet
// of a spreadsheet
// exported as CSV.
func (c *Client) Download(ctx context.Context, docID string) ([]byte, error) {
	if docID == "" {
		return nil, fmt.Errorf("%w: empty ID", ErrDocID)
	}
	base := c.URL
	if base == "" {
		base = DocsURL
	}
	q := url.Values{}
	q.Set("gid", "0")
	q.Set("format", "csv")
	u := fmt.Sprintf("%s/spreadsheets/d/%s/export?%s", strings.TrimSuffix(base, "/"), url.PathEscape(docID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
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
		return nil, fmt.Errorf("spreadsheet %q: %v", docID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody))
	if err != nil {
		return nil, fmt.Errorf("spreadsheet %q: %v", docID, err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spreadsheet %q: HTTP %d", docID, resp.StatusCode)
	}
	if len(bytes.TrimSpace(body)) == 0 {
		return nil, fmt.Errorf("spreadsheet %q: empty content", docID)
	}
	return body, nil
}
