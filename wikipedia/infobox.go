// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package wikipedia

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/js-arias/triplet/lineage"
	"golang.org/x/net/html"
)

// ErrInfobox is returned when a page
// does not have a usable taxonomic infobox.
var ErrInfobox = errors.New("taxonomic infobox not found")

// TemplatePrefix is the path prefix
// of the detailed taxonomy pages.
const TemplatePrefix = "/wiki/Template:Taxonomy/"

// ParsePage reads the classification
// from the taxonomic infobox of a Wikipedia page.
//
// If the header of the classification
// links to a detailed taxonomy template,
// the link is returned
// and the lineage must be read from that page.
func ParsePage(r io.Reader) (lineage.Lineage, string, error) {
	box, err := findInfobox(r)
	if err != nil {
		return nil, "", err
	}

	var ls lineage.Lineage
	header := false
	for _, row := range findAll(box, "tr") {
		if header {
			ls = appendRank(row, ls)
			continue
		}
		th := findFirst(row, "th")
		if th == nil {
			continue
		}
		for _, a := range findAll(th, "a") {
			if strings.ToLower(strings.TrimSpace(text(a))) == "scientific classification" {
				header = true
			}
			if href := attr(a, "href"); strings.HasPrefix(href, TemplatePrefix) {
				return nil, href, nil
			}
		}
	}

	if err := checkClassification(header, ls); err != nil {
		return nil, "", err
	}
	return ls, "", nil
}

// ParseTemplate reads the classification
// from a detailed taxonomy template page.
func ParseTemplate(r io.Reader) (lineage.Lineage, error) {
	box, err := findInfobox(r)
	if err != nil {
		return nil, err
	}

	var ls lineage.Lineage
	header := false
	for _, row := range findAll(box, "tr") {
		if header {
			ls = appendRank(row, ls)
			continue
		}
		if findFirst(row, "th") != nil {
			header = true
		}
	}

	if err := checkClassification(header, ls); err != nil {
		return nil, err
	}
	return ls, nil
}

func checkClassification(header bool, ls lineage.Lineage) error {
	if !header {
		return fmt.Errorf("%w: scientific classification header not found", ErrInfobox)
	}
	if len(ls) == 0 {
		return fmt.Errorf("%w: empty classification", ErrInfobox)
	}
	return nil
}

func findInfobox(r io.Reader) (*html.Node, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var boxes []*html.Node
	for _, t := range findAll(doc, "table") {
		if hasClass(t, "infobox") && hasClass(t, "biota") {
			boxes = append(boxes, t)
		}
	}
	if len(boxes) != 1 {
		return nil, fmt.Errorf("%w: found %d infobox tables", ErrInfobox, len(boxes))
	}
	return boxes[0], nil
}

// appendRank adds the taxon name
// of a two column row.
func appendRank(row *html.Node, ls lineage.Lineage) lineage.Lineage {
	var cells []*html.Node
	for c := row.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.Data == "td" {
			cells = append(cells, c)
		}
	}
	if len(cells) != 2 {
		return ls
	}

	name, _, _ := strings.Cut(text(cells[1]), "[")
	name = strings.Join(strings.Fields(name), " ")
	if name == "" || strings.HasPrefix(name, ".") {
		return ls
	}
	return append(ls, name)
}

func findAll(n *html.Node, tag string) []*html.Node {
	var ls []*html.Node
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			ls = append(ls, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		visit(c)
	}
	return ls
}

func findFirst(n *html.Node, tag string) *html.Node {
	ls := findAll(n, tag)
	if len(ls) == 0 {
		return nil
	}
	return ls[0]
}

func text(n *html.Node) string {
	var sb strings.Builder
	var visit func(*html.Node)
	visit = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			visit(c)
		}
	}
	visit(n)
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
