// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/timetree"
	"github.com/js-arias/triplet/compare"
	"github.com/js-arias/triplet/config"
	"github.com/js-arias/triplet/lineage"
	"github.com/js-arias/triplet/triple"
	"go.uber.org/zap"
)

// Config reads the oracle configuration
// as defined in a project.
// If the configuration is not defined,
// it returns the default configuration.
func (p *Project) Config() (config.Config, error) {
	name := p.Path(Config)
	cfg, err := config.ReadFile(name)
	if err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// Lineages reads a lineage file
// as defined in a project.
func (p *Project) Lineages() (*lineage.Data, error) {
	name := p.Path(Lineages)
	if name == "" {
		return nil, fmt.Errorf("lineages not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	d, err := lineage.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return d, nil
}

// Queries reads the triples to be compared
// as defined in a project.
// The file can be a spreadsheet export (CSV)
// or a TSV file.
func (p *Project) Queries(logger *zap.Logger) ([]triple.Triple, error) {
	name := p.Path(Queries)
	if name == "" {
		return nil, fmt.Errorf("queries not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	ls, err := triple.Read(f, name, logger)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return ls, nil
}

// Results reads the outcomes of a comparison
// as defined in a project.
func (p *Project) Results() (*compare.Results, error) {
	name := p.Path(Results)
	if name == "" {
		return nil, fmt.Errorf("results not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	res, err := compare.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("on file %q: %v", name, err)
	}
	return res, nil
}

// Trees reads a tree collection file
// as defined in a project.
func (p *Project) Trees() (*timetree.Collection, error) {
	name := p.Path(Trees)
	if name == "" {
		return nil, fmt.Errorf("trees not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := timetree.ReadTSV(f)
	if err != nil {
		return nil, fmt.Errorf("while reading file %q: %v", name, err)
	}
	return c, nil
}
