// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package report

import (
	"fmt"

	"github.com/js-arias/blind"
	"github.com/js-arias/triplet/compare"
	"github.com/js-arias/triplet/outcome"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// Plot saves the outcome matrix
// as a grouped bar chart.
// Groups are the outcome classes of the first oracle,
// and bars in a group
// are the outcome classes of the second oracle.
// The format of the image is defined
// by the file extension.
func Plot(name string, ag *compare.Aggregator, nameA, nameB string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs. %s", nameA, nameB)
	p.X.Label.Text = nameA
	p.Y.Label.Text = "queries"

	w := vg.Points(12)
	m := ag.Matrix()
	classes := outcome.Classes()
	for i, b := range classes {
		vals := make(plotter.Values, 0, len(classes))
		for _, a := range classes {
			vals = append(vals, float64(m[a][b]))
		}

		bars, err := plotter.NewBarChart(vals, w)
		if err != nil {
			return fmt.Errorf("while building chart: %v", err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = blind.Sequential(blind.Iridescent, float64(i+1)/float64(len(classes)+1))
		bars.Offset = w * vg.Length(i-len(classes)/2)

		p.Add(bars)
		p.Legend.Add(fmt.Sprintf("%s %s", nameB, Label(b)), bars)
	}
	p.Legend.Top = true

	names := make([]string, 0, len(classes))
	for _, a := range classes {
		names = append(names, Label(a))
	}
	p.NominalX(names...)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, name); err != nil {
		return err
	}
	return nil
}
