// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Triplet is a tool to compare the phylogenetic relationships
// of triples of species
// as inferred by the Open Tree of Life
// and by the Wikipedia taxonomic classifications.
package main

import (
	"github.com/js-arias/command"
	"github.com/js-arias/triplet/cmd/triplet/cmpcmd"
	"github.com/js-arias/triplet/cmd/triplet/lineagecmd"
	"github.com/js-arias/triplet/cmd/triplet/otl"
	"github.com/js-arias/triplet/cmd/triplet/prj"
	"github.com/js-arias/triplet/cmd/triplet/query"
	"github.com/js-arias/triplet/cmd/triplet/reportcmd"
	"github.com/js-arias/triplet/cmd/triplet/sheetcmd"
	"github.com/js-arias/triplet/cmd/triplet/trees"
	"github.com/js-arias/triplet/cmd/triplet/wiki"
)

var app = &command.Command{
	Usage: "triplet <command> [<argument>...]",
	Short: "a tool to compare phylogenetic oracles on triples of species",
}

func init() {
	app.Add(cmpcmd.Command)
	app.Add(lineagecmd.Command)
	app.Add(otl.Command)
	app.Add(prj.Command)
	app.Add(query.Command)
	app.Add(reportcmd.Command)
	app.Add(sheetcmd.Command)
	app.Add(trees.Command)
	app.Add(wiki.Command)
}

func main() {
	app.Main()
}
