// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package lineagecmd is a metapackage for commands
// that dealt with taxon lineages.
package lineagecmd

import (
	"github.com/js-arias/command"
	"github.com/js-arias/triplet/cmd/triplet/lineagecmd/add"
	"github.com/js-arias/triplet/cmd/triplet/lineagecmd/list"
)

var Command = &command.Command{
	Usage: "lineage <command> [<argument>...]",
	Short: "commands for taxon lineages",
}

func init() {
	Command.Add(add.Command)
	Command.Add(list.Command)
}
