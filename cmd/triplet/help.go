// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(configGuide)
	app.Add(projectsGuide)
	app.Add(queryFilesGuide)
	app.Add(resultFilesGuide)
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
Triplet uses several files to read and store the data of a comparison. To
reduce the burden of keeping track of many files, a single project file is
used to hold the reference of all files used in the analysis. This guide
explains the structure of the file, but most of the time, the best and most
secure way to edit or view this file is by using triplet commands.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# triplet project files
	dataset	path
	config	oracles.yaml
	lineages	lineages.tab
	queries	queries.csv
	results	results.tab
	trees	induced-trees.tab

The valid file types are:

- Oracle configuration. Defined by the dataset keyword "config". This file
  is a YAML file with the addresses of the web services, the timeout of each
  query, and the number of queries per second. If it is not defined, the
  default values will be used. See 'triplet help config'.
- Lineages. Defined by the dataset keyword "lineages". This file contains the
  taxonomic classification of one or more taxa in the form of a tab-delimited
  file. The recommended way to add lineages is by using the command
  'triplet lineage add'.
- Queries. Defined by the dataset keyword "queries". This file contains the
  triples of species to be compared. It can be a CSV file exported from a
  spreadsheet, or a tab-delimited file. The recommended way to add a query
  file is by using the commands 'triplet query' or 'triplet sheet'. See
  'triplet help query-files'.
- Results. Defined by the dataset keyword "results". This file contains the
  outcome of each oracle for each triple of the last comparison. It is
  created by the command 'triplet compare'. See 'triplet help result-files'.
- Induced trees. Defined by the dataset keyword "trees". This file contains
  the trees of the triples resolved by the oracles in the form of a
  tab-delimited time tree file. It is created by the command
  'triplet compare' with the flag --trees.
	`,
}

var queryFilesGuide = &command.Command{
	Usage: "query-files",
	Short: "about query files",
	Long: `
A query file contains the triples of species that will be compared by the
oracles. The order of the names in a triple is the order used by the oracles,
and the outcome of an oracle is the position (1, 2, or 3) of the species that
is the outgroup of the other two.

Query files can be given in two formats.

If the file name ends in ".csv", the file is read as a spreadsheet export.
The first row with at least four columns is the header. In each row, the
first column is a label of the query, and the next three columns are the
names of the species. Rows with less than four columns are ignored. Here is
an example file:

	query,first,second,third
	q1,Alces alces,Rattus norvegicus,Meles meles
	q2,Homo sapiens,Pan troglodytes,Quercus robur

Any other file is read as a tab-delimited file, with the following fields:

	- first   the name of the first species
	- second  the name of the second species
	- third   the name of the third species

Here is an example file:

	first	second	third
	Alces alces	Rattus norvegicus	Meles meles
	Homo sapiens	Pan troglodytes	Quercus robur

A triple with an empty name, or with a name repeated (ignoring case and
spaces), is not compared and is reported as skipped.
	`,
}

var resultFilesGuide = &command.Command{
	Usage: "result-files",
	Short: "about result files",
	Long: `
A result file contains the outcome of two oracles on each triple of a
comparison. It is a tab-delimited file with the following fields:

	- first     the name of the first species
	- second    the name of the second species
	- third     the name of the third species
	- oracle-a  the outcome of the first oracle
	- oracle-b  the outcome of the second oracle

An outcome is "failed" if the oracle was unable to answer (for example, a
name was not found, or the query exceeded the timeout), "unresolved" if the
oracle answered but it was unable to determine the outgroup, or the position
(1, 2, or 3) of the outgroup.

The names of the oracles, separated by a tab, are stored in a comment before
the header. If some triples were not compared because they had an empty or
repeated name, their number is stored in another comment. Here is an example
file:

	# oracles: opentree	wikipedia
	# skipped: 1
	first	second	third	oracle-a	oracle-b
	Alces alces	Rattus norvegicus	Meles meles	unresolved	2
	Homo sapiens	Pan troglodytes	Quercus robur	3	3
	`,
}

var configGuide = &command.Command{
	Usage: "config",
	Short: "about the oracle configuration file",
	Long: `
The oracle configuration is a YAML file with the parameters of the web
services used by the oracles. All fields are optional; missing values take
the default value.

Here is an example file, with the default values:

	timeout: 30s
	workers: 1
	user-agent: triplet/1.0 (https://github.com/js-arias/triplet)
	opentree:
	  url: https://api.opentreeoflife.org/v3
	  rate: 2
	wikipedia:
	  url: https://en.wikipedia.org
	  rate: 2

The fields are:

	- timeout     the maximum time of a single oracle query
	- workers     the number of triples compared at the same time
	- user-agent  the user agent used in the web requests
	- url         the base address of a web service
	- rate        the maximum number of requests per second to a web
	              service; a value of 0 disables the limit

Public web services are a shared resource, so please be polite and keep the
request rate low, and use a user agent with your contact information.
	`,
}
