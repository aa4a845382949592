// Copyright (c) 2022. Alvin Baena.
// SPDX-License-Identifier: MIT

package cli

var (
	// audit
	inputFile string
	// root
	verbose bool
	// root
	profile bool
	// root
	pprofPort uint16
	// fetch
	outFile string
	// fetch
	overwrite bool
	// fetch, audit
	threads int
	// analyze
	interactive bool
	// analyze
	jsonOut bool
	// analyze
	compare bool
	// analyze, audit, serve
	wordlistFile string
	// analyze, audit, serve
	rate float64
	// audit
	top int
	// serve
	selfTLS bool
	// serve
	tlsCert string
	// serve
	tlsKey string
	// serve
	port uint16
)
