// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Gapiter iterates over the Gapminder country-year dataset group by
// group.
//
// Usage:
//
//      gapiter <subcommand> [flags] [args...]
//
// The main subcommand is split, which groups the dataset by year and
// writes one CSV file per year:
//
//      gapiter split -o out
//
// writes out/1952.csv, out/1957.csv, and so on. Each file has the
// header country,continent,lifeExp,pop,gdpPercap; the year is the
// file name. Re-running split overwrites the files with identical
// content.
//
// combine is the inverse of split: it reads every <year>.csv in a
// directory and prints one table with a year column. summary, trend,
// and plot compute per-group statistics, per-country linear fits, and
// per-group SVG plots. list prints the years in the dataset.
//
// By default every subcommand uses the dataset bundled with gapiter.
// The -data flag reads a CSV or TSV file instead ("-" for stdin).
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
)

type subcommand struct {
	name, desc string
	cmd        func()
	flags      *flag.FlagSet
}

var subcommands = map[string]*subcommand{}

func registerSubcommand(name, desc string, cmd func(), flags *flag.FlagSet) {
	subcommands[name] = &subcommand{name, desc, cmd, flags}
}

func main() {
	log.SetPrefix("gapiter: ")
	log.SetFlags(0)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s <subcommand> [flags] [args...]\n\nSubcommands:\n", os.Args[0])
		names := make([]string, 0, len(subcommands))
		for name := range subcommands {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %s %s\n", name, subcommands[name].desc)
		}
	}
	flag.Parse()
	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(2)
	}

	sub := subcommands[flag.Arg(0)]
	if sub == nil {
		fmt.Fprintf(os.Stderr, "unknown subcommand %q\n", flag.Arg(0))
		flag.Usage()
		os.Exit(2)
	}
	sub.flags.Parse(flag.Args()[1:])
	sub.cmd()
}

// newFlagSet returns a flag set for subcommand name with the usage
// line "<name> <args>".
func newFlagSet(name, args string) *flag.FlagSet {
	f := flag.NewFlagSet(os.Args[0]+" "+name, flag.ExitOnError)
	f.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s %s %s\n", os.Args[0], name, args)
		f.PrintDefaults()
	}
	return f
}
