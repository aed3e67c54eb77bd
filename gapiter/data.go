// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/aclements/go-gapminder/gapminder"
	"github.com/kballard/go-shellquote"
)

// loadData returns the dataset at path, the bundled dataset if path is
// "", or the dataset on stdin if path is "-".
func loadData(path string) ([]gapminder.Record, error) {
	switch path {
	case "":
		return gapminder.Load()
	case "-":
		recs, err := gapminder.Parse(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("stdin: %w", err)
		}
		return recs, nil
	}
	return gapminder.LoadFile(path)
}

func dataFlag(f *flag.FlagSet, p *string) {
	f.StringVar(p, "data", "", "read the dataset from `file` instead of the bundled one (\"-\" for stdin)")
}

// outputFlags are the flags shared by subcommands that write one file
// per group.
type outputFlags struct {
	dir     string
	dryRun  bool
	verbose bool
}

func (o *outputFlags) register(f *flag.FlagSet) {
	f.StringVar(&o.dir, "o", ".", "write files to `dir`, creating it if necessary")
	f.BoolVar(&o.dryRun, "n", false, "print the files that would be written without writing them")
	f.BoolVar(&o.verbose, "v", false, "print each file written")
}

// exporter returns an Exporter for o. Dry runs print each file to
// out. Otherwise progress across total files is reported to status.
func (o *outputFlags) exporter(out io.Writer, status *StatusReporter, total int) *gapminder.Exporter {
	e := &gapminder.Exporter{Dir: o.dir, Mkdir: true, DryRun: o.dryRun}
	done := 0
	e.OnWrite = func(path string, rows int) {
		done++
		if o.dryRun {
			fmt.Fprintf(out, "%s\t# %d rows\n", shellquote.Join(path), rows)
			return
		}
		if o.verbose {
			status.Message(fmt.Sprintf("wrote %s (%d rows)", path, rows))
		}
		status.Progress(fmt.Sprintf("wrote %s", path), float64(done)/float64(total))
	}
	return e
}
