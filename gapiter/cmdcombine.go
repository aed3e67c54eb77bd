// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"io"
	"log"
	"os"

	"github.com/aclements/go-gapminder/gapminder"
	"github.com/aclements/go-gg/table"
)

var cmdCombineFlags = newFlagSet("combine", "[flags] dir")

var combine struct {
	out   string
	table bool
}

func init() {
	f := cmdCombineFlags
	f.StringVar(&combine.out, "o", "", "write output to `file` (default: stdout)")
	f.BoolVar(&combine.table, "table", false, "print an aligned table instead of CSV")
	registerSubcommand("combine", "[flags] dir - read per-year CSV files back into one table", cmdCombine, f)
}

func cmdCombine() {
	if cmdCombineFlags.NArg() != 1 {
		cmdCombineFlags.Usage()
		os.Exit(2)
	}

	if err := combineTo(combine.out, cmdCombineFlags.Arg(0), combine.table); err != nil {
		log.Fatal(err)
	}
}

// combineTo writes the combined contents of dir to the file out, or
// to stdout if out is "".
func combineTo(out, dir string, asTable bool) error {
	f := os.Stdout
	if out != "" {
		var err error
		f, err = os.Create(out)
		if err != nil {
			return err
		}
	}
	w := bufio.NewWriter(f)
	err := doCombine(w, dir, asTable)
	if err == nil {
		err = w.Flush()
	}
	if out != "" {
		if err2 := f.Close(); err == nil {
			err = err2
		}
	}
	return err
}

func doCombine(w io.Writer, dir string, asTable bool) error {
	recs, err := gapminder.ReadDir(dir)
	if err != nil {
		return err
	}
	if asTable {
		return table.Fprint(w, gapminder.Table(recs))
	}
	return gapminder.WriteDataset(w, recs)
}
