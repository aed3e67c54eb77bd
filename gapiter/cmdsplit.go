// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log"
	"os"

	"github.com/aclements/go-gapminder/gapminder"
)

var cmdSplitFlags = newFlagSet("split", "[flags]")

var split struct {
	data string
	out  outputFlags
}

func init() {
	f := cmdSplitFlags
	dataFlag(f, &split.data)
	split.out.register(f)
	registerSubcommand("split", "[flags] - write one CSV file per year", cmdSplit, f)
}

func cmdSplit() {
	if cmdSplitFlags.NArg() != 0 {
		cmdSplitFlags.Usage()
		os.Exit(2)
	}
	status := NewStatusReporter(os.Stdout)
	_, err := doSplit(os.Stdout, status, split.data, &split.out)
	status.Stop()
	if err != nil {
		log.Fatal(err)
	}
}

// doSplit loads the dataset, groups it by year, and writes one file
// per group. The dataset is fully parsed before anything is written.
func doSplit(out io.Writer, status *StatusReporter, data string, o *outputFlags) ([]string, error) {
	recs, err := loadData(data)
	if err != nil {
		return nil, err
	}
	groups := gapminder.GroupByYear(recs)
	return o.exporter(out, status, len(groups)).Export(groups)
}
