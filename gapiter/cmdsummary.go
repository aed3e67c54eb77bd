// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/aclements/go-gapminder/gapminder"
	"github.com/aclements/go-gg/table"
)

var cmdSummaryFlags = newFlagSet("summary", "[flags]")

var summary struct {
	data string
	by   string
}

func init() {
	f := cmdSummaryFlags
	dataFlag(f, &summary.data)
	f.StringVar(&summary.by, "by", "continent,year", "summarize over each combination of `columns` (comma-separated)")
	registerSubcommand("summary", "[flags] - print life expectancy statistics per group", cmdSummary, f)
}

func cmdSummary() {
	if cmdSummaryFlags.NArg() != 0 {
		cmdSummaryFlags.Usage()
		os.Exit(2)
	}
	if err := doSummary(os.Stdout, summary.data, summary.by); err != nil {
		log.Fatal(err)
	}
}

func doSummary(w io.Writer, data, by string) error {
	recs, err := loadData(data)
	if err != nil {
		return err
	}
	var cols []string
	for _, col := range strings.Split(by, ",") {
		if col = strings.TrimSpace(col); col != "" {
			cols = append(cols, col)
		}
	}
	g, err := gapminder.Summarize(recs, cols...)
	if err != nil {
		return err
	}
	if err := table.Fprint(w, g); err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "\npopulation-weighted life expectancy: %.3f\n", gapminder.WeightedLifeExp(recs))
	return err
}
