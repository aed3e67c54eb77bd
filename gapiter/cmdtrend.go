// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"log"
	"os"

	"github.com/aclements/go-gapminder/gapminder"
	"github.com/aclements/go-gg/table"
)

var cmdTrendFlags = newFlagSet("trend", "[flags]")

var trend struct {
	data string
}

func init() {
	f := cmdTrendFlags
	dataFlag(f, &trend.data)
	registerSubcommand("trend", "[flags] - fit life expectancy over time per country", cmdTrend, f)
}

func cmdTrend() {
	if cmdTrendFlags.NArg() != 0 {
		cmdTrendFlags.Usage()
		os.Exit(2)
	}
	if err := doTrend(os.Stdout, trend.data); err != nil {
		log.Fatal(err)
	}
}

func doTrend(w io.Writer, data string) error {
	recs, err := loadData(data)
	if err != nil {
		return err
	}
	trends := gapminder.Trends(recs)

	countries := make([]string, len(trends))
	continents := make([]string, len(trends))
	intercepts := make([]float64, len(trends))
	slopes := make([]float64, len(trends))
	ns := make([]int, len(trends))
	for i, t := range trends {
		countries[i] = t.Country
		continents[i] = t.Continent
		intercepts[i] = t.Intercept
		slopes[i] = t.Slope
		ns[i] = t.N
	}
	tab := new(table.Builder).
		Add("country", countries).
		Add("continent", continents).
		Add("lifeExp at 1952", intercepts).
		Add("lifeExp/year", slopes).
		Add("n", ns).
		Done()
	return table.Fprint(w, tab, "%s", "%s", "%.3f", "%.4f", "%d")
}
