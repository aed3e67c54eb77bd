// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gapminder loads country-year health and wealth statistics
// and iterates over them group by group: splitting a dataset into one
// CSV file per year, combining such files back into one table,
// summarizing and fitting per-group models, and plotting each group.
//
// Tabular operations are expressed with go-gg's table package, so a
// []Record can be moved into a table.Grouping with Table and back
// with FromTable.
package gapminder

import (
	"fmt"
	"strconv"
)

// A Record is one row of the dataset: the statistics for one country
// in one year.
type Record struct {
	Country   string
	Continent string
	Year      int
	LifeExp   float64
	Pop       float64
	GDPPercap float64
}

func (r Record) String() string {
	return fmt.Sprintf("%s/%d", r.Country, r.Year)
}

// Column names, as they appear in CSV headers and go-gg tables.
const (
	ColCountry   = "country"
	ColContinent = "continent"
	ColYear      = "year"
	ColLifeExp   = "lifeExp"
	ColPop       = "pop"
	ColGDPPercap = "gdpPercap"
)

// Columns lists every column of the dataset in canonical order.
var Columns = []string{ColCountry, ColContinent, ColYear, ColLifeExp, ColPop, ColGDPPercap}

// GroupColumns lists the columns written to a per-year file. The year
// is implied by the file name.
var GroupColumns = []string{ColCountry, ColContinent, ColLifeExp, ColPop, ColGDPPercap}

// field returns the text form of column col of r.
func (r Record) field(col string) string {
	switch col {
	case ColCountry:
		return r.Country
	case ColContinent:
		return r.Continent
	case ColYear:
		return strconv.Itoa(r.Year)
	case ColLifeExp:
		return formatFloat(r.LifeExp)
	case ColPop:
		return formatFloat(r.Pop)
	case ColGDPPercap:
		return formatFloat(r.GDPPercap)
	}
	panic("unknown column " + strconv.Quote(col))
}

func (r Record) fields(cols []string) []string {
	out := make([]string, len(cols))
	for i, col := range cols {
		out[i] = r.field(col)
	}
	return out
}

// formatFloat uses the shortest representation that round-trips, so
// formatting is stable across runs.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}
