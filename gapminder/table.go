// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gapminder

import (
	"fmt"

	"github.com/aclements/go-gg/generic/slice"
	"github.com/aclements/go-gg/table"
)

// Table returns recs as a go-gg table with the columns listed in
// Columns, in that order.
func Table(recs []Record) *table.Table {
	countries := make([]string, len(recs))
	continents := make([]string, len(recs))
	years := make([]int, len(recs))
	lifeExp := make([]float64, len(recs))
	pop := make([]float64, len(recs))
	gdpPercap := make([]float64, len(recs))
	for i, r := range recs {
		countries[i] = r.Country
		continents[i] = r.Continent
		years[i] = r.Year
		lifeExp[i] = r.LifeExp
		pop[i] = r.Pop
		gdpPercap[i] = r.GDPPercap
	}

	return new(table.Builder).
		Add(ColCountry, countries).
		Add(ColContinent, continents).
		Add(ColYear, years).
		Add(ColLifeExp, lifeExp).
		Add(ColPop, pop).
		Add(ColGDPPercap, gdpPercap).
		Done()
}

// FromTable converts the rows of every group of g back into Records,
// in group order. Numeric columns may be of any numeric type.
func FromTable(g table.Grouping) ([]Record, error) {
	var recs []Record
	for _, gid := range g.Tables() {
		t := g.Table(gid)
		for _, col := range Columns {
			if t.Column(col) == nil {
				return nil, fmt.Errorf("gapminder: table %v has no column %q", gid, col)
			}
		}
		countries, ok1 := t.Column(ColCountry).([]string)
		continents, ok2 := t.Column(ColContinent).([]string)
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("gapminder: table %v: %s and %s must be string columns", gid, ColCountry, ColContinent)
		}

		var years []int
		var lifeExp, pop, gdpPercap []float64
		slice.Convert(&years, t.MustColumn(ColYear))
		slice.Convert(&lifeExp, t.MustColumn(ColLifeExp))
		slice.Convert(&pop, t.MustColumn(ColPop))
		slice.Convert(&gdpPercap, t.MustColumn(ColGDPPercap))

		for i := 0; i < t.Len(); i++ {
			recs = append(recs, Record{
				Country:   countries[i],
				Continent: continents[i],
				Year:      years[i],
				LifeExp:   lifeExp[i],
				Pop:       pop[i],
				GDPPercap: gdpPercap[i],
			})
		}
	}
	return recs, nil
}
