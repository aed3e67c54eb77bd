// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gapminder

import (
	"math"

	"github.com/aclements/go-gg/ggstat"
	"github.com/aclements/go-gg/table"
	"github.com/aclements/go-moremath/fit"
	"github.com/aclements/go-moremath/stats"
)

// Summarize aggregates recs over every distinct combination of the
// categorical columns by. The result has the by columns followed by
// "mean lifeExp", "min lifeExp", "max lifeExp", and "mean gdpPercap".
func Summarize(recs []Record, by ...string) (table.Grouping, error) {
	for _, col := range by {
		if _, err := KeyFunc(col); err != nil {
			return nil, err
		}
	}
	agg := ggstat.Agg(by...)(
		ggstat.AggMean(ColLifeExp),
		ggstat.AggMin(ColLifeExp),
		ggstat.AggMax(ColLifeExp),
		ggstat.AggMean(ColGDPPercap),
	)
	return agg.F(Table(recs)), nil
}

// WeightedLifeExp returns the mean life expectancy of recs weighted by
// population, or NaN if recs is empty.
func WeightedLifeExp(recs []Record) float64 {
	if len(recs) == 0 {
		return math.NaN()
	}
	s := stats.Sample{
		Xs:      make([]float64, len(recs)),
		Weights: make([]float64, len(recs)),
	}
	for i, r := range recs {
		s.Xs[i] = r.LifeExp
		s.Weights[i] = r.Pop
	}
	return s.Mean()
}

// TrendBaseYear is the year at which Trend.Intercept is measured.
const TrendBaseYear = 1952

// A Trend is a linear fit of life expectancy over time for one
// country.
type Trend struct {
	Country   string
	Continent string

	// Intercept is the fitted life expectancy at TrendBaseYear and
	// Slope is the fitted change per year. Both are NaN if the
	// country has data for fewer than two distinct years.
	Intercept, Slope float64

	// N is the number of records fitted.
	N int
}

// Trends nests recs by country and fits lifeExp against year within
// each country. Countries appear in the order they first appear in
// recs.
func Trends(recs []Record) []Trend {
	groups := GroupBy(recs, func(r Record) string { return r.Country })
	trends := make([]Trend, 0, len(groups))
	for _, g := range groups {
		trends = append(trends, fitTrend(g))
	}
	return trends
}

func fitTrend(g NamedGroup) Trend {
	t := Trend{
		Country:   g.Key,
		Continent: g.Records[0].Continent,
		Intercept: math.NaN(),
		Slope:     math.NaN(),
		N:         len(g.Records),
	}

	xs := make([]float64, len(g.Records))
	ys := make([]float64, len(g.Records))
	distinct := make(map[int]bool)
	for i, r := range g.Records {
		xs[i] = float64(r.Year - TrendBaseYear)
		ys[i] = r.LifeExp
		distinct[r.Year] = true
	}
	if len(distinct) < 2 {
		return t
	}

	f := fit.PolynomialRegression(xs, ys, nil, 1).F
	t.Intercept = f(0)
	t.Slope = f(1) - f(0)
	return t
}
