// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gapminder

import (
	"fmt"
	"sort"

	"github.com/aclements/go-gg/table"
)

// A Group is the set of records that share one year.
type Group struct {
	Year    int
	Records []Record
}

// GroupByYear partitions recs by year. Records keep their relative
// order within each group and groups are sorted by year. Every group
// is non-empty.
func GroupByYear(recs []Record) []Group {
	if len(recs) == 0 {
		return nil
	}

	g := table.GroupBy(Table(recs), ColYear)
	groups := make([]Group, 0, len(g.Tables()))
	for _, gid := range g.Tables() {
		grecs, err := FromTable(g.Table(gid))
		if err != nil {
			// Table always produces every column.
			panic(err)
		}
		groups = append(groups, Group{gid.Label().(int), grecs})
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Year < groups[j].Year
	})
	return groups
}

// A NamedGroup is a set of records that share a key.
type NamedGroup struct {
	Key     string
	Records []Record
}

// GroupBy partitions recs by key. Groups appear in the order their
// keys first appear in recs and records keep their relative order.
func GroupBy(recs []Record, key func(Record) string) []NamedGroup {
	var groups []NamedGroup
	index := make(map[string]int)
	for _, r := range recs {
		k := key(r)
		i, ok := index[k]
		if !ok {
			i = len(groups)
			index[k] = i
			groups = append(groups, NamedGroup{Key: k})
		}
		groups[i].Records = append(groups[i].Records, r)
	}
	return groups
}

// KeyFunc returns a key function for the named categorical column.
func KeyFunc(col string) (func(Record) string, error) {
	switch col {
	case ColCountry:
		return func(r Record) string { return r.Country }, nil
	case ColContinent:
		return func(r Record) string { return r.Continent }, nil
	case ColYear:
		return func(r Record) string { return r.field(ColYear) }, nil
	}
	return nil, fmt.Errorf("gapminder: cannot group by column %q", col)
}
