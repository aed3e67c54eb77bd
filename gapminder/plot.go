// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gapminder

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/aclements/go-gg/gg"
)

// PlotOptions control the plots produced by Exporter.Plot.
type PlotOptions struct {
	// Width and Height are the SVG size in pixels. Zero means
	// 500x350.
	Width, Height int

	// Y is the column plotted against year. "" means lifeExp.
	Y string
}

func (o PlotOptions) withDefaults() PlotOptions {
	if o.Width <= 0 {
		o.Width = 500
	}
	if o.Height <= 0 {
		o.Height = 350
	}
	if o.Y == "" {
		o.Y = ColLifeExp
	}
	return o
}

// NewPlot returns a plot of column y over year with one line per
// country.
func NewPlot(recs []Record, y, title string) *gg.Plot {
	plot := gg.NewPlot(Table(recs))
	plot.GroupBy(ColCountry)
	plot.Add(gg.LayerLines{X: ColYear, Y: y, Color: ColCountry})
	plot.Add(gg.LayerPoints{X: ColYear, Y: y, Color: ColCountry})
	if title != "" {
		plot.Add(gg.Title(title))
	}
	return plot
}

// PlotPath returns the path of the plot for the group with key.
func (e *Exporter) PlotPath(key string) string {
	return filepath.Join(e.dir(), fileName(key)+".svg")
}

// Plot groups recs by the categorical column by and writes one SVG
// plot per group to <Dir>/<key>.svg. It returns the paths written in
// the order groups first appear. Failures are reported as for Export.
// If two keys map to the same file name, Plot returns a
// *PlotNameError before writing anything.
func (e *Exporter) Plot(recs []Record, by string, opts PlotOptions) ([]string, error) {
	key, err := KeyFunc(by)
	if err != nil {
		return nil, err
	}
	switch opts.Y {
	case "", ColLifeExp, ColPop, ColGDPPercap:
	default:
		return nil, &PlotColumnError{opts.Y}
	}
	opts = opts.withDefaults()

	groups := GroupBy(recs, key)
	owner := make(map[string]string, len(groups))
	for _, g := range groups {
		path := e.PlotPath(g.Key)
		if prev, ok := owner[path]; ok {
			return nil, &PlotNameError{Path: path, Keys: [2]string{prev, g.Key}}
		}
		owner[path] = g.Key
	}

	if err := e.mkdir(); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(groups))
	for _, g := range groups {
		path := e.PlotPath(g.Key)
		plot := NewPlot(g.Records, opts.Y, g.Key)
		err := e.create(path, func(w io.Writer) error {
			return plot.WriteSVG(w, opts.Width, opts.Height)
		})
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
		if e.OnWrite != nil {
			e.OnWrite(path, len(g.Records))
		}
	}
	return paths, nil
}

// PlotGroups writes one plot of life expectancy per group of recs to
// dir, grouping by the column by.
func PlotGroups(dir string, recs []Record, by string) ([]string, error) {
	e := &Exporter{Dir: dir}
	return e.Plot(recs, by, PlotOptions{})
}

// A PlotColumnError reports a column that cannot be plotted.
type PlotColumnError struct {
	Col string
}

func (e *PlotColumnError) Error() string {
	return "gapminder: cannot plot column " + e.Col
}

// A PlotNameError reports two group keys that map to the same plot
// file.
type PlotNameError struct {
	Path string
	Keys [2]string
}

func (e *PlotNameError) Error() string {
	return fmt.Sprintf("gapminder: groups %q and %q would both be written to %s", e.Keys[0], e.Keys[1], e.Path)
}

// fileName maps a group key to a file name with no path separators
// or shell-unfriendly characters.
func fileName(key string) string {
	name := strings.Map(func(r rune) rune {
		if 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || strings.ContainsRune("-_.", r) {
			return r
		}
		return '_'
	}, key)
	if name == "" || strings.Trim(name, ".") == "" {
		name = "_" + name
	}
	return name
}
