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

var cmdPlotFlags = newFlagSet("plot", "[flags]")

var plot struct {
	data string
	by   string
	opts gapminder.PlotOptions
	out  outputFlags
}

func init() {
	f := cmdPlotFlags
	dataFlag(f, &plot.data)
	f.StringVar(&plot.by, "by", "continent", "write one plot per value of `column` (continent, country, or year)")
	f.StringVar(&plot.opts.Y, "y", "lifeExp", "plot `column` over time (lifeExp, pop, or gdpPercap)")
	f.IntVar(&plot.opts.Width, "w", 500, "plot width in `pixels`")
	f.IntVar(&plot.opts.Height, "h", 350, "plot height in `pixels`")
	plot.out.register(f)
	registerSubcommand("plot", "[flags] - write one SVG plot per group", cmdPlot, f)
}

func cmdPlot() {
	if cmdPlotFlags.NArg() != 0 {
		cmdPlotFlags.Usage()
		os.Exit(2)
	}
	status := NewStatusReporter(os.Stdout)
	_, err := doPlot(os.Stdout, status, plot.data, plot.by, plot.opts, &plot.out)
	status.Stop()
	if err != nil {
		log.Fatal(err)
	}
}

func doPlot(out io.Writer, status *StatusReporter, data, by string, opts gapminder.PlotOptions, o *outputFlags) ([]string, error) {
	recs, err := loadData(data)
	if err != nil {
		return nil, err
	}
	key, err := gapminder.KeyFunc(by)
	if err != nil {
		return nil, err
	}
	total := len(gapminder.GroupBy(recs, key))
	return o.exporter(out, status, total).Plot(recs, by, opts)
}
