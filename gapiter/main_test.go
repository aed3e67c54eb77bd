// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aclements/go-gapminder/gapminder"
	"github.com/kballard/go-shellquote"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitCombine(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	var out bytes.Buffer
	status := NewStatusReporter(&out)
	defer status.Stop()

	paths, err := doSplit(&out, status, "", &outputFlags{dir: dir})
	require.NoError(t, err)
	assert.Len(t, paths, 12)
	assert.Empty(t, out.String(), "non-terminal progress is silent")

	var combined bytes.Buffer
	require.NoError(t, doCombine(&combined, dir, false))
	recs, err := gapminder.Parse(&combined)
	require.NoError(t, err)

	orig, err := gapminder.Load()
	require.NoError(t, err)
	assert.ElementsMatch(t, orig, recs)
	for i := 1; i < len(recs); i++ {
		assert.LessOrEqual(t, recs[i-1].Year, recs[i].Year, "combined output is in year order")
	}
}

func TestSplitDryRun(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "my out")
	var out bytes.Buffer
	status := NewStatusReporter(&out)
	defer status.Stop()

	paths, err := doSplit(&out, status, "", &outputFlags{dir: dir, dryRun: true})
	require.NoError(t, err)
	require.Len(t, paths, 12)

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, 12)
	field, rows, ok := strings.Cut(lines[0], "\t")
	require.True(t, ok, "line %q", lines[0])
	assert.Equal(t, "# 3 rows", rows)
	words, err := shellquote.Split(field)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "1952.csv")}, words)
	_, err = os.Stat(dir)
	assert.True(t, os.IsNotExist(err), "dry run created %s", dir)
}

func TestSplitBadData(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "data.csv")
	require.NoError(t, os.WriteFile(data, []byte("country,year\nChad,1952\n"), 0666))

	out := filepath.Join(dir, "out")
	var buf bytes.Buffer
	_, err := doSplit(&buf, NewStatusReporter(&buf), data, &outputFlags{dir: out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), data)
	_, err = os.Stat(out)
	assert.True(t, os.IsNotExist(err), "nothing is written for bad input")
}

func TestList(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, doList(&buf, ""))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 12)
	assert.Equal(t, "1952 3", lines[0])
	assert.Equal(t, "2007 3", lines[11])
}

func TestTrend(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, doTrend(&buf, ""))
	got := buf.String()
	for _, country := range []string{"Afghanistan", "Albania", "Algeria"} {
		assert.Contains(t, got, country)
	}
	assert.Contains(t, got, "lifeExp/year")
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, doSummary(&buf, "", "continent"))
	got := buf.String()
	assert.Contains(t, got, "mean lifeExp")
	assert.Contains(t, got, "population-weighted life expectancy: ")

	assert.Error(t, doSummary(&buf, "", "continent,pop"))
}

func TestPlotDryRun(t *testing.T) {
	var out bytes.Buffer
	o := &outputFlags{dir: "plots", dryRun: true}
	paths, err := doPlot(&out, NewStatusReporter(&out), "", "country", gapminder.PlotOptions{}, o)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join("plots", "Afghanistan.svg"),
		filepath.Join("plots", "Albania.svg"),
		filepath.Join("plots", "Algeria.svg"),
	}, paths)
	assert.Equal(t, 3, strings.Count(out.String(), "# 12 rows"))

	_, err = doPlot(&out, NewStatusReporter(&out), "", "lifeExp", gapminder.PlotOptions{}, o)
	assert.Error(t, err)
}

func TestCombineTable(t *testing.T) {
	dir := t.TempDir()
	_, err := gapminder.Split(dir, chadRecords)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doCombine(&buf, dir, true))
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"country", "continent", "year", "lifeExp", "pop", "gdpPercap"}, strings.Fields(lines[0]))
	assert.Equal(t, "Chad", strings.Fields(lines[1])[0])
	assert.Equal(t, "1957", strings.Fields(lines[2])[2])
}

func TestCombineOutputFile(t *testing.T) {
	dir := t.TempDir()
	_, err := gapminder.Split(dir, chadRecords)
	require.NoError(t, err)

	out := filepath.Join(t.TempDir(), "all.csv")
	require.NoError(t, combineTo(out, dir, false))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "country,continent,year,lifeExp,pop,gdpPercap\n"), "got %q", data)
	recs, err := gapminder.Parse(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, chadRecords, recs)

	err = combineTo(filepath.Join(dir, "missing", "all.csv"), dir, false)
	assert.Error(t, err, "unwritable output file")
}

var chadRecords = []gapminder.Record{
	{Country: "Chad", Continent: "Africa", Year: 1952, LifeExp: 38.092, Pop: 2682462, GDPPercap: 1178.665927},
	{Country: "Chad", Continent: "Africa", Year: 1957, LifeExp: 39.881, Pop: 2894855, GDPPercap: 1308.495577},
}
