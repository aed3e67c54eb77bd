// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gapminder

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestPlotGroups(t *testing.T) {
	recs, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	paths, err := PlotGroups(dir, recs, ColContinent)
	if err != nil {
		t.Fatal(err)
	}
	var names []string
	for _, path := range paths {
		names = append(names, filepath.Base(path))
		data, err := os.ReadFile(path)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(string(data), "<svg") {
			t.Errorf("%s is not an SVG", path)
		}
	}
	if got, want := strings.Join(names, " "), "Asia.svg Europe.svg Africa.svg"; got != want {
		t.Errorf("wrote %s; want %s", got, want)
	}
}

func TestPlotErrors(t *testing.T) {
	e := &Exporter{Dir: t.TempDir()}
	if _, err := e.Plot(chad, ColPop, PlotOptions{}); err == nil {
		t.Errorf("grouping by %s should fail", ColPop)
	}
	_, err := e.Plot(chad, ColCountry, PlotOptions{Y: ColContinent})
	var cerr *PlotColumnError
	if !errors.As(err, &cerr) || cerr.Col != ColContinent {
		t.Errorf("want PlotColumnError for %s; got %v", ColContinent, err)
	}
}

func TestFileName(t *testing.T) {
	for _, test := range []struct{ key, want string }{
		{"Asia", "Asia"},
		{"Korea, Dem. Rep.", "Korea__Dem._Rep."},
		{"Côte d'Ivoire", "C_te_d_Ivoire"},
		{"../etc", ".._etc"},
		{"..", "_.."},
		{"", "_"},
	} {
		if got := fileName(test.key); got != test.want {
			t.Errorf("fileName(%q) = %q; want %q", test.key, got, test.want)
		}
	}
}

func TestPlotNameCollision(t *testing.T) {
	recs := []Record{
		{"Korea, Rep.", "Asia", 1952, 47.453, 20947571, 1030.592226},
		{"Korea_ Rep.", "Asia", 1952, 50, 1000, 1000},
		{"Korea, Rep.", "Asia", 1957, 52.681, 22611552, 1487.593537},
	}
	dir := filepath.Join(t.TempDir(), "plots")
	e := &Exporter{Dir: dir, Mkdir: true}
	paths, err := e.Plot(recs, ColCountry, PlotOptions{})
	var nerr *PlotNameError
	if !errors.As(err, &nerr) {
		t.Fatalf("want PlotNameError; got paths %v, err %v", paths, err)
	}
	if want := [2]string{"Korea, Rep.", "Korea_ Rep."}; nerr.Keys != want {
		t.Errorf("colliding keys %q; want %q", nerr.Keys, want)
	}
	if want := filepath.Join(dir, "Korea__Rep..svg"); nerr.Path != want {
		t.Errorf("colliding path %s; want %s", nerr.Path, want)
	}
	for _, key := range nerr.Keys {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name %q", err, key)
		}
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("collision should be detected before writing; stat %s: %v", dir, err)
	}
}
