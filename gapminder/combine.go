// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gapminder

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// A YearFile is a per-year CSV file as written by Exporter.
type YearFile struct {
	Year int
	Path string
}

// YearFiles lists the files in dir named <year>.csv, sorted by year.
// The year must be written the way Exporter writes it, with no sign or
// leading zeros. Other files are ignored.
func YearFiles(dir string) ([]YearFile, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var files []YearFile
	for _, ent := range ents {
		name := ent.Name()
		if ent.IsDir() || !strings.HasSuffix(name, ".csv") {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSuffix(name, ".csv"))
		if err != nil || strconv.Itoa(year)+".csv" != name {
			// Only canonical names, so "+1952.csv" and
			// "01952.csv" don't repeat 1952.
			continue
		}
		files = append(files, YearFile{year, filepath.Join(dir, name)})
	}
	sort.Slice(files, func(i, j int) bool {
		return files[i].Year < files[j].Year
	})
	return files, nil
}

// Read parses f. Every record takes its year from the file name.
func (f YearFile) Read() ([]Record, error) {
	r, err := os.Open(f.Path)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	recs, err := parse(r, GroupColumns, f.Year)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f.Path, err)
	}
	return recs, nil
}

// ReadDir reads every per-year file in dir and concatenates their
// records in year order. It is the inverse of Split.
func ReadDir(dir string) ([]Record, error) {
	files, err := YearFiles(dir)
	if err != nil {
		return nil, err
	}
	var recs []Record
	for _, f := range files {
		frecs, err := f.Read()
		if err != nil {
			return nil, err
		}
		recs = append(recs, frecs...)
	}
	return recs, nil
}
