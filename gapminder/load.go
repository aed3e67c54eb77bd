// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gapminder

import (
	"bytes"
	"embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

//go:embed data/gapminder.csv
var dataFS embed.FS

const bundledPath = "data/gapminder.csv"

// Load returns the bundled dataset, an excerpt of the Gapminder
// country-year table.
func Load() ([]Record, error) {
	data, err := dataFS.ReadFile(bundledPath)
	if err != nil {
		return nil, err
	}
	recs, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("bundled dataset: %w", err)
	}
	return recs, nil
}

// LoadFile parses the dataset in the named file.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return recs, nil
}

// A ParseError reports a malformed dataset.
type ParseError struct {
	Line   int    // 1-based line number; 0 if unknown
	Column string // column name; "" if the whole row is bad
	Err    error
}

func (e *ParseError) Error() string {
	if e.Column == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d, column %s: %v", e.Line, e.Column, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse reads a dataset in CSV form. The header row must name the
// columns country, continent, year, lifeExp, pop, and gdpPercap, in
// any order; other columns are ignored. Tab-separated input is
// recognized from the header.
func Parse(r io.Reader) ([]Record, error) {
	return parse(r, Columns, 0)
}

// parse reads records with the required columns cols. If the year
// column is not required, every record gets year.
func parse(r io.Reader, cols []string, year int) ([]Record, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimPrefix(data, []byte("\xef\xbb\xbf"))

	cr := csv.NewReader(bytes.NewReader(data))
	header := data
	if i := bytes.IndexByte(header, '\n'); i >= 0 {
		header = header[:i]
	}
	if bytes.IndexByte(header, '\t') >= 0 && bytes.IndexByte(header, ',') < 0 {
		cr.Comma = '\t'
	}
	cr.ReuseRecord = true

	names, err := cr.Read()
	if err == io.EOF {
		return nil, &ParseError{Line: 1, Err: errors.New("missing header")}
	} else if err != nil {
		return nil, csvError(err)
	}
	index := make(map[string]int)
	for i, name := range names {
		index[strings.TrimSpace(name)] = i
	}
	for _, col := range cols {
		if _, ok := index[col]; !ok {
			return nil, &ParseError{Line: 1, Column: col, Err: errors.New("missing column")}
		}
	}

	var recs []Record
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, csvError(err)
		}

		rec := Record{Year: year}
		for _, col := range cols {
			i := index[col]
			val := strings.TrimSpace(row[i])
			var err error
			switch col {
			case ColCountry:
				rec.Country = val
			case ColContinent:
				rec.Continent = val
			case ColYear:
				rec.Year, err = strconv.Atoi(val)
			case ColLifeExp:
				rec.LifeExp, err = strconv.ParseFloat(val, 64)
			case ColPop:
				rec.Pop, err = strconv.ParseFloat(val, 64)
			case ColGDPPercap:
				rec.GDPPercap, err = strconv.ParseFloat(val, 64)
			}
			if err != nil {
				if ne, ok := err.(*strconv.NumError); ok {
					err = ne.Err
				}
				line, _ := cr.FieldPos(i)
				return nil, &ParseError{Line: line, Column: col, Err: fmt.Errorf("%q: %w", val, err)}
			}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func csvError(err error) error {
	var perr *csv.ParseError
	if errors.As(err, &perr) {
		return &ParseError{Line: perr.Line, Err: perr.Err}
	}
	return err
}
