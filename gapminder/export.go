// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gapminder

import (
	"bufio"
	"encoding/csv"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
)

// WriteCSV writes recs to w as CSV with the columns in GroupColumns.
func WriteCSV(w io.Writer, recs []Record) error {
	return writeCSV(w, GroupColumns, recs)
}

// WriteDataset writes recs to w as CSV with every column, in the
// format Parse reads.
func WriteDataset(w io.Writer, recs []Record) error {
	return writeCSV(w, Columns, recs)
}

func writeCSV(w io.Writer, cols []string, recs []Record) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(cols); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write(r.fields(cols)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// A WriteError reports a file that could not be written.
type WriteError struct {
	Path string
	Err  error
}

func (e *WriteError) Error() string {
	return "gapminder: writing " + e.Path + ": " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func writeError(path string, err error) error {
	// Don't repeat the path the os package already reports.
	var perr *fs.PathError
	if errors.As(err, &perr) && perr.Path == path {
		err = perr.Err
	}
	return &WriteError{path, err}
}

// An Exporter writes groups of records to files in a directory.
//
// The zero Exporter writes to the current directory.
type Exporter struct {
	// Dir is the output directory. "" means ".".
	Dir string

	// Mkdir causes Dir to be created if it does not exist.
	Mkdir bool

	// DryRun suppresses all writes. The file names that would be
	// written are still returned and passed to OnWrite.
	DryRun bool

	// OnWrite, if non-nil, is called after each file is written
	// with its path and the number of records in it.
	OnWrite func(path string, rows int)
}

func (e *Exporter) dir() string {
	if e.Dir == "" {
		return "."
	}
	return e.Dir
}

// YearPath returns the path of the file for year.
func (e *Exporter) YearPath(year int) string {
	return filepath.Join(e.dir(), strconv.Itoa(year)+".csv")
}

// Export writes each group to <Dir>/<year>.csv, replacing any
// existing file, and returns the paths written in group order. It
// stops at the first failure and returns a *WriteError naming the
// path along with the paths written before it.
func (e *Exporter) Export(groups []Group) ([]string, error) {
	if err := e.mkdir(); err != nil {
		return nil, err
	}
	paths := make([]string, 0, len(groups))
	for _, g := range groups {
		path := e.YearPath(g.Year)
		recs := g.Records
		err := e.create(path, func(w io.Writer) error {
			return WriteCSV(w, recs)
		})
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
		if e.OnWrite != nil {
			e.OnWrite(path, len(recs))
		}
	}
	return paths, nil
}

func (e *Exporter) mkdir() error {
	if !e.Mkdir || e.DryRun {
		return nil
	}
	if err := os.MkdirAll(e.dir(), 0777); err != nil {
		return writeError(e.dir(), err)
	}
	return nil
}

// create writes path using write. It does nothing in a dry run.
func (e *Exporter) create(path string, write func(w io.Writer) error) error {
	if e.DryRun {
		return nil
	}
	f, err := os.Create(path)
	if err != nil {
		return writeError(path, err)
	}
	bw := bufio.NewWriter(f)
	err = write(bw)
	if err == nil {
		err = bw.Flush()
	}
	if err2 := f.Close(); err == nil {
		err = err2
	}
	if err != nil {
		return writeError(path, err)
	}
	return nil
}

// Split groups recs by year and writes one CSV file per year to dir.
func Split(dir string, recs []Record) ([]string, error) {
	e := &Exporter{Dir: dir}
	return e.Export(GroupByYear(recs))
}
