// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/aclements/go-gapminder/gapminder"
)

var cmdListFlags = newFlagSet("list", "[flags]")

var list struct {
	data string
}

func init() {
	f := cmdListFlags
	dataFlag(f, &list.data)
	registerSubcommand("list", "[flags] - print each year and its record count", cmdList, f)
}

func cmdList() {
	if cmdListFlags.NArg() != 0 {
		cmdListFlags.Usage()
		os.Exit(2)
	}
	if err := doList(os.Stdout, list.data); err != nil {
		log.Fatal(err)
	}
}

func doList(w io.Writer, data string) error {
	recs, err := loadData(data)
	if err != nil {
		return err
	}
	for _, g := range gapminder.GroupByYear(recs) {
		fmt.Fprintf(w, "%d %d\n", g.Year, len(g.Records))
	}
	return nil
}
