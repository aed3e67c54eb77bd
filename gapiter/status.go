// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"github.com/aclements/go-moremath/fit"
	"golang.org/x/crypto/ssh/terminal"
)

// A StatusReporter shows progress through a sequence of file writes.
//
// On a terminal it keeps a single line showing the latest progress
// message and an estimated time to completion, and prints messages
// above that line. Anywhere else progress is dropped and messages are
// printed as plain lines, so output can be piped or captured.
type StatusReporter struct {
	w       io.Writer
	updates chan<- statusUpdate // nil unless drawing a status line
	stopped chan struct{}
}

type statusUpdate struct {
	msg  string
	frac float64
	line bool // print msg on its own line
}

// VT100 control sequences used to redraw the status line in place.
const (
	clearLine = "\r\x1b[2K"
	wrapOff   = "\x1b[?7l"
	wrapOn    = "\x1b[?7h"
)

// NewStatusReporter returns a StatusReporter writing to w. It draws a
// status line only if w is a terminal.
func NewStatusReporter(w io.Writer) *StatusReporter {
	if !isTerminal(w) {
		return &StatusReporter{w: w}
	}
	return newLiveStatus(w)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && os.Getenv("TERM") != "dumb" && terminal.IsTerminal(int(f.Fd()))
}

// newLiveStatus returns a StatusReporter that draws a status line to w
// whether or not it is a terminal.
func newLiveStatus(w io.Writer) *StatusReporter {
	updates := make(chan statusUpdate)
	sr := &StatusReporter{w: w, updates: updates, stopped: make(chan struct{})}
	go sr.draw(updates)
	return sr
}

// Progress replaces the status line with msg and records that frac of
// the work is done.
func (sr *StatusReporter) Progress(msg string, frac float64) {
	if sr.updates != nil {
		sr.updates <- statusUpdate{msg: msg, frac: frac}
	}
}

// Message prints msg on its own line.
func (sr *StatusReporter) Message(msg string) {
	if sr.updates == nil {
		fmt.Fprintln(sr.w, msg)
		return
	}
	sr.updates <- statusUpdate{msg: msg, line: true}
}

// Stop erases the status line. The reporter must not be used after
// Stop.
func (sr *StatusReporter) Stop() {
	if sr.updates == nil {
		return
	}
	close(sr.updates)
	<-sr.stopped
	sr.updates = nil
}

func (sr *StatusReporter) draw(updates <-chan statusUpdate) {
	tick := time.NewTicker(time.Second / 4)
	defer tick.Stop()

	eta := etaEstimator{start: time.Now()}
	var msg string
	for {
		select {
		case u, ok := <-updates:
			if !ok {
				io.WriteString(sr.w, clearLine)
				close(sr.stopped)
				return
			}
			if u.line {
				fmt.Fprintf(sr.w, "%s%s\n", clearLine, u.msg)
			} else {
				msg = u.msg
				eta.observe(time.Now(), u.frac)
			}
		case <-tick.C:
		}
		left, known := eta.remaining(time.Now())
		fmt.Fprint(sr.w, clearLine, wrapOff, statusLine(msg, left, known), wrapOn)
	}
}

func statusLine(msg string, left time.Duration, known bool) string {
	eta := "ETA unknown"
	if known {
		eta = "ETA " + left.String()
	}
	if msg == "" {
		return eta
	}
	return msg + ", " + eta
}

// etaDecay is the time constant, in seconds, over which old progress
// samples lose influence on the estimate.
const etaDecay = 30.0

// An etaEstimator predicts when the progress fraction will reach 1.
type etaEstimator struct {
	start       time.Time
	times, frac []float64 // seconds since start, fraction done
	end         time.Time // zero if unknown
}

func (e *etaEstimator) observe(now time.Time, frac float64) {
	e.times = append(e.times, now.Sub(e.start).Seconds())
	e.frac = append(e.frac, frac)
	e.end = time.Time{}
	if secs, ok := fitEnd(e.times, e.frac, etaDecay); ok {
		e.end = e.start.Add(time.Duration(secs * float64(time.Second)))
	}
}

// remaining returns the estimated time left at now, in whole seconds.
func (e *etaEstimator) remaining(now time.Time) (time.Duration, bool) {
	if e.end.IsZero() {
		return 0, false
	}
	left := e.end.Sub(now).Truncate(time.Second)
	if left < 0 {
		left = 0
	}
	return left, true
}

// fitEnd fits a line to the progress fractions frac observed at times
// and returns the time at which the line reaches 1. Each sample is
// weighted by exp(-age/decay), where age is measured from the last
// sample, so recent progress dominates. It reports false if there are
// not two distinct times or progress is not increasing.
func fitEnd(times, frac []float64, decay float64) (float64, bool) {
	n := len(times)
	if n < 2 || times[n-1] <= times[0] || frac[n-1] <= frac[0] {
		return 0, false
	}
	weights := make([]float64, n)
	for i, t := range times {
		weights[i] = math.Exp(-(times[n-1] - t) / decay)
	}
	f := fit.PolynomialRegression(times, frac, weights, 1).F
	a, b := f(0), f(1)-f(0)
	if !(b > 0) || math.IsInf(b, 0) {
		return 0, false
	}
	end := (1 - a) / b
	if math.IsNaN(end) || math.IsInf(end, 0) {
		return 0, false
	}
	return end, true
}
