package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/cespare/bee/bee"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"golang.org/x/time/rate"
)

const defaultWidth = 80

// A reporter renders solutions and search events.
type reporter struct {
	w     io.Writer
	width int
	now   func() time.Time

	pangram *color.Color
	perfect *color.Color
	fields  map[bee.Field]*color.Color

	sometimes rate.Sometimes
	inline    bool // a progress line is on screen
}

func newReporter(w io.Writer, width int, useColor bool) *reporter {
	if width <= 0 {
		width = defaultWidth
	}
	r := &reporter{
		w:       w,
		width:   width,
		now:     time.Now,
		pangram: color.New(color.FgRed, color.Bold),
		perfect: color.New(color.FgGreen, color.Bold),
		fields: map[bee.Field]*color.Color{
			bee.FieldPangrams: color.New(color.FgRed),
			bee.FieldPerfect:  color.New(color.FgGreen),
			bee.FieldWords:    color.New(color.Reset),
			bee.FieldRatio:    color.New(color.FgYellow),
			bee.FieldScore:    color.New(color.FgHiBlue),
		},
		sometimes: rate.Sometimes{Interval: 250 * time.Millisecond},
	}
	for _, c := range r.colors() {
		if useColor {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

func (r *reporter) colors() []*color.Color {
	cs := []*color.Color{r.pangram, r.perfect}
	for _, f := range bee.Fields() {
		cs = append(cs, r.fields[f])
	}
	return cs
}

// solution prints the words of sol wrapped to the reporter's width,
// highlighting pangrams, followed by a summary line.
func (r *reporter) solution(sol bee.Solution) {
	fmt.Fprintln(r.w)
	var col int
	for _, w := range sol.Words {
		if col > 0 && col+1+len(w) > r.width {
			fmt.Fprintln(r.w)
			col = 0
		}
		if col > 0 {
			io.WriteString(r.w, " ")
			col++
		}
		switch {
		case bee.IsPerfect(w, sol.Alphabet):
			io.WriteString(r.w, r.perfect.Sprint(w))
		case bee.IsPangram(w, sol.Alphabet):
			io.WriteString(r.w, r.pangram.Sprint(w))
		default:
			io.WriteString(r.w, w)
		}
		col += len(w)
	}
	if col > 0 {
		fmt.Fprintln(r.w)
	}
	s := sol.Stats
	fmt.Fprintf(r.w, "\nWords: %d Score: %d Pangrams: %d Perfect: %d Ratio: %d%%\n",
		s.Words, s.Score, s.Pangrams, s.Perfect, s.Ratio)
}

const timeFormat = "2006-01-02 15:04:05.000"

// record prints a timestamped line for a new maximum.
func (r *reporter) record(rec bee.Record) {
	r.clearLine()
	s := rec.Stats
	fmt.Fprintf(r.w, "%s -- %-8s%6d%4d%4d%6d (%3d%%) -- %s\n",
		r.now().Format(timeFormat),
		rec.Alphabet,
		s.Words, s.Pangrams, s.Perfect, s.Score, s.Ratio,
		r.fields[rec.Field].Sprint(rec.Field),
	)
}

// progress overwrites the current line with the search position.
// Updates are rate limited except for the final one.
func (r *reporter) progress(p bee.Progress) {
	show := func() {
		fmt.Fprintf(r.w, "\r%c%c..... %5.1f%% (%s / %s)",
			p.Center, p.First,
			100*float64(p.Done)/float64(p.Total),
			humanize.Comma(int64(p.Done)), humanize.Comma(int64(p.Total)),
		)
		r.inline = true
	}
	if p.Done == p.Total {
		show()
		return
	}
	r.sometimes.Do(show)
}

func (r *reporter) clearLine() {
	if r.inline {
		fmt.Fprint(r.w, "\r"+strings.Repeat(" ", r.width-1)+"\r")
		r.inline = false
	}
}

// done prints the final maxima of a search.
func (r *reporter) done(m bee.Maxima, elapsed time.Duration) {
	r.clearLine()
	fmt.Fprintf(r.w, "\nMaxima: words %d, pangrams %d, perfect %d, score %d, ratio %d%% (%s)\n",
		m.Words, m.Pangrams, m.Perfect, m.Score, m.Ratio,
		elapsed.Round(100*time.Millisecond),
	)
}
