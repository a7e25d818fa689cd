// Package report prints search results in the fixed line format of the
// command-line driver:
//
//	=== Graf 1: S -> Z ===
//	BFS: S A B D C F E Z
//	...
//	Shortest Path (Dijkstra): S B C E Z
//	Shortest Path Cost (Dijkstra): 10
//
// Headers after the first are preceded by a blank line. Terminal colors come
// from github.com/fatih/color and can be forced on or off per Printer.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/katalvlaran/lvsearch/search"
)

// ErrNilResult is returned when Result is handed a nil *search.Result.
var ErrNilResult = errors.New("report: nil result")

// NoPathNote is appended to the line of a result that missed its goal.
const NoPathNote = "(no path found)"

// Option configures a Printer.
type Option func(*Printer)

// WithColor forces colored output on (true) or off (false). Without it the
// fatih/color terminal detection decides.
func WithColor(enabled bool) Option {
	return func(p *Printer) {
		for _, c := range []*color.Color{p.header, p.name, p.cost, p.miss} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// Printer writes headers and result lines to an io.Writer.
type Printer struct {
	w       io.Writer
	header  *color.Color
	name    *color.Color
	cost    *color.Color
	miss    *color.Color
	headers int
}

// New returns a Printer writing to w.
func New(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:      w,
		header: color.New(color.FgHiCyan, color.Bold),
		name:   color.New(color.FgGreen),
		cost:   color.New(color.FgYellow),
		miss:   color.New(color.FgRed),
	}
	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Header writes "=== title ===".
func (p *Printer) Header(title string) error {
	if p.headers > 0 {
		if _, err := fmt.Fprintln(p.w); err != nil {
			return err
		}
	}
	p.headers++
	_, err := fmt.Fprintln(p.w, p.header.Sprint("=== "+title+" ==="))

	return err
}

// Result writes "Name: L1 L2 ..." for res, marks a missed goal, and adds the
// cost line when the result carries one. A nil res writes nothing and
// returns ErrNilResult.
func (p *Printer) Result(res *search.Result) error {
	if res == nil {
		return ErrNilResult
	}
	var b strings.Builder
	b.WriteString(p.name.Sprint(string(res.Algorithm) + ":"))
	if len(res.Path) > 0 {
		b.WriteString(" " + strings.Join(res.Path, " "))
	}
	if !res.Found() {
		b.WriteString(" " + p.miss.Sprint(NoPathNote))
	}
	if _, err := fmt.Fprintln(p.w, b.String()); err != nil {
		return err
	}

	if res.HasCost {
		_, err := fmt.Fprintf(p.w, "%s %d\n", p.cost.Sprint("Shortest Path Cost (Dijkstra):"), res.Cost)
		return err
	}

	return nil
}

// Section writes a header followed by every result.
func (p *Printer) Section(title string, results []*search.Result) error {
	if err := p.Header(title); err != nil {
		return err
	}
	for i, res := range results {
		if err := p.Result(res); err != nil {
			return fmt.Errorf("%s: result %d: %w", title, i, err)
		}
	}

	return nil
}
