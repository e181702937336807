// Package gridtext renders grids as text and parses text into grids.
//
// Column widths follow the East Asian Width property from
// golang.org/x/text/width, so tile maps mixing ASCII and CJK or fullwidth
// characters stay aligned in a terminal.
package gridtext

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/width"

	"github.com/gogpu/grid"
)

// ErrRagged is returned by Parse when lines differ in length.
var ErrRagged = errors.New("gridtext: lines of different length")

// Options control Render and Format.
type Options struct {
	// Zero is written for cells holding the zero rune. Default is '.'.
	Zero rune

	// Narrow folds fullwidth and wide compatibility characters to their
	// narrow forms before measuring, e.g. 'Ａ' becomes 'A'.
	Narrow bool
}

// Render writes g one row per line, each line terminated by '\n'.
//
// If any cell holds a wide or fullwidth character, every cell is rendered
// two columns wide and narrow characters are followed by a space, so that
// columns line up. Characters that are not printable are written as
// U+FFFD.
func Render(g grid.Grid[rune], opts Options) string {
	return Format(g, func(r rune) rune { return r }, opts)
}

// Format is Render for any element type, with f mapping elements to runes.
func Format[T any](g grid.Grid[T], f func(T) rune, opts Options) string {
	if g.IsEmpty() {
		return ""
	}
	if opts.Zero == 0 {
		opts.Zero = '.'
	}

	cells := grid.New[rune](g.Size())
	wide := false
	for y := range g.Height() {
		out := cells.Row(y)
		for x, v := range g.Row(y) {
			r := normalize(f(v), opts)
			wide = wide || isWide(r)
			out[x] = r
		}
	}

	var sb strings.Builder
	sb.Grow(g.Height() * (g.Width()*2 + 1))
	for y := range cells.Height() {
		for _, r := range cells.Row(y) {
			sb.WriteRune(r)
			if wide && !isWide(r) {
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

func normalize(r rune, opts Options) rune {
	if r == 0 {
		r = opts.Zero
	}
	if opts.Narrow {
		if folded, _ := utf8.DecodeRuneInString(width.Narrow.String(string(r))); folded != utf8.RuneError {
			r = folded
		}
	}
	if !unicode.IsPrint(r) {
		return utf8.RuneError
	}
	return r
}

func isWide(r rune) bool {
	switch width.LookupRune(r).Kind() {
	case width.EastAsianWide, width.EastAsianFullwidth:
		return true
	}
	return false
}

// Parse builds a compact heap grid from text, one row per line. Trailing
// newlines are ignored; all remaining lines must hold the same number of
// runes. Wide-mode padding written by Render is not stripped.
func Parse(s string) (grid.Grid[rune], error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) == 1 && lines[0] == "" {
		return grid.Empty[rune](), nil
	}

	w := utf8.RuneCountInString(lines[0])
	g := grid.New[rune](grid.Sz(w, len(lines)))
	for y, line := range lines {
		if n := utf8.RuneCountInString(line); n != w {
			return grid.Empty[rune](), fmt.Errorf("%w: line %d has %d runes, want %d", ErrRagged, y+1, n, w)
		}
		row := g.Row(y)
		x := 0
		for _, r := range line {
			row[x] = r
			x++
		}
	}
	return g, nil
}
