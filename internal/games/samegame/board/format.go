package board

import (
	"fmt"
	"strings"
)

// Format renders the grid one row per line, top row first.
// Empty cells are '.', colors are 'A', 'B', ... (see Cell.Char).
func Format(g Grid) string {
	var sb strings.Builder
	sb.Grow(g.width*g.height + g.height)

	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < g.width; x++ {
			sb.WriteRune(g.cell(x, y).Char())
		}
	}
	return sb.String()
}

// ParseRows builds a grid from layout rows such as "AAB.", one string per row.
func ParseRows(lines []string) (Grid, error) {
	rows := make([][]Cell, 0, len(lines))
	for y, line := range lines {
		row := make([]Cell, 0, len(line))
		for x, r := range []rune(line) {
			c, ok := ParseCell(r)
			if !ok {
				return Grid{}, fmt.Errorf("%w: unexpected %q at (%d,%d)", ErrInvalidLayout, r, x, y)
			}
			row = append(row, c)
		}
		rows = append(rows, row)
	}
	return FromRows(rows)
}

// Parse reads a multi-line layout. Blank lines and surrounding tabs are
// ignored, so rows can be indented in Go raw strings. Prefer '.' for empty
// cells: a row made only of spaces reads as blank.
func Parse(s string) (Grid, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.Trim(line, "\t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return ParseRows(lines)
}

// MustParse is like Parse but panics on error. Intended for tests and
// built-in layouts.
func MustParse(s string) Grid {
	g, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return g
}
