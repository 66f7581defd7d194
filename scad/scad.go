// Package scad extracts the block height map embedded in the game's
// OpenSCAD map source. The map is a 2D array literal of the form
//
//	map=[
//	[0,15,63],
//	[0,0,59],
//	];
//
// where each cell value is a 9-bit mask of occupied vertical levels.
package scad

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const (
	// MaxLevels is the number of vertical levels a cell can encode.
	MaxLevels = 9

	// CellCodeMax is the largest meaningful cell code; higher bits are ignored.
	CellCodeMax = 1<<MaxLevels - 1
)

const (
	arrayStart = "map=["
	arrayEnd   = "];"
)

var ErrNoMapArray = errors.New("scad: map array markers not found")

// HeightGrid holds the per-cell level codes in source row order.
type HeightGrid [][]int

func (g HeightGrid) Height() int {
	return len(g)
}

func (g HeightGrid) Width() int {
	if len(g) == 0 {
		return 0
	}
	return len(g[0])
}

// Decoder reads a height grid out of an OpenSCAD source stream. The decoder
// is not safe for concurrent use.
type Decoder struct {
	source io.Reader
}

func NewDecoder(source io.Reader) *Decoder {
	return &Decoder{source: source}
}

// Decode locates the map array between its start and end markers and parses
// every bracketed row inside the span. Lines that do not open with a bracket
// are skipped; the array literal is loose about blank lines and closing
// punctuation, and rejecting them would reject the real map source.
func (d *Decoder) Decode() (HeightGrid, error) {
	raw, err := io.ReadAll(d.source)
	if err != nil {
		return nil, err
	}

	content := string(raw)
	start := strings.Index(content, arrayStart)
	if start == -1 {
		return nil, ErrNoMapArray
	}
	span := content[start+len(arrayStart):]
	end := strings.Index(span, arrayEnd)
	if end == -1 {
		return nil, ErrNoMapArray
	}

	var grid HeightGrid
	for number, line := range strings.Split(span[:end], "\n") {
		line = strings.TrimSpace(line)
		if !strings.HasPrefix(line, "[") {
			continue
		}
		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("scad: row at line %d: %w", number+1, err)
		}
		if len(row) > 0 {
			grid = append(grid, row)
		}
	}
	return grid, nil
}

func parseRow(line string) ([]int, error) {
	var row []int
	for _, token := range strings.Split(strings.Trim(line, "[],"), ",") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		value, err := strconv.Atoi(token)
		if err != nil {
			return nil, fmt.Errorf("invalid cell value %q", token)
		}
		row = append(row, value)
	}
	return row, nil
}
