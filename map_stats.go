package main

import (
	"errors"
	"fmt"
	"io"

	"antattack3d/tools/scad"
)

var ErrEmptyGrid = errors.New("map: height grid has no cells")

// MapStats summarizes a height grid for the conversion report. It is
// informational only and never persisted.
type MapStats struct {
	Width       int
	Height      int
	TotalCells  int
	GroundOnly  int
	Elevated    int
	TotalBlocks int
}

// ComputeStats counts ground-only cells, elevated cells and total blocks
// across the grid. The grid is assumed rectangular; the width is taken from
// the first row. Returns ErrEmptyGrid when there are no cells to count.
func ComputeStats(grid scad.HeightGrid) (MapStats, error) {
	stats := MapStats{
		Width:      grid.Width(),
		Height:     grid.Height(),
		TotalCells: grid.Width() * grid.Height(),
	}
	if stats.TotalCells == 0 {
		return MapStats{}, ErrEmptyGrid
	}

	for _, row := range grid {
		for _, code := range row {
			if code == 0 {
				stats.GroundOnly++
			}
			stats.TotalBlocks += scad.BlockCount(code)
		}
	}
	stats.Elevated = stats.TotalCells - stats.GroundOnly
	return stats, nil
}

func (s MapStats) percent(count int) float64 {
	return 100 * float64(count) / float64(s.TotalCells)
}

// Report prints the human-readable statistics block.
func (s MapStats) Report(w io.Writer) {
	fmt.Fprintln(w, "Map Statistics:")
	fmt.Fprintf(w, "  Size: %dx%d\n", s.Width, s.Height)
	fmt.Fprintf(w, "  Ground-only cells: %d (%.1f%%)\n", s.GroundOnly, s.percent(s.GroundOnly))
	fmt.Fprintf(w, "  Elevated cells: %d (%.1f%%)\n", s.Elevated, s.percent(s.Elevated))
	fmt.Fprintf(w, "  Total blocks: %d\n", s.TotalBlocks)
}
