package scad

import "github.com/willf/bitset"

// Levels decodes a cell code into the vertical levels that hold a block,
// in ascending order. Bit z set means a block exists at level z. Only bits
// 0..MaxLevels-1 are inspected; an empty result means ground only.
func Levels(code int) []int {
	bits := bitset.From([]uint64{uint64(code) & CellCodeMax})
	levels := make([]int, 0, bits.Count())
	for z, ok := bits.NextSet(0); ok; z, ok = bits.NextSet(z + 1) {
		levels = append(levels, int(z))
	}
	return levels
}

// BlockCount is the number of blocks a cell code encodes.
func BlockCount(code int) int {
	return int(bitset.From([]uint64{uint64(code) & CellCodeMax}).Count())
}
