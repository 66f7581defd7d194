package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"

	"antattack3d/tools/scad"
)

const (
	defaultMapInput  = "AntAttack3D/map.scad"
	defaultMapOutput = "AntAttack3D/ant_attack_original.json"
)

// convertMap runs the whole pipeline: read the OpenSCAD map source, decode
// the height grid, print statistics, and write the JSON document. Nothing is
// written unless every earlier stage succeeded.
func convertMap(inputPath, outputPath string) error {
	fmt.Println("Converting Ant Attack map from OpenSCAD to JSON...")
	fmt.Printf("Input:  %s\n", inputPath)
	fmt.Printf("Output: %s\n\n", outputPath)

	source, err := openMapSource(inputPath)
	if err != nil {
		return err
	}
	defer source.Close()

	grid, err := scad.NewDecoder(source).Decode()
	if err != nil {
		return err
	}
	fmt.Printf("Parsed %d rows from %s\n\n", grid.Height(), inputPath)

	stats, err := ComputeStats(grid)
	if err != nil {
		return err
	}
	stats.Report(os.Stdout)

	doc := NewMapDocument(grid)
	if err := doc.WriteJSON(outputPath); err != nil {
		return err
	}
	fmt.Printf("\nConverted map to: %s\n", outputPath)
	fmt.Printf("   Size: %dx%dx%d\n", doc.Width, doc.Height, doc.MaxLevels)

	printSampleDecodes(os.Stdout)
	return nil
}

type mapSource struct {
	io.Reader
	file *os.File
}

func (s *mapSource) Close() error {
	return s.file.Close()
}

// openMapSource opens the map file, transparently decompressing it if it is
// gzipped. The checked-in 128x128 map ships as map.scad.gz to keep the game
// repository small.
func openMapSource(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	buffered := bufio.NewReader(file)
	if magic, err := buffered.Peek(2); err == nil && magic[0] == 0x1f && magic[1] == 0x8b {
		unzipped, err := gzip.NewReader(buffered)
		if err != nil {
			_ = file.Close()
			return nil, err
		}
		return &mapSource{Reader: unzipped, file: file}, nil
	}
	return &mapSource{Reader: buffered, file: file}, nil
}

func printSampleDecodes(w io.Writer) {
	fmt.Fprintln(w, "\nSample bitmap decoding:")
	for _, code := range []int{0, 15, 63, 59, 31} {
		levels := scad.Levels(code)
		if len(levels) > 0 {
			fmt.Fprintf(w, "  Value %2d (0b%09b) = blocks at Z-levels: %v\n", code, code, levels)
		} else {
			fmt.Fprintf(w, "  Value %2d (0b%09b) = no blocks (ground only)\n", code, code)
		}
	}
}
