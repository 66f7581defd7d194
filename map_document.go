package main

import (
	"encoding/json"
	"os"

	"antattack3d/tools/scad"
)

const (
	mapName      = "Ant Attack Original"
	mapCreatedAt = "2025-01-01T00:00:00Z"
)

// MapDocument is the height-map document the game engine loads. Field order
// matches the key order the engine expects in the JSON file.
type MapDocument struct {
	Name      string          `json:"name"`
	Width     int             `json:"width"`
	Height    int             `json:"height"`
	MaxLevels int             `json:"maxLevels"`
	HeightMap scad.HeightGrid `json:"heightMap"`
	Blocks    []MapBlock      `json:"blocks"`
	Ramps     []MapRamp       `json:"ramps"`
	CreatedAt string          `json:"createdAt"`
}

// MapBlock is a single placed block, used by the engine's sparse map format.
// The height-map format leaves the list empty.
type MapBlock struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// MapRamp is a walkable ramp cell. The original map has none.
type MapRamp struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// NewMapDocument wraps a height grid with the fixed map metadata. The
// creation timestamp is a constant so reruns produce byte-identical output.
func NewMapDocument(grid scad.HeightGrid) *MapDocument {
	return &MapDocument{
		Name:      mapName,
		Width:     grid.Width(),
		Height:    grid.Height(),
		MaxLevels: scad.MaxLevels,
		HeightMap: grid,
		Blocks:    []MapBlock{},
		Ramps:     []MapRamp{},
		CreatedAt: mapCreatedAt,
	}
}

// WriteJSON serializes the document with two-space indentation and replaces
// whatever is at path.
func (doc *MapDocument) WriteJSON(path string) error {
	encoded, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, encoded, 0644)
}
