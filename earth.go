// Package earth turns real-world elevation data for a geographic point into a
// dense height field suitable for driving a 3D terrain mesh. The pipeline maps
// a latitude/longitude to slippy-map tiles, fetches and decodes
// terrarium-encoded elevation tiles, stitches a 2x2 neighborhood around the
// point, synthesizes plausible water depth at coastlines, and exposes bilinear
// sampling for arbitrary mesh resolutions.
package earth

import (
	"context"
	"fmt"
	"image"
)

// A TileCoord is a slippy-map tile coordinate.
type TileCoord struct {
	Z int // Zoom level.
	X int // Column, in [0, 2^Z).
	Y int // Row, in [0, 2^Z).
}

func (c TileCoord) String() string {
	return fmt.Sprintf("%d/%d/%d", c.Z, c.X, c.Y)
}

// A TileBounds is the geographic extent of a tile, in degrees.
type TileBounds struct {
	West  float64
	East  float64
	North float64
	South float64
}

// An ElevationField is a dense row-major grid of elevations in meters.
type ElevationField struct {
	Width  int
	Height int
	Values []float64
}

// NewElevationField returns a zeroed field of the given dimensions.
func NewElevationField(width, height int) *ElevationField {
	return &ElevationField{
		Width:  width,
		Height: height,
		Values: make([]float64, width*height),
	}
}

// At returns the elevation at column x, row y.
func (f *ElevationField) At(x, y int) float64 {
	return f.Values[y*f.Width+x]
}

// Set sets the elevation at column x, row y.
func (f *ElevationField) Set(x, y int, elevation float64) {
	f.Values[y*f.Width+x] = elevation
}

// Range returns the minimum and maximum elevation in f. It panics if f is
// empty.
func (f *ElevationField) Range() (float64, float64) {
	if len(f.Values) == 0 {
		panic("earth: empty elevation field")
	}
	lo, hi := f.Values[0], f.Values[0]
	for _, v := range f.Values[1:] {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	return lo, hi
}

// A WaterMask records which cells of a field were at or below sea level when
// water depth synthesis began. It is fixed at that moment and never
// recomputed.
type WaterMask struct {
	Width   int
	Height  int
	IsWater []bool
}

// A TerrainResult is the pipeline's output: the processed elevation field,
// its bounds, and the originating tile. GroundWidthMeters and
// GroundHeightMeters are populated only by the stitched-and-centered path;
// they are zero for single-tile results.
type TerrainResult struct {
	Field              *ElevationField
	MinElevation       float64
	MaxElevation       float64
	Tile               TileCoord
	GroundWidthMeters  float64
	GroundHeightMeters float64
}

// A TileSource fetches a single tile image. Implementations must return a
// *TileLoadError (possibly wrapped) on failure so callers can identify the
// failing tile.
type TileSource interface {
	Tile(ctx context.Context, coord TileCoord) (*image.RGBA, error)
}

// A TileLoadError reports a failed fetch or decode of a single tile.
type TileLoadError struct {
	Coord TileCoord
	Err   error
}

func (e *TileLoadError) Error() string {
	return fmt.Sprintf("load tile %s: %v", e.Coord, e.Err)
}

func (e *TileLoadError) Unwrap() error {
	return e.Err
}
