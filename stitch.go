package earth

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Stitch fetches and decodes the 2x2 group of tiles whose top-left tile is
// origin and merges them into one square elevation field of twice the tile
// size. The four fetches run concurrently; if any one fails, the whole stitch
// fails and no partial field is produced. Each tile is copied verbatim into
// its quadrant, so tile-boundary artifacts are possible when source tiles
// differ in data vintage.
func Stitch(ctx context.Context, source TileSource, origin TileCoord) (*ElevationField, error) {
	coords := [4]TileCoord{
		{Z: origin.Z, X: origin.X, Y: origin.Y},
		{Z: origin.Z, X: origin.X + 1, Y: origin.Y},
		{Z: origin.Z, X: origin.X, Y: origin.Y + 1},
		{Z: origin.Z, X: origin.X + 1, Y: origin.Y + 1},
	}

	var fields [4]*ElevationField
	g, ctx := errgroup.WithContext(ctx)
	for i, coord := range coords {
		i, coord := i, coord
		g.Go(func() error {
			img, err := source.Tile(ctx, coord)
			if err != nil {
				return err
			}
			fields[i] = DecodeImage(img)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	tileSize := fields[0].Width
	for i, field := range fields {
		if field.Width != tileSize || field.Height != tileSize {
			return nil, fmt.Errorf("tile %s: dimensions %dx%d do not match %dx%d",
				coords[i], field.Width, field.Height, tileSize, tileSize)
		}
	}

	stitched := NewElevationField(2*tileSize, 2*tileSize)
	for i, field := range fields {
		offsetX := (i % 2) * tileSize
		offsetY := (i / 2) * tileSize
		for row := 0; row < tileSize; row++ {
			src := field.Values[row*tileSize : (row+1)*tileSize]
			dst := (offsetY+row)*stitched.Width + offsetX
			copy(stitched.Values[dst:dst+tileSize], src)
		}
	}
	return stitched, nil
}

// StitchBounds returns the geographic extent of the 2x2 group whose top-left
// tile is origin, spanning the top-left tile's west/north edges to the
// bottom-right tile's east/south edges.
func StitchBounds(origin TileCoord) TileBounds {
	topLeft := origin.Bounds()
	bottomRight := TileCoord{Z: origin.Z, X: origin.X + 1, Y: origin.Y + 1}.Bounds()
	return TileBounds{
		West:  topLeft.West,
		East:  bottomRight.East,
		North: topLeft.North,
		South: bottomRight.South,
	}
}
