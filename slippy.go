package earth

import "math"

const metersPerDegreeLatitude = 111320

// TileForLatLon returns the tile containing the given coordinate at the given
// zoom level. Latitudes outside the Web-Mercator-projectable range
// (|lat| >= ~85.05 degrees) produce undefined results.
func TileForLatLon(lat, lon float64, zoom int) TileCoord {
	fx, fy := TileFractional(lat, lon, zoom)
	return TileCoord{
		Z: zoom,
		X: int(math.Floor(fx)),
		Y: int(math.Floor(fy)),
	}
}

// TileFractional returns the continuous tile-space position of the given
// coordinate. The integer parts are the containing tile's indices; the
// fractional parts are the position within that tile.
func TileFractional(lat, lon float64, zoom int) (float64, float64) {
	n := float64(int(1) << zoom)
	fx := (lon + 180) / 360 * n
	fy := (1 - math.Asinh(math.Tan(lat*math.Pi/180))/math.Pi) / 2 * n
	return fx, fy
}

// Bounds returns c's geographic extent.
func (c TileCoord) Bounds() TileBounds {
	n := float64(int(1) << c.Z)
	return TileBounds{
		West:  float64(c.X)/n*360 - 180,
		East:  float64(c.X+1)/n*360 - 180,
		North: tileEdgeLatitude(float64(c.Y), n),
		South: tileEdgeLatitude(float64(c.Y+1), n),
	}
}

func tileEdgeLatitude(y, n float64) float64 {
	return math.Atan(math.Sinh(math.Pi*(1-2*y/n))) * 180 / math.Pi
}

// SizeMeters returns b's approximate ground extent using an equirectangular
// approximation at b's mid latitude. Acceptable for spans of a few tens of
// kilometers, not for global distances.
func (b TileBounds) SizeMeters() (float64, float64) {
	midLat := (b.North + b.South) / 2 * math.Pi / 180
	width := (b.East - b.West) * metersPerDegreeLatitude * math.Cos(midLat)
	height := (b.North - b.South) * metersPerDegreeLatitude
	return width, height
}

// stitchOrigin returns the top-left tile of the 2x2 group whose stitched
// square contains the target coordinate within its central 50% on each axis.
func stitchOrigin(lat, lon float64, zoom int) TileCoord {
	fx, fy := TileFractional(lat, lon, zoom)
	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	if fx-math.Floor(fx) < 0.5 {
		x--
	}
	if fy-math.Floor(fy) < 0.5 {
		y--
	}
	return TileCoord{Z: zoom, X: x, Y: y}
}
