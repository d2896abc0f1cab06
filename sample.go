package earth

import "math"

// SampleBilinear returns the bilinearly interpolated elevation at the
// continuous grid position (px, py). The four surrounding cells are
// edge-clamped, never wrapped, so sampling is exact at integer positions and
// linear elsewhere.
func (f *ElevationField) SampleBilinear(px, py float64) float64 {
	x0 := int(math.Floor(px))
	y0 := int(math.Floor(py))
	x1 := min(x0+1, f.Width-1)
	y1 := min(y0+1, f.Height-1)
	fx := px - float64(x0)
	fy := py - float64(y0)
	return 0 +
		f.At(x0, y0)*(1-fx)*(1-fy) +
		f.At(x1, y0)*fx*(1-fy) +
		f.At(x0, y1)*(1-fx)*fy +
		f.At(x1, y1)*fx*fy
}

// SampleNormalized returns the interpolated elevation at the normalized
// position (u, v) in [0,1]x[0,1], mapped to continuous field coordinates
// (u*(width-1), v*(height-1)).
func (f *ElevationField) SampleNormalized(u, v float64) float64 {
	return f.SampleBilinear(u*float64(f.Width-1), v*float64(f.Height-1))
}

// SampleGrid resamples f onto a mesh of (subdivisions+1) vertices per side
// and returns the vertex elevations in row-major order. The consumer divides
// these meters by its meters-per-scene-unit factor before writing them into
// mesh vertices.
func (f *ElevationField) SampleGrid(subdivisions int) []float64 {
	if subdivisions < 1 {
		panic("earth: subdivisions must be at least 1")
	}
	side := subdivisions + 1
	samples := make([]float64, side*side)
	for row := 0; row < side; row++ {
		v := float64(row) / float64(subdivisions)
		for col := 0; col < side; col++ {
			u := float64(col) / float64(subdivisions)
			samples[row*side+col] = f.SampleNormalized(u, v)
		}
	}
	return samples
}
