package earth

// A WaterDepthSynthesizer manufactures a smooth underwater slope from the
// abrupt 0m cutoff that decoded terrain has at coastlines, so rendered water
// does not sit flush against a vertical cliff. Cells at or below sea level
// are masked as water, reset to 0, then iteratively deepened away from the
// shoreline and smoothed.
type WaterDepthSynthesizer struct {
	deepenPasses int
	deepenStep   float64
	smoothPasses int
}

// A WaterDepthOption sets an option on a WaterDepthSynthesizer.
type WaterDepthOption func(*WaterDepthSynthesizer)

// NewWaterDepthSynthesizer returns a new WaterDepthSynthesizer with the given
// options. The defaults are 100 deepening passes of 1m and 10 smoothing
// passes.
func NewWaterDepthSynthesizer(options ...WaterDepthOption) *WaterDepthSynthesizer {
	s := &WaterDepthSynthesizer{
		deepenPasses: 100,
		deepenStep:   1,
		smoothPasses: 10,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func WithDeepenPasses(passes int) WaterDepthOption {
	return func(s *WaterDepthSynthesizer) {
		s.deepenPasses = passes
	}
}

func WithDeepenStep(step float64) WaterDepthOption {
	return func(s *WaterDepthSynthesizer) {
		s.deepenStep = step
	}
}

func WithSmoothPasses(passes int) WaterDepthOption {
	return func(s *WaterDepthSynthesizer) {
		s.smoothPasses = passes
	}
}

// Synthesize mutates field in place and returns the water mask. The mask is
// fixed before synthesis begins: a cell is water iff its elevation is at most
// 0 at that moment, and the classification never changes afterwards. Land
// cells are never touched. Output is deterministic for identical input.
func (s *WaterDepthSynthesizer) Synthesize(field *ElevationField) *WaterMask {
	if len(field.Values) != field.Width*field.Height {
		panic("earth: elevation field length does not match dimensions")
	}
	mask := &WaterMask{
		Width:   field.Width,
		Height:  field.Height,
		IsWater: make([]bool, len(field.Values)),
	}
	for i, v := range field.Values {
		if v <= 0 {
			mask.IsWater[i] = true
			field.Values[i] = 0
		}
	}
	for p := 0; p < s.deepenPasses; p++ {
		s.deepen(field, mask)
	}
	for p := 0; p < s.smoothPasses; p++ {
		s.smooth(field, mask)
	}
	return mask
}

// deepen lowers, in raster order, every water cell with no strictly higher
// neighbor. Passes see live, partially-updated values, so deepening
// propagates outward from the shoreline over successive passes; interior
// basins deepen fastest since nothing blocks them once their shoreline
// neighbors stop changing.
func (s *WaterDepthSynthesizer) deepen(field *ElevationField, mask *WaterMask) {
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			i := y*field.Width + x
			if !mask.IsWater[i] {
				continue
			}
			v := field.Values[i]
			blocked := false
			for _, j := range neighborIndexes(field.Width, field.Height, x, y) {
				if field.Values[j] > v {
					blocked = true
					break
				}
			}
			if !blocked {
				field.Values[i] = v - s.deepenStep
			}
		}
	}
}

// smooth replaces every water cell with the mean of itself and its in-bounds
// water neighbors, computed from a snapshot taken at the start of the pass so
// that updates within one pass do not see each other. Land cells are neither
// modified nor averaged in; averaging them would pull shoreline water above
// sea level.
func (s *WaterDepthSynthesizer) smooth(field *ElevationField, mask *WaterMask) {
	snapshot := make([]float64, len(field.Values))
	copy(snapshot, field.Values)
	for y := 0; y < field.Height; y++ {
		for x := 0; x < field.Width; x++ {
			i := y*field.Width + x
			if !mask.IsWater[i] {
				continue
			}
			sum := snapshot[i]
			count := 1
			for _, j := range neighborIndexes(field.Width, field.Height, x, y) {
				if !mask.IsWater[j] {
					continue
				}
				sum += snapshot[j]
				count++
			}
			field.Values[i] = sum / float64(count)
		}
	}
}

// neighborIndexes returns the flat indexes of the up-to-8 in-bounds grid
// neighbors of (x, y).
func neighborIndexes(width, height, x, y int) []int {
	indexes := make([]int, 0, 8)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny := x+dx, y+dy
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			indexes = append(indexes, ny*width+nx)
		}
	}
	return indexes
}
