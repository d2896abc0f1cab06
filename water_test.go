package earth_test

import (
	"slices"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/magnificus/earth"
)

func TestSynthesizeMasksAndResetsWater(t *testing.T) {
	field := earth.NewElevationField(3, 1)
	field.Values = []float64{-5, 0, 12}
	synthesizer := earth.NewWaterDepthSynthesizer(
		earth.WithDeepenPasses(0),
		earth.WithSmoothPasses(0),
	)
	mask := synthesizer.Synthesize(field)
	assert.Equal(t, []bool{true, true, false}, mask.IsWater)
	assert.Equal(t, []float64{0, 0, 12}, field.Values)
}

func TestSynthesizeHoldsWaterNearHigherGround(t *testing.T) {
	// A single sea-level corner in otherwise high land: its only in-grid
	// neighbors are all higher, so one deepening pass must leave it at 0.
	field := earth.NewElevationField(4, 4)
	for i := range field.Values {
		field.Values[i] = 100
	}
	field.Set(0, 0, 0)
	synthesizer := earth.NewWaterDepthSynthesizer(
		earth.WithDeepenPasses(1),
		earth.WithSmoothPasses(0),
	)
	mask := synthesizer.Synthesize(field)
	assert.True(t, mask.IsWater[0])
	assert.Equal(t, 0.0, field.At(0, 0))
}

func TestSynthesizeDeepensOpenWater(t *testing.T) {
	// All-water field: nothing ever blocks deepening, so every cell drops by
	// step on every pass.
	field := earth.NewElevationField(3, 3)
	synthesizer := earth.NewWaterDepthSynthesizer(
		earth.WithDeepenPasses(7),
		earth.WithDeepenStep(2),
		earth.WithSmoothPasses(0),
	)
	synthesizer.Synthesize(field)
	for _, v := range field.Values {
		assert.Equal(t, -14.0, v)
	}
}

func TestSynthesizeGradientFromShore(t *testing.T) {
	// A land column on the left and water stretching right: depth must
	// increase monotonically with distance from shore.
	field := earth.NewElevationField(8, 3)
	for y := 0; y < 3; y++ {
		field.Set(0, y, 50)
		for x := 1; x < 8; x++ {
			field.Set(x, y, -1)
		}
	}
	synthesizer := earth.NewWaterDepthSynthesizer(
		earth.WithDeepenPasses(20),
		earth.WithSmoothPasses(0),
	)
	synthesizer.Synthesize(field)
	for x := 1; x < 7; x++ {
		assert.True(t, field.At(x, 1) >= field.At(x+1, 1))
	}
	assert.Equal(t, 0.0, field.At(1, 1))
	assert.True(t, field.At(7, 1) < field.At(2, 1))
}

func TestSynthesizeInvariants(t *testing.T) {
	field := earth.NewElevationField(6, 6)
	values := []float64{
		30, 20, 10, 0, -2, -5,
		25, 15, 5, -1, -4, -8,
		20, 10, 0, -3, -6, -9,
		10, 5, -2, -5, -8, -12,
		5, 0, -4, -7, -10, -14,
		2, -1, -5, -9, -12, -16,
	}
	copy(field.Values, values)
	before := slices.Clone(field.Values)

	const passes, step, smoothPasses = 25, 1.5, 4
	synthesizer := earth.NewWaterDepthSynthesizer(
		earth.WithDeepenPasses(passes),
		earth.WithDeepenStep(step),
		earth.WithSmoothPasses(smoothPasses),
	)
	mask := synthesizer.Synthesize(field)

	for i, isWater := range mask.IsWater {
		if isWater {
			assert.True(t, before[i] <= 0)
			assert.True(t, field.Values[i] <= 0)
			assert.True(t, field.Values[i] >= -(passes*step))
		} else {
			assert.True(t, before[i] > 0)
			assert.Equal(t, before[i], field.Values[i])
		}
	}
}

func TestSynthesizeDeterministic(t *testing.T) {
	build := func() *earth.ElevationField {
		field := earth.NewElevationField(5, 5)
		for i := range field.Values {
			field.Values[i] = float64(i%7) - 3
		}
		return field
	}
	a, b := build(), build()
	earth.NewWaterDepthSynthesizer().Synthesize(a)
	earth.NewWaterDepthSynthesizer().Synthesize(b)
	assert.Equal(t, a.Values, b.Values)
}

func TestSmoothingPreservesMask(t *testing.T) {
	field := earth.NewElevationField(4, 4)
	for i := range field.Values {
		if i%3 == 0 {
			field.Values[i] = -float64(i)
		} else {
			field.Values[i] = 10
		}
	}
	synthesizer := earth.NewWaterDepthSynthesizer(
		earth.WithDeepenPasses(0),
		earth.WithSmoothPasses(5),
	)
	mask := synthesizer.Synthesize(field)
	for i, isWater := range mask.IsWater {
		if isWater {
			assert.True(t, field.Values[i] <= 0)
		} else {
			assert.Equal(t, 10.0, field.Values[i])
		}
	}
}
