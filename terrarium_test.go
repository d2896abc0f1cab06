package earth_test

import (
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/magnificus/earth"
)

func TestDecodeTerrarium(t *testing.T) {
	for _, tc := range []struct {
		name     string
		rgb      [3]byte
		expected float64
	}{
		{name: "sea_level", rgb: [3]byte{128, 0, 0}, expected: 0},
		{name: "minimum", rgb: [3]byte{0, 0, 0}, expected: -32768},
		{name: "one_meter", rgb: [3]byte{128, 1, 0}, expected: 1},
		{name: "fractional", rgb: [3]byte{128, 0, 64}, expected: 0.25},
		{name: "everest", rgb: [3]byte{162, 152, 0}, expected: 8856},
	} {
		t.Run(tc.name, func(t *testing.T) {
			pix := []byte{tc.rgb[0], tc.rgb[1], tc.rgb[2], 0xff}
			field := earth.DecodeTerrarium(pix, 1, 1)
			assert.Equal(t, 1, field.Width)
			assert.Equal(t, 1, field.Height)
			assert.Equal(t, tc.expected, field.Values[0])
		})
	}
}

func TestDecodeTerrariumRowMajor(t *testing.T) {
	// 2x2 buffer with distinct G channels; index i = row*width + col.
	pix := []byte{
		128, 0, 0, 0xff, 128, 1, 0, 0xff,
		128, 2, 0, 0xff, 128, 3, 0, 0xff,
	}
	field := earth.DecodeTerrarium(pix, 2, 2)
	assert.Equal(t, []float64{0, 1, 2, 3}, field.Values)
	assert.Equal(t, 3.0, field.At(1, 1))
}

func TestDecodeTerrariumContractViolation(t *testing.T) {
	assert.Panics(t, func() {
		earth.DecodeTerrarium(make([]byte, 15), 2, 2)
	})
}

func TestEncodeTerrariumRoundTrip(t *testing.T) {
	field := earth.NewElevationField(3, 2)
	field.Values = []float64{0, -32768, 1, 0.25, 8856, -11000}
	decoded := earth.DecodeImage(earth.EncodeTerrarium(field))
	assert.Equal(t, field.Values, decoded.Values)
}
