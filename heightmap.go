package earth

import (
	"image"
	"image/png"
	"io"
	"math"
)

// WriteGrayscalePNG writes field as a normalized 8-bit grayscale PNG, the
// legacy heightmap export kept for compatibility and inspection. Each
// elevation is mapped to floor((e-min)/(max-min)*255) and written identically
// into R, G and B with A=255; a flat field normalizes against a range of 1
// instead of dividing by zero. The export is lossy and must not be used as an
// elevation source when a full-precision field is available.
func WriteGrayscalePNG(w io.Writer, field *ElevationField) error {
	lo, hi := field.Range()
	span := hi - lo
	if span == 0 {
		span = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, field.Width, field.Height))
	for i, elevation := range field.Values {
		v := uint8(math.Floor((elevation - lo) / span * 255))
		img.Pix[4*i+0] = v
		img.Pix[4*i+1] = v
		img.Pix[4*i+2] = v
		img.Pix[4*i+3] = 0xff
	}
	return png.Encode(w, img)
}
