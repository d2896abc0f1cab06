package earth

import (
	"image"

	"golang.org/x/image/draw"
)

// terrariumOffset is the fixed-point offset of the terrarium encoding,
// covering roughly -11km to +21km at ~1/256m vertical resolution.
const terrariumOffset = 32768

// DecodeTerrarium decodes a terrarium-encoded RGBA8 pixel buffer into an
// elevation field. Decoding is total and deterministic; the same bytes always
// yield the same elevations. It panics if len(pix) != width*height*4.
func DecodeTerrarium(pix []byte, width, height int) *ElevationField {
	if len(pix) != width*height*4 {
		panic("earth: pixel buffer length does not match dimensions")
	}
	field := NewElevationField(width, height)
	for i := range field.Values {
		r := float64(pix[4*i+0])
		g := float64(pix[4*i+1])
		b := float64(pix[4*i+2])
		field.Values[i] = r*256 + g + b/256 - terrariumOffset
	}
	return field
}

// DecodeImage decodes a terrarium-encoded tile image into an elevation field.
func DecodeImage(img image.Image) *ElevationField {
	rgba := ensureRGBA(img)
	size := rgba.Bounds().Size()
	return DecodeTerrarium(rgba.Pix, size.X, size.Y)
}

// EncodeTerrarium encodes an elevation field as a terrarium tile image,
// the exact inverse of DecodeTerrarium up to the encoding's ~1/256m
// resolution. Elevations outside the encodable range are clamped.
func EncodeTerrarium(field *ElevationField) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, field.Width, field.Height))
	for i, elevation := range field.Values {
		v := (elevation + terrariumOffset) * 256
		if v < 0 {
			v = 0
		}
		if v > 0xffffff {
			v = 0xffffff
		}
		u := uint32(v)
		img.Pix[4*i+0] = uint8(u >> 16)
		img.Pix[4*i+1] = uint8(u >> 8)
		img.Pix[4*i+2] = uint8(u)
		img.Pix[4*i+3] = 0xff
	}
	return img
}

// ensureRGBA returns img as an *image.RGBA, copying only if necessary.
func ensureRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok && rgba.Stride == 4*rgba.Bounds().Dx() && rgba.Bounds().Min == (image.Point{}) {
		return rgba
	}
	rgba := image.NewRGBA(image.Rect(0, 0, img.Bounds().Dx(), img.Bounds().Dy()))
	draw.Copy(rgba, image.Point{}, img, img.Bounds(), draw.Src, nil)
	return rgba
}
