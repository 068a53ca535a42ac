package imaging

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// Raster is a width x height grid of non-premultiplied RGBA pixels.
//
// The pixel data lives in a single *image.NRGBA whose bounds start at the
// origin, so (x, y) always addresses column x and row y directly.
type Raster struct {
	img *image.NRGBA
}

// NewRaster returns a raster of the given size with every pixel set to
// transparent black (0,0,0,0).
func NewRaster(width, height int) *Raster {
	return &Raster{img: imaging.New(width, height, color.NRGBA{})}
}

// FromImage copies img into a new raster, converting it to NRGBA and moving
// its bounds to the origin. Images without an alpha channel become fully
// opaque.
func FromImage(img image.Image) *Raster {
	return &Raster{img: imaging.Clone(img)}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int {
	return r.img.Bounds().Dx()
}

// Height returns the raster height in pixels.
func (r *Raster) Height() int {
	return r.img.Bounds().Dy()
}

// At returns the pixel at (x, y). Coordinates outside the raster yield
// transparent black.
func (r *Raster) At(x, y int) color.NRGBA {
	return r.img.NRGBAAt(x, y)
}

// Set replaces the pixel at (x, y). Coordinates outside the raster are ignored.
func (r *Raster) Set(x, y int, c color.NRGBA) {
	r.img.SetNRGBA(x, y, c)
}

// Image exposes the underlying buffer for encoding. Mutating it mutates the raster.
func (r *Raster) Image() *image.NRGBA {
	return r.img
}

// RowTransparent reports whether every pixel in row y has zero alpha.
func (r *Raster) RowTransparent(y int) bool {
	for x := 0; x < r.Width(); x++ {
		if r.At(x, y).A != 0 {
			return false
		}
	}
	return true
}
