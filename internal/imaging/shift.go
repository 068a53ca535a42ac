package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// ShiftVertical returns a new raster of the same size as src with its content
// moved up by shift pixels (down when shift is negative).
//
// The result starts as a fully transparent canvas and src is pasted onto it at
// (0, -shift) with replace semantics: translated pixels overwrite the canvas
// as-is, pixels that fall outside the bounds are dropped, and uncovered pixels
// keep (0,0,0,0). Any |shift| >= height produces an entirely transparent
// raster. src is not modified.
func ShiftVertical(src *Raster, shift int) *Raster {
	w, h := src.Width(), src.Height()
	canvas := NewRaster(w, h)

	// Also guards the offset arithmetic in Paste against overflow.
	if shift >= h || shift <= -h {
		return canvas
	}

	return &Raster{img: imaging.Paste(canvas.img, src.img, image.Pt(0, -shift))}
}
