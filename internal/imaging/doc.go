// Package imaging provides the raster, codec and compositing primitives used
// to shift image content vertically.
//
// Images are normalized into a Raster, a fixed-layout non-premultiplied RGBA
// buffer whose bounds always start at (0,0). Coordinates follow the usual Go
// convention where (0,0) is the top-left corner, X increases rightward, and Y
// increases downward.
//
// # Shifting
//
// ShiftVertical composites a source raster onto a fully transparent canvas of
// the same size at offset (0, -shift). Source pixels replace destination
// pixels; there is no alpha blending. Positive offsets move content toward
// the top edge, negative offsets toward the bottom. Rows that are not covered
// by the translated source stay (0,0,0,0).
//
// # Codecs
//
// Decoding and encoding are delegated to github.com/disintegration/imaging.
// PNG, JPEG, GIF, TIFF and BMP can be both read and written. WebP can only be
// read; it is reported by LoadImageInfo but cannot be the target of a shift.
// The output format is always chosen from the file extension so a shifted
// file keeps its original container format.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. A Raster is not; callers
// sharing one across goroutines must synchronize writes themselves.
package imaging
