package imaging

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/disintegration/imaging"
)

// Format identifies an encodable container format.
type Format = imaging.Format

// FormatFor returns the encoder format implied by path's extension.
//
// The extension is matched case-insensitively; ".jpg" and ".jpeg" both map to
// JPEG and ".tif"/".tiff" to TIFF. Extensions without an encoder (including
// ".webp") return imaging.ErrUnsupportedFormat.
func FormatFor(path string) (Format, error) {
	return imaging.FormatFromFilename(path)
}

// FormatName returns the lower-case name of f, e.g. "png" or "jpeg".
func FormatName(f Format) string {
	return strings.ToLower(f.String())
}

// Decode reads and decodes the image file at path into a raster.
//
// EXIF orientation is deliberately not applied so the stored pixel grid is
// shifted exactly as it appears in the file.
func Decode(path string) (*Raster, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return FromImage(img), nil
}

// Encode writes r to w in the given format.
func Encode(w io.Writer, r *Raster, format Format) error {
	bw := bufio.NewWriter(w)
	if err := imaging.Encode(bw, r.img, format); err != nil {
		return fmt.Errorf("failed to encode %s image: %w", FormatName(format), err)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write %s image: %w", FormatName(format), err)
	}
	return nil
}
