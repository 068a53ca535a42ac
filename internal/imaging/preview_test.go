package imaging

import (
	"bytes"
	"encoding/base64"
	"image/color"
	"image/png"
	"testing"
)

func TestShiftPreview(t *testing.T) {
	img := stripedImage(10, 8)

	result, err := ShiftPreview(img, 2, 1.0)
	if err != nil {
		t.Fatalf("ShiftPreview failed: %v", err)
	}

	if result.Width != 10 || result.Height != 8 {
		t.Errorf("dimensions: got %dx%d, want 10x8", result.Width, result.Height)
	}
	if result.MimeType != "image/png" {
		t.Errorf("MimeType: got %s, want image/png", result.MimeType)
	}
	if result.Shift != 2 {
		t.Errorf("Shift: got %d, want 2", result.Shift)
	}

	data, err := base64.StdEncoding.DecodeString(result.ImageBase64)
	if err != nil {
		t.Fatalf("failed to decode base64: %v", err)
	}
	decoded, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("failed to decode PNG: %v", err)
	}

	got := FromImage(decoded)
	c := img.RGBAAt(0, 2)
	if got.At(0, 0) != (color.NRGBA{c.R, c.G, c.B, c.A}) {
		t.Errorf("row 0: got %v, want source row 2 %v", got.At(0, 0), c)
	}
	for _, y := range []int{6, 7} {
		if !got.RowTransparent(y) {
			t.Errorf("row %d should be transparent", y)
		}
	}
}

func TestShiftPreview_Scale(t *testing.T) {
	img := createInMemoryImage(100, 60, color.RGBA{255, 0, 0, 255})

	result, err := ShiftPreview(img, 10, 0.5)
	if err != nil {
		t.Fatalf("ShiftPreview with scale failed: %v", err)
	}

	if result.Width != 50 || result.Height != 30 {
		t.Errorf("scaled dimensions: got %dx%d, want 50x30", result.Width, result.Height)
	}
}

func TestShiftPreview_InvalidScale(t *testing.T) {
	img := createInMemoryImage(10, 10, color.RGBA{255, 0, 0, 255})

	if _, err := ShiftPreview(img, 1, -1); err == nil {
		t.Error("ShiftPreview should fail for negative scale")
	}
	if _, err := ShiftPreview(img, 1, 0.01); err == nil {
		t.Error("ShiftPreview should fail when scale collapses the image")
	}
}
