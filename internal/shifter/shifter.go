package shifter

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ironsheep/image-shift/internal/fileutil"
	"github.com/ironsheep/image-shift/internal/imaging"
)

// BackupSuffix is appended to an image path to form its backup path.
const BackupSuffix = ".bak"

// Errors returned by ShiftUpAndBackup, one per failure phase. The returned
// error wraps both the sentinel and the underlying cause.
var (
	// ErrUnsupportedFormat means the file extension has no encoder. Nothing
	// was written.
	ErrUnsupportedFormat = errors.New("unsupported image format")

	// ErrDecode means the image could not be read or decoded. Nothing was
	// written.
	ErrDecode = errors.New("decode failed")

	// ErrBackup means the backup copy failed. The original file and any
	// previous backup are unchanged.
	ErrBackup = errors.New("backup failed")

	// ErrEncode means the shifted image could not be written. The backup
	// already holds the pre-shift bytes; the original file is unchanged.
	ErrEncode = errors.New("encode failed")
)

// encodeImage is replaced in tests to simulate encoder failures.
var encodeImage = imaging.Encode

// Result describes a completed shift.
type Result struct {
	Path       string `json:"path"`
	BackupPath string `json:"backup_path"`
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Shift      int    `json:"shift"`
	Format     string `json:"format"`
}

// BackupPath returns the path the backup of imagePath is written to.
func BackupPath(imagePath string) string {
	return imagePath + BackupSuffix
}

// ShiftUpAndBackup moves the content of the image at imagePath up by
// shiftPixels rows, backs the file up to BackupPath(imagePath), and
// overwrites imagePath with the shifted image in its original format.
//
// Negative offsets move content down. Offsets at or beyond the image height
// are legal and produce a fully transparent image. Exposed rows are always
// transparent black, whatever the source format; formats without alpha
// (JPEG, BMP) flatten them on encode.
func ShiftUpAndBackup(imagePath string, shiftPixels int) (*Result, error) {
	format, err := imaging.FormatFor(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrUnsupportedFormat, imagePath, err)
	}

	src, err := imaging.Decode(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, imagePath, err)
	}

	info, err := os.Stat(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, imagePath, err)
	}

	// Replace the file a symlink points at, not the link itself.
	target, err := filepath.EvalSymlinks(imagePath)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, imagePath, err)
	}

	shifted := imaging.ShiftVertical(src, shiftPixels)

	backupPath := BackupPath(imagePath)
	if err := fileutil.CopyFile(imagePath, backupPath); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrBackup, backupPath, err)
	}

	err = fileutil.WriteFileAtomic(target, info.Mode().Perm(), func(w io.Writer) error {
		return encodeImage(w, shifted, format)
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrEncode, imagePath, err)
	}

	return &Result{
		Path:       imagePath,
		BackupPath: backupPath,
		Width:      shifted.Width(),
		Height:     shifted.Height(),
		Shift:      shiftPixels,
		Format:     imaging.FormatName(format),
	}, nil
}
