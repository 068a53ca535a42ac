package fileutil

import (
	"fmt"
	"io"
	"os"
	"time"
)

// CopyFile duplicates the regular file src at dst, replacing dst if it exists.
//
// The content is copied byte for byte. Permission bits and the modification
// time are carried over on a best-effort basis: a failure to restore the
// timestamp does not fail the copy. Ownership and extended attributes are not
// copied.
func CopyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open source: %w", err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat source: %w", err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot copy %s: not a regular file", src)
	}

	err = WriteFileAtomic(dst, info.Mode().Perm(), func(w io.Writer) error {
		if _, err := io.Copy(w, in); err != nil {
			return fmt.Errorf("failed to copy %s: %w", src, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	// Zero access time leaves it unchanged.
	_ = os.Chtimes(dst, time.Time{}, info.ModTime())
	return nil
}
