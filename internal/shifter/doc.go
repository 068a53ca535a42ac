// Package shifter moves the content of an image file up (or down) in place
// while keeping a backup of the previous file.
//
// A shift runs in a fixed order:
//
//  1. the output format is resolved from the file extension
//  2. the file is decoded
//  3. a transparent canvas of the same size receives the source at (0, -n)
//  4. the original bytes are copied to <path>.bak
//  5. the shifted raster is encoded over <path>
//
// Steps 4 and 5 each replace their target atomically, so the backup is
// durable before the original is touched and a failed overwrite leaves the
// original intact. Steps 1-3 never modify the filesystem.
//
// Backups are not versioned. Shifting the same file twice leaves the output
// of the first shift in <path>.bak.
package shifter
