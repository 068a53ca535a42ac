// Package fileutil holds the small set of file operations the shifter needs:
// metadata-preserving copies and durable whole-file replacement.
//
// Every write goes to a temporary file in the destination directory, is
// synced to disk, and is then renamed over the destination. Readers therefore
// observe either the previous content or the new content, never a partially
// written file. Renaming replaces the directory entry, so hard links to the
// old file keep pointing at the old content.
package fileutil
