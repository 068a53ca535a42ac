package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ironsheep/image-shift/internal/shifter"
)

const usage = "Usage: image-shift <image_path> <shift_pixels>"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command with args (program name excluded) and returns the
// process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 2 {
		fmt.Fprintln(stdout, usage)
		return 1
	}

	logger := log.New(stderr, "", log.Ldate|log.Ltime|log.Lshortfile)
	debug := os.Getenv("IMAGE_SHIFT_LOG_LEVEL") == "debug"

	imagePath := args[0]
	shiftPixels, err := strconv.Atoi(args[1])
	if err != nil {
		logger.Printf("Invalid shift_pixels %q: %v", args[1], err)
		return 1
	}

	if debug {
		logger.Printf("Shifting %s up by %d px", imagePath, shiftPixels)
	}

	res, err := shifter.ShiftUpAndBackup(imagePath, shiftPixels)
	if err != nil {
		logger.Printf("Shift error: %v", err)
		return 1
	}

	if debug {
		logger.Printf("shifted %s by %dpx (%dx%d %s), backup at %s",
			res.Path, res.Shift, res.Width, res.Height, res.Format, res.BackupPath)
	}
	return 0
}
