// bmpresize resizes uncompressed BMP images with a selectable resampling
// kernel, streaming rows so large images never sit in memory whole.
package main

import (
	"os"

	"github.com/adriansahlman/resample/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
