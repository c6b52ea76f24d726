// Package buildinfo exposes the version metadata stamped into the binary
// at link time.
package buildinfo

import (
	"fmt"
	"io"
)

// Set via -ldflags "-X", e.g.
//
//	go build -ldflags "-X github.com/ekalnins/campustrade/internal/buildinfo.Version=1.0.0"
var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// PrintBuildData writes the build stamp to w.
func PrintBuildData(w io.Writer) {
	fmt.Fprintf(w, "Build version: %s\n", Version)
	fmt.Fprintf(w, "Build date: %s\n", Date)
	fmt.Fprintf(w, "Build commit: %s\n", Commit)
}
