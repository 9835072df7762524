// Package build holds build-time version information injected via ldflags.
//
//	go build -ldflags "-X github.com/katalvlaran/elevroute/cmd/elevroute/internal/build.Version=v0.3.0 \
//	  -X github.com/katalvlaran/elevroute/cmd/elevroute/internal/build.Commit=$(git rev-parse --short HEAD)"
package build

import (
	"fmt"
	"runtime"
)

// These variables are set at build time via -ldflags.
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns a formatted version string.
func String() string {
	return fmt.Sprintf("elevroute %s (%s) built %s %s/%s",
		Version, Commit, Date, runtime.GOOS, runtime.GOARCH)
}
