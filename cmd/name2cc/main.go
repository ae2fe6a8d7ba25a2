// name2cc is a CLI tool that resolves country codes and localized country
// names to country records.
package main

import (
	"github.com/hightemp/name2cc/internal/cli"
)

// Build information (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

func main() {
	cli.Version = version
	cli.Commit = commit
	cli.BuildTime = buildTime
	cli.Execute()
}
