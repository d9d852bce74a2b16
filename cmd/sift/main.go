// Command sift is the CLI entry point for the filesystem search engine.
package main

import (
	"os"

	"github.com/harrison/sift/internal/cmd"
)

// version is the current version of sift, injected at build time via
// -ldflags.
var version = "dev"

func main() {
	cmd.Version = version
	os.Exit(cmd.Execute())
}
