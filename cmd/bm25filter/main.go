// cmd/bm25filter/main.go
package main

import (
	cmd "github.com/mwiater/bm25filter/internal/commands"
)

// Build-time variables injected with -ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	setVersionInfo = cmd.SetVersionInfo
	executeCmd     = cmd.Execute
)

// main starts the bm25filter CLI by injecting build metadata and delegating
// to the cobra root command.
func main() {
	setVersionInfo(version, commit, date)
	executeCmd()
}
