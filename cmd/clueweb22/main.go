// Package main provides the entry point for the clueweb22 CLI tool.
package main

import "github.com/webis-de/clueweb22/cmd/clueweb22/cmd"

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
