// Package main provides the entry point for the trophycase CLI tool.
package main

import (
	"github.com/agentstation/trophycase/cmd/trophycase/cmd"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	cmd.Execute(version, commit, date)
}
