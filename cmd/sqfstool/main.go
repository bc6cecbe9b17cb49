// Copyright IBM Corp. 2023, 2025

package main

import "github.com/fwscan/go-sqfstool/cmd"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// main start the sqfstool cli
func main() {
	cmd.Run(version, commit, date)
}
