package main

import (
	"os"

	"fmgr/cmd/fmgr/cli"
)

var (
	version = "dev"
)

// Entry point for the application
func main() {
	os.Exit(cli.Execute(os.Args[1:], cli.DefaultEnv(), version))
}
