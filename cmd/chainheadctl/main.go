// Command chainheadctl is a small operator tool for inspecting a
// chain-head indexing subsystem database out of band: the current head
// for a wallet, a historical head at a past window, the full historical
// ring, or a chronological window's contents. It plays the same ambient
// role mive's cmd/mive plays for the node proper, trimmed to the single
// subsystem this repository implements.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

const clientIdentifier = "chainheadctl"

var app = cli.NewApp()

func init() {
	app.Name = clientIdentifier
	app.Usage = "inspect a chain-head indexing subsystem database"
	app.Flags = []cli.Flag{dataDirFlag, logFileFlag, verbosityFlag}
	app.Before = setupLogging
	app.Commands = []*cli.Command{
		headCommand,
		headAtCommand,
		ringCommand,
		windowCommand,
	}
}

func main() {
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
