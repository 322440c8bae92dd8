package main

import (
	"io"
	"os"

	"github.com/ethereum/go-ethereum/log"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/urfave/cli/v2"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	logFileFlag = &cli.StringFlag{
		Name:  "log.file",
		Usage: "write logs to this file instead of stderr, rotating at 100MB",
	}
	verbosityFlag = &cli.IntFlag{
		Name:  "verbosity",
		Usage: "logging verbosity: 0=crit, 1=error, 2=warn, 3=info, 4=debug, 5=trace",
		Value: 3,
	}
)

// setupLogging wires chainheadctl's output the way mive's node process
// sets up its own logger: a color-aware terminal handler when stderr is a
// TTY, or a plain handler over a rotating file when --log.file is given.
func setupLogging(ctx *cli.Context) error {
	var writer io.Writer = os.Stderr
	useColor := isatty.IsTerminal(os.Stderr.Fd())

	if file := ctx.String(logFileFlag.Name); file != "" {
		writer = &lumberjack.Logger{
			Filename: file,
			MaxSize:  100,
		}
		useColor = false
	} else if useColor {
		writer = colorable.NewColorable(os.Stderr)
	}

	level := log.FromLegacyLevel(ctx.Int(verbosityFlag.Name))
	handler := log.NewTerminalHandlerWithLevel(writer, level, useColor)
	log.SetDefault(log.NewLogger(handler))
	return nil
}
