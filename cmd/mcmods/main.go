package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

const programName = "mcmods"

func main() {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.Bool("h", false, "alias for help")
	fs.Bool("help", false, "print usage")

	var logPath string
	var verbose bool
	fs.StringVar(&logPath, "log", "", "log output to a file")
	fs.StringVar(&logPath, "l", "", "alias for -log")
	fs.BoolVar(&verbose, "v", false, "enable debug logging")

	cdr := subcommands.NewCommander(fs, programName)
	cdr.Register(&ExportCommand{}, "")
	cdr.Register(&ImportCommand{}, "")
	cdr.Register(&DiffCommand{}, "")
	cdr.Register(cdr.HelpCommand(), "help")
	cdr.Register(cdr.FlagsCommand(), "help")
	cdr.Register(cdr.CommandsCommand(), "help")

	if err := fs.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	logger, closeLog, err := newLogger(logPath, verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log %q: %+v\n", logPath, err)
		os.Exit(1)
	}

	ctx := context.Background()
	rc := cdr.Execute(ctx, logger)
	if err := closeLog(); err != nil {
		fmt.Fprintf(os.Stderr, "close log %q: %+v\n", logPath, err)
	}
	switch rc {
	case subcommands.ExitFailure:
		os.Exit(1)
	case subcommands.ExitUsageError:
		os.Exit(2)
	}
}
