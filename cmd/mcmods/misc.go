package main

import (
	"bytes"
	"flag"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/tie/mcmods/installer"
)

const pacmcEnv = "MCMODS_PACMC"

// newLogger logs to stderr, or appends to fpath with timestamps when
// it is set.
func newLogger(fpath string, verbose bool) (*log.Logger, func() error, error) {
	var w io.Writer = os.Stderr
	closeFn := func() error { return nil }
	opts := log.Options{Prefix: programName}
	if fpath != "" {
		f, err := os.OpenFile(fpath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0644)
		if err != nil {
			return nil, nil, err
		}
		w, closeFn = f, f.Close
		opts.ReportTimestamp = true
	}
	if verbose {
		opts.Level = log.DebugLevel
	}
	return log.NewWithOptions(w, opts), closeFn, nil
}

// loggerFrom extracts the logger passed to Commander.Execute.
func loggerFrom(args []interface{}) *log.Logger {
	for _, arg := range args {
		if l, ok := arg.(*log.Logger); ok {
			return l
		}
	}
	return log.New(os.Stderr)
}

// parseArgs continues parsing flags that follow positional arguments,
// e.g. "export mods -game-version 1.20.1". Arguments after "--" are
// always positional.
func parseArgs(fs *flag.FlagSet, args []string) ([]string, error) {
	var pos []string
	for len(args) > 0 {
		arg := args[0]
		if arg == "--" {
			pos = append(pos, args[1:]...)
			break
		}
		if arg == "-" || !strings.HasPrefix(arg, "-") {
			pos = append(pos, arg)
			args = args[1:]
			continue
		}
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		rest := fs.Args()
		if n := len(args) - len(rest); n > 0 && args[n-1] == "--" {
			pos = append(pos, rest...)
			break
		}
		args = rest
	}
	return pos, nil
}

func fdinfo(fd int) (istty, color bool) {
	istty = terminal.IsTerminal(fd)
	if istty {
		color = true
	}
	// See https://no-color.org
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		color = false
	}
	return
}

func isTerminal(r interface{}) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	istty, _ := fdinfo(int(f.Fd()))
	return istty
}

func splitLines(b []byte) [][]byte {
	return bytes.Split(b, []byte("\n"))
}

func defaultPacmc() string {
	if p, ok := os.LookupEnv(pacmcEnv); ok && p != "" {
		return p
	}
	return installer.DefaultPacmc
}
