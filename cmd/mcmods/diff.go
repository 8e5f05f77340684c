package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/subcommands"
	"github.com/pkg/diff"

	"github.com/tie/mcmods/pack"
	"github.com/tie/mcmods/pack/hclspec"
)

type DiffCommand struct {
	ContextSize int

	Stdout io.Writer
}

func (*DiffCommand) Name() string     { return "diff" }
func (*DiffCommand) Synopsis() string { return "compare two manifests" }
func (*DiffCommand) Usage() string {
	return `Usage: mcmods diff [-c int] <old> <new>

	Prints a unified diff between two manifests. Both are rendered in
	the canonical HCL form first, so JSON and HCL manifests can be
	compared with each other and key order does not matter.

Flags:
`
}

func (cmd *DiffCommand) SetFlags(fs *flag.FlagSet) {
	fs.IntVar(&cmd.ContextSize, "c", 3, "output n lines of diff context")
}

func (cmd *DiffCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	logger := loggerFrom(args)

	paths, err := parseArgs(fs, fs.Args())
	if err != nil {
		logger.Error("parse flags", "err", err)
		return subcommands.ExitUsageError
	}
	if len(paths) != 2 {
		logger.Error("expected two manifest paths", "got", len(paths))
		return subcommands.ExitUsageError
	}

	var srcs [2][]byte
	for i, p := range paths {
		fpath, err := filepath.Abs(p)
		if err != nil {
			logger.Error(fmt.Sprintf("resolve %q", p), "err", err)
			return subcommands.ExitFailure
		}
		m, err := pack.ReadManifestFile(fpath)
		if err != nil {
			logger.Error("diff", "err", err)
			return subcommands.ExitFailure
		}
		srcs[i] = hclspec.Marshal(m)
	}
	if bytes.Equal(srcs[0], srcs[1]) {
		return subcommands.ExitSuccess
	}

	out, color := cmd.stdout()
	aname := fmt.Sprintf("a/%s", filepath.ToSlash(paths[0]))
	bname := fmt.Sprintf("b/%s", filepath.ToSlash(paths[1]))
	opts := []diff.WriteOpt{diff.Names(aname, bname)}
	if color {
		opts = append(opts, diff.TerminalColor())
	}
	a, b := splitLines(srcs[0]), splitLines(srcs[1])
	pair := diff.Bytes(a, b)
	edit := diff.Myers(ctx, pair)
	if cmd.ContextSize >= 0 {
		edit = edit.WithContextSize(cmd.ContextSize)
	}
	if _, err := edit.WriteUnified(out, pair, opts...); err != nil {
		logger.Error("write diff", "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (cmd *DiffCommand) stdout() (w io.Writer, color bool) {
	if cmd.Stdout != nil {
		return cmd.Stdout, false
	}
	_, color = fdinfo(int(os.Stdout.Fd()))
	return os.Stdout, color
}
