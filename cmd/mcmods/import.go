package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"

	"github.com/google/subcommands"

	"github.com/tie/mcmods/installer"
	"github.com/tie/mcmods/opener"
	"github.com/tie/mcmods/pack"
	"github.com/tie/mcmods/prompt"
)

type ImportCommand struct {
	Yes        bool
	Pacmc      string
	PrintLinks bool

	Runner opener.Runner
	GOOS   string
	Stdin  io.Reader
	Stdout io.Writer
}

func (*ImportCommand) Name() string     { return "import" }
func (*ImportCommand) Synopsis() string { return "install mods from a manifest" }
func (*ImportCommand) Usage() string {
	return `Usage: mcmods import [-yes] [-pacmc path] [-print-links=true] <file_path>

	Reinstalls the mods listed in a manifest. Mods tracked by pacmc are
	installed with a single "pacmc install" call, manual and direct
	download links are opened in the default browser. Every step asks
	for confirmation first; answer "n" to skip it.

	Direct download links are opened whenever the manifest has http_dl
	entries. Older releases only offered them when manual entries were
	present as well.

	Manifests ending in .hcl or .pack are read as HCL, anything else
	as JSON.

Flags:
`
}

func (cmd *ImportCommand) SetFlags(fs *flag.FlagSet) {
	fs.BoolVar(&cmd.Yes, "yes", false, "assume yes to all prompts")
	fs.BoolVar(&cmd.Yes, "y", false, "alias for -yes")
	fs.StringVar(&cmd.Pacmc, "pacmc", defaultPacmc(), "pacmc executable (env "+pacmcEnv+")")
	fs.BoolVar(&cmd.PrintLinks, "print-links", true, "print links when the browser cannot be opened on this OS")
}

func (cmd *ImportCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	logger := loggerFrom(args)

	paths, err := parseArgs(fs, fs.Args())
	if err != nil {
		logger.Error("parse flags", "err", err)
		return subcommands.ExitUsageError
	}
	if len(paths) != 1 {
		logger.Error("expected exactly one manifest path", "got", len(paths))
		return subcommands.ExitUsageError
	}

	fpath, err := filepath.Abs(paths[0])
	if err != nil {
		logger.Error(fmt.Sprintf("resolve %q", paths[0]), "err", err)
		return subcommands.ExitFailure
	}
	m, err := pack.ReadManifestFile(fpath)
	if err != nil {
		logger.Error("import", "err", err)
		return subcommands.ExitFailure
	}

	stdin, stdout := cmd.stdio()
	if !cmd.Yes && !isTerminal(stdin) {
		logger.Warn("stdin is not a terminal, prompts read their answers from it; use -yes to skip them")
	}

	var fallback io.Writer
	if cmd.PrintLinks {
		fallback = stdout
	}
	r := cmd.Runner
	if r == nil {
		r = opener.ExecRunner{}
	}
	goos := cmd.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	p := prompt.New(stdin, stdout)
	p.Yes = cmd.Yes

	im := installer.Importer{
		Runner:   r,
		Opener:   opener.New(goos, r, fallback, logger),
		Prompter: p,
		Logger:   logger,
		Pacmc:    cmd.Pacmc,
	}
	if err := im.Import(ctx, m); err != nil {
		logger.Error("import", "err", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (cmd *ImportCommand) stdio() (io.Reader, io.Writer) {
	var in io.Reader = os.Stdin
	var out io.Writer = os.Stdout
	if cmd.Stdin != nil {
		in = cmd.Stdin
	}
	if cmd.Stdout != nil {
		out = cmd.Stdout
	}
	return in, out
}
