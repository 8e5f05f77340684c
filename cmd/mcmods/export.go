package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/google/subcommands"

	"github.com/tie/mcmods/models"
	"github.com/tie/mcmods/pack"
)

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

type ExportCommand struct {
	GameVersion string
	ModLoader   string
	OutputPath  string
	Copy        bool
	Format      string

	Files  billy.Filesystem
	Stdout io.Writer
}

func (*ExportCommand) Name() string     { return "export" }
func (*ExportCommand) Synopsis() string { return "export mods folder to a manifest" }
func (*ExportCommand) Usage() string {
	return `Usage: mcmods export <mods_folder> -game-version <v> -mod-loader <loader> [-file path] [-copy] [-format json]

	Scans the mods folder for jars installed with pacmc and for the
	.mcmods.json descriptor, and renders the manifest. Supported mod
	loaders are fabric, quilt and forge; other loaders are exported
	with a warning.

	The manifest is written to -file and/or copied to the clipboard.
	Without either it is printed to stdout.

Flags:
`
}

func (cmd *ExportCommand) SetFlags(fs *flag.FlagSet) {
	fs.StringVar(&cmd.GameVersion, "game-version", "", "Minecraft version (required)")
	fs.StringVar(&cmd.GameVersion, "gv", "", "alias for -game-version")
	fs.StringVar(&cmd.ModLoader, "mod-loader", "", "Minecraft mod loader (required)")
	fs.StringVar(&cmd.ModLoader, "ml", "", "alias for -mod-loader")
	fs.StringVar(&cmd.OutputPath, "file", "", "write mod list to a file")
	fs.StringVar(&cmd.OutputPath, "f", "", "alias for -file")
	fs.BoolVar(&cmd.Copy, "copy", false, "copy mod list to clipboard")
	fs.BoolVar(&cmd.Copy, "c", false, "alias for -copy")
	fs.StringVar(&cmd.Format, "format", string(pack.FormatJSON), "manifest format: json or hcl")
}

func (cmd *ExportCommand) Execute(ctx context.Context, fs *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	logger := loggerFrom(args)

	paths, err := parseArgs(fs, fs.Args())
	if err != nil {
		logger.Error("parse flags", "err", err)
		return subcommands.ExitUsageError
	}
	if len(paths) != 1 {
		logger.Error("expected exactly one mods folder", "got", len(paths))
		return subcommands.ExitUsageError
	}
	if cmd.GameVersion == "" || cmd.ModLoader == "" {
		logger.Error("-game-version and -mod-loader are required")
		return subcommands.ExitUsageError
	}
	format, err := pack.ParseFormat(cmd.Format)
	if err != nil {
		logger.Error("parse format", "err", err)
		return subcommands.ExitUsageError
	}

	files := cmd.files()
	dir, err := filepath.Abs(paths[0])
	if err != nil {
		logger.Error(fmt.Sprintf("resolve %q", paths[0]), "err", err)
		return subcommands.ExitFailure
	}

	e := pack.Exporter{
		Files:  files,
		Logger: logger,
	}
	m, err := e.Export(dir, cmd.GameVersion, models.Loader(cmd.ModLoader))
	if err != nil {
		logger.Error("export", "err", err)
		return subcommands.ExitFailure
	}

	data, err := pack.Marshal(m, format)
	if err != nil {
		logger.Error("encode manifest", "err", err)
		return subcommands.ExitFailure
	}

	if cmd.OutputPath != "" {
		fpath, err := filepath.Abs(cmd.OutputPath)
		if err != nil {
			logger.Error(fmt.Sprintf("resolve %q", cmd.OutputPath), "err", err)
			return subcommands.ExitFailure
		}
		if err := pack.WriteManifestFile(fpath, data); err != nil {
			logger.Error("write", "err", err)
			return subcommands.ExitFailure
		}
		logger.Info("created file at: " + cmd.OutputPath)
	}

	if cmd.Copy {
		if err := clipboardWriteAll(string(data)); err != nil {
			logger.Error("copy to clipboard", "err", err)
			return subcommands.ExitFailure
		}
		logger.Info("mod list copied to clipboard")
	}

	if cmd.OutputPath == "" && !cmd.Copy {
		logger.Warn("neither -file nor -copy given, printing mod list")
		if _, err := fmt.Fprintln(cmd.stdout(), string(data)); err != nil {
			logger.Error("write stdout", "err", err)
			return subcommands.ExitFailure
		}
	}

	return subcommands.ExitSuccess
}

func (cmd *ExportCommand) files() billy.Filesystem {
	if cmd.Files != nil {
		return cmd.Files
	}
	return osfs.New("")
}

func (cmd *ExportCommand) stdout() io.Writer {
	if cmd.Stdout != nil {
		return cmd.Stdout
	}
	return os.Stdout
}
