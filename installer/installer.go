// Package installer replays a manifest by reinstalling every mod
// through its channel: pacmc, manual browser download, or direct link.
package installer

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/tie/mcmods/models"
	"github.com/tie/mcmods/opener"
	"github.com/tie/mcmods/prompt"
)

// DefaultPacmc is the pacmc executable looked up in PATH.
const DefaultPacmc = "pacmc"

type Importer struct {
	Runner   opener.Runner
	Opener   opener.Opener
	Prompter *prompt.Prompter
	Logger   *log.Logger

	// Pacmc is the package manager executable.
	Pacmc string
}

// Import runs the pacmc, manual and direct download phases in that
// order. Each non-empty phase asks for confirmation first. The first
// failed external command stops the run.
func (im *Importer) Import(ctx context.Context, m *models.Manifest) error {
	logger := im.logger()

	logger.Warn(fmt.Sprintf("this modlist is meant to be used with %s for %s",
		m.ModLoader, m.GameVersion))
	if !m.ModLoader.Supported() {
		logger.Warn("unsupported mod loader", "loader", m.ModLoader, "supported", models.KnownLoaders)
	}

	if err := im.installPacmc(ctx, m); err != nil {
		return err
	}
	if err := im.openManual(ctx, m); err != nil {
		return err
	}
	return im.openHTTP(ctx, m)
}

func (im *Importer) installPacmc(ctx context.Context, m *models.Manifest) error {
	logger := im.logger()
	n := len(m.Pacmc)
	if n <= 0 {
		logger.Info("no pacmc mods, skipping")
		return nil
	}
	q := fmt.Sprintf("You are about to install %d mods into the default archive with pacmc...\n"+
		"Are you sure you want to do this", n)
	ok, err := im.Prompter.Confirm(q)
	if err != nil {
		return fmt.Errorf("confirm pacmc install: %w", err)
	}
	if !ok {
		logger.Info("not installing mods with pacmc")
		return nil
	}

	logger.Info("installing mods with pacmc", "count", n)
	pacmc := im.Pacmc
	if pacmc == "" {
		pacmc = DefaultPacmc
	}
	args := append([]string{"install"}, m.PacmcIDs()...)
	if err := im.Runner.Run(ctx, pacmc, args...); err != nil {
		return fmt.Errorf("pacmc install: %w", err)
	}
	return nil
}

func (im *Importer) openManual(ctx context.Context, m *models.Manifest) error {
	logger := im.logger()
	n := len(m.Manual)
	if n <= 0 {
		logger.Info("no manual install mods, skipping")
		return nil
	}
	q := fmt.Sprintf("You are about to open %d mod links in the default browser (manually download)...\n"+
		"Are you sure you want to do this", n)
	ok, err := im.Prompter.Confirm(q)
	if err != nil {
		return fmt.Errorf("confirm manual install: %w", err)
	}
	if !ok {
		logger.Info("not opening links in browser")
		return nil
	}

	logger.Info("opening links in browser", "count", n)
	return im.openLinks(ctx, m.Manual)
}

func (im *Importer) openHTTP(ctx context.Context, m *models.Manifest) error {
	logger := im.logger()
	n := len(m.HTTPDL)
	if n <= 0 {
		logger.Info("no http_dl mods, skipping")
		return nil
	}
	q := fmt.Sprintf("You are about to download %d mods from an untrusted source...\n"+
		"Are you sure you trust these links", n)
	ok, err := im.Prompter.Confirm(q)
	if err != nil {
		return fmt.Errorf("confirm http_dl install: %w", err)
	}
	if !ok {
		logger.Info("not opening download links in browser")
		return nil
	}

	logger.Info("opening download links in browser", "count", n)
	return im.openLinks(ctx, m.HTTPDL)
}

func (im *Importer) openLinks(ctx context.Context, links map[string]models.Link) error {
	for _, id := range models.SortedKeys(links) {
		link := links[id].Link
		im.logger().Debug("open link", "mod", id, "link", link)
		if err := im.Opener.Open(ctx, link); err != nil {
			return fmt.Errorf("mod %q: %w", id, err)
		}
	}
	return nil
}

func (im *Importer) logger() *log.Logger {
	if im.Logger == nil {
		im.Logger = log.New(io.Discard)
	}
	return im.Logger
}
