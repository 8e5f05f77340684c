// Package pack builds manifests from mods folders and reads and writes
// them in their on-disk formats.
package pack

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/go-git/go-billy/v5"

	"github.com/tie/mcmods/classify"
	"github.com/tie/mcmods/models"
)

type Exporter struct {
	Files  billy.Filesystem
	Logger *log.Logger

	// Rules override classify.DefaultRules when non-nil.
	Rules []classify.Rule
}

// Export scans dir (non-recursively) and returns the manifest of the
// mods found there. Files that belong to no channel are ignored.
func (e *Exporter) Export(dir, gameVersion string, loader models.Loader) (*models.Manifest, error) {
	logger := e.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	fis, err := e.Files.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read mods folder %q: %w", dir, err)
	}

	if !loader.Supported() {
		logger.Warn("unsupported mod loader, exporting anyway",
			"loader", loader, "supported", models.KnownLoaders)
	}

	rules := e.Rules
	if rules == nil {
		rules = classify.DefaultRules
	}

	m := models.NewManifest(gameVersion, loader)
	for _, fi := range fis {
		if fi.IsDir() {
			continue
		}
		name := fi.Name()
		res := classify.ClassifyWith(rules, name)
		switch res.Kind {
		case classify.Pacmc:
			m.Pacmc[res.Slug] = models.PacmcMod{Repo: res.Repo}
		case classify.Sidecar:
			fpath := e.Files.Join(dir, name)
			sc, err := ReadSidecar(e.Files, fpath)
			if err != nil {
				return nil, err
			}
			sc.MergeInto(m)
		case classify.Unclassifiable:
			logger.Warn("skipping pacmc jar without repo marker", "file", name)
		}
	}

	logger.Info("scanned mods folder",
		"dir", dir,
		"pacmc", len(m.Pacmc),
		"manual", len(m.Manual),
		"http_dl", len(m.HTTPDL))
	return m, nil
}
