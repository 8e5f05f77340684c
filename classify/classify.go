// Package classify sorts files found in a mods folder into the
// channels a manifest can reinstall them through.
package classify

import (
	"strings"

	"github.com/tie/mcmods/models"
)

const (
	// PacmcSuffix marks jars installed by the pacmc package manager.
	PacmcSuffix = ".pacmc.jar"
	// SidecarName is the descriptor listing manual and direct-download mods.
	SidecarName = ".mcmods.json"
)

type Kind int

const (
	Ignored Kind = iota
	Pacmc
	Sidecar
	// Unclassifiable is a pacmc jar that carries none of the repo markers.
	Unclassifiable
)

func (k Kind) String() string {
	switch k {
	case Ignored:
		return "ignored"
	case Pacmc:
		return "pacmc"
	case Sidecar:
		return "sidecar"
	case Unclassifiable:
		return "unclassifiable"
	}
	return "unknown"
}

// Rule maps a file name marker to the repository it identifies.
// The slug is the part of the name before the marker.
type Rule struct {
	Marker string
	Repo   models.Repo
}

// DefaultRules are evaluated in order; the first matching marker wins.
var DefaultRules = []Rule{
	{Marker: "_mr_", Repo: models.RepoModrinth},
	{Marker: "_cf_", Repo: models.RepoCurseForge},
}

type Result struct {
	Kind Kind
	Slug string
	Repo models.Repo
}

// Classify classifies name using DefaultRules.
func Classify(name string) Result {
	return ClassifyWith(DefaultRules, name)
}

func ClassifyWith(rules []Rule, name string) Result {
	if name == SidecarName {
		return Result{Kind: Sidecar}
	}
	if !strings.HasSuffix(name, PacmcSuffix) {
		return Result{Kind: Ignored}
	}
	for _, r := range rules {
		i := strings.Index(name, r.Marker)
		if i < 0 {
			continue
		}
		if i == 0 {
			// No slug to install.
			return Result{Kind: Unclassifiable}
		}
		return Result{
			Kind: Pacmc,
			Slug: name[:i],
			Repo: r.Repo,
		}
	}
	return Result{Kind: Unclassifiable}
}
