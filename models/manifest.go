package models

import (
	"fmt"
	"sort"
)

// Repo is the pacmc repository a mod was installed from.
type Repo string

const (
	RepoModrinth   Repo = "modrinth"
	RepoCurseForge Repo = "curseforge"
)

// Known reports whether r is one of the repositories pacmc understands.
func (r Repo) Known() bool {
	return r == RepoModrinth || r == RepoCurseForge
}

// Loader is the name of a mod loader, e.g. "fabric".
type Loader string

const (
	LoaderFabric Loader = "fabric"
	LoaderQuilt  Loader = "quilt"
	LoaderForge  Loader = "forge"
)

// KnownLoaders lists the supported mod loaders.
var KnownLoaders = []Loader{
	LoaderFabric,
	LoaderQuilt,
	LoaderForge,
}

func (l Loader) Supported() bool {
	for _, k := range KnownLoaders {
		if l == k {
			return true
		}
	}
	return false
}

type PacmcMod struct {
	Repo Repo `json:"repo"`
}

type Link struct {
	Link string `json:"link"`
}

// Manifest is the portable description of a mod set.
type Manifest struct {
	// Pacmc maps mod slugs to the repository pacmc installs them from.
	Pacmc map[string]PacmcMod `json:"pacmc"`

	// Manual maps mod IDs to pages the user downloads from by hand.
	Manual map[string]Link `json:"manual"`
	// HTTPDL maps mod IDs to direct download links.
	HTTPDL map[string]Link `json:"http_dl"`

	GameVersion string `json:"game_version"`
	ModLoader   Loader `json:"mod_loader"`
}

func NewManifest(gameVersion string, loader Loader) *Manifest {
	return &Manifest{
		Pacmc:       map[string]PacmcMod{},
		Manual:      map[string]Link{},
		HTTPDL:      map[string]Link{},
		GameVersion: gameVersion,
		ModLoader:   loader,
	}
}

// Validate checks that every pacmc entry names a known repository.
func (m *Manifest) Validate() error {
	for _, slug := range SortedKeys(m.Pacmc) {
		mod := m.Pacmc[slug]
		if !mod.Repo.Known() {
			return fmt.Errorf("pacmc mod %q: %w: %q", slug, ErrUnknownRepo, mod.Repo)
		}
	}
	return nil
}

// PacmcIDs returns "repo/slug" identifiers ordered by slug.
func (m *Manifest) PacmcIDs() []string {
	slugs := SortedKeys(m.Pacmc)
	ids := make([]string, len(slugs))
	for i, slug := range slugs {
		ids[i] = fmt.Sprintf("%s/%s", m.Pacmc[slug].Repo, slug)
	}
	return ids
}

// SortedKeys returns the keys of a mapping in lexical order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
