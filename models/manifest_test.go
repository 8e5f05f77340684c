package models

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoaderSupported(t *testing.T) {
	for _, l := range []Loader{"fabric", "quilt", "forge"} {
		assert.True(t, l.Supported(), l)
	}
	for _, l := range []Loader{"", "Fabric", "neoforge", "rift"} {
		assert.False(t, l.Supported(), l)
	}
}

func TestNewManifestEncodesEmptyMappings(t *testing.T) {
	data, err := json.Marshal(NewManifest("1.20.1", LoaderFabric))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"pacmc": {},
		"manual": {},
		"http_dl": {},
		"game_version": "1.20.1",
		"mod_loader": "fabric"
	}`, string(data))
}

func TestPacmcIDs(t *testing.T) {
	m := NewManifest("1.20.1", LoaderQuilt)
	m.Pacmc["sodium"] = PacmcMod{Repo: RepoModrinth}
	m.Pacmc["jei"] = PacmcMod{Repo: RepoCurseForge}
	m.Pacmc["lithium"] = PacmcMod{Repo: RepoModrinth}

	assert.Equal(t, []string{
		"curseforge/jei",
		"modrinth/lithium",
		"modrinth/sodium",
	}, m.PacmcIDs())
}

func TestValidate(t *testing.T) {
	m := NewManifest("1.19.2", LoaderForge)
	m.Pacmc["create"] = PacmcMod{Repo: RepoCurseForge}
	require.NoError(t, m.Validate())

	m.Pacmc["bogus"] = PacmcMod{Repo: "github"}
	err := m.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownRepo))
	assert.Contains(t, err.Error(), `"bogus"`)
}

func TestDecodeMissingMappings(t *testing.T) {
	var m Manifest
	require.NoError(t, json.Unmarshal([]byte(`{"game_version":"1.18","mod_loader":"forge"}`), &m))
	assert.Empty(t, m.Pacmc)
	assert.Empty(t, m.PacmcIDs())
	assert.NoError(t, m.Validate())
}
