package main

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	Name string
	Args []string
}

type fakeRunner struct {
	Calls []call
	Err   error
}

func (r *fakeRunner) Run(ctx context.Context, name string, args ...string) error {
	r.Calls = append(r.Calls, call{name, args})
	return r.Err
}

const testManifest = `{
	"pacmc": {"sodium": {"repo": "modrinth"}, "jei": {"repo": "curseforge"}},
	"manual": {"optifine": {"link": "https://optifine.net/downloads"}},
	"http_dl": {"pack": {"link": "https://example.com/pack.zip"}},
	"game_version": "1.20.1",
	"mod_loader": "fabric"
}`

func manifestFile(t *testing.T, name, data string) string {
	t.Helper()
	fpath := filepath.Join(t.TempDir(), name)
	writeFile(t, fpath, data)
	return fpath
}

func TestImport(t *testing.T) {
	r := &fakeRunner{}
	var stdout bytes.Buffer
	cmd := &ImportCommand{
		Runner: r,
		GOOS:   "darwin",
		Stdin:  strings.NewReader("\nn\ny\n"),
		Stdout: &stdout,
	}

	rc, logs := run(t, cmd, manifestFile(t, "modlist.json", testManifest), "-pacmc", "pacmc")
	require.Equal(t, subcommands.ExitSuccess, rc, logs)
	assert.Contains(t, logs, "fabric for 1.20.1")
	assert.Equal(t, []call{
		{"pacmc", []string{"install", "curseforge/jei", "modrinth/sodium"}},
		{"open", []string{"https://example.com/pack.zip"}},
	}, r.Calls)
	assert.Contains(t, stdout.String(), "(Y/n)? ")
	assert.Contains(t, logs, "stdin is not a terminal")
}

func TestImportYes(t *testing.T) {
	r := &fakeRunner{}
	var stdout bytes.Buffer
	cmd := &ImportCommand{
		Runner: r,
		GOOS:   "linux",
		Stdin:  strings.NewReader("n\nn\nn\n"),
		Stdout: &stdout,
	}

	rc, logs := run(t, cmd, "-yes", "-pacmc", "pacmc", manifestFile(t, "modlist.json", testManifest))
	require.Equal(t, subcommands.ExitSuccess, rc, logs)
	assert.Len(t, r.Calls, 3)
	assert.NotContains(t, stdout.String(), "(Y/n)? ")
	assert.NotContains(t, logs, "stdin is not a terminal")
}

func TestImportHCL(t *testing.T) {
	r := &fakeRunner{}
	cmd := &ImportCommand{
		Runner: r,
		GOOS:   "linux",
		Stdin:  strings.NewReader(""),
		Stdout: &bytes.Buffer{},
	}
	src := `
game_version = "1.19.2"
mod_loader   = "forge"

pacmc "create" {
  repo = "curseforge"
}
`

	rc, logs := run(t, cmd, manifestFile(t, "modlist.hcl", src), "-pacmc", "pacmc")
	require.Equal(t, subcommands.ExitSuccess, rc, logs)
	assert.Equal(t, []call{
		{"pacmc", []string{"install", "curseforge/create"}},
	}, r.Calls)
}

func TestImportUnsupportedOS(t *testing.T) {
	r := &fakeRunner{}
	var stdout bytes.Buffer
	cmd := &ImportCommand{
		Runner: r,
		GOOS:   "plan9",
		Stdin:  strings.NewReader("n\n\n\n"),
		Stdout: &stdout,
	}

	rc, logs := run(t, cmd, manifestFile(t, "modlist.json", testManifest))
	require.Equal(t, subcommands.ExitSuccess, rc, logs)
	assert.Empty(t, r.Calls)
	assert.Contains(t, stdout.String(), "https://optifine.net/downloads\n")

	rc, _ = run(t, &ImportCommand{
		Runner: r,
		GOOS:   "plan9",
		Stdin:  strings.NewReader("n\n\n\n"),
		Stdout: &bytes.Buffer{},
	}, "-print-links=false", manifestFile(t, "modlist.json", testManifest))
	assert.Equal(t, subcommands.ExitFailure, rc)
}

func TestImportFailures(t *testing.T) {
	cases := map[string]string{
		"invalid json": `{"pacmc": `,
		"unknown repo": `{"pacmc": {"x": {"repo": "github"}}}`,
	}
	for name, data := range cases {
		r := &fakeRunner{}
		cmd := &ImportCommand{Runner: r, GOOS: "linux", Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}}
		rc, _ := run(t, cmd, manifestFile(t, "modlist.json", data))
		assert.Equal(t, subcommands.ExitFailure, rc, name)
		assert.Empty(t, r.Calls, name)
	}

	r := &fakeRunner{Err: errors.New("exit status 1")}
	cmd := &ImportCommand{Runner: r, GOOS: "linux", Stdin: strings.NewReader(""), Stdout: &bytes.Buffer{}}
	rc, logs := run(t, cmd, manifestFile(t, "modlist.json", testManifest))
	assert.Equal(t, subcommands.ExitFailure, rc)
	assert.Contains(t, logs, "pacmc install")
	assert.Len(t, r.Calls, 1)

	rc, _ = run(t, &ImportCommand{}, filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, subcommands.ExitFailure, rc)

	rc, _ = run(t, &ImportCommand{})
	assert.Equal(t, subcommands.ExitUsageError, rc)
}
