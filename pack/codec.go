package pack

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/tie/internal/renameio"
	"github.com/tie/internal/robustio"

	"github.com/tie/mcmods/models"
	"github.com/tie/mcmods/pack/hclspec"
)

type Format string

const (
	FormatJSON Format = "json"
	FormatHCL  Format = "hcl"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatJSON, FormatHCL:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", models.ErrUnknownFormat, s)
}

// FormatFor guesses the manifest format from the file extension.
// Anything that is not .hcl or .pack is read as JSON.
func FormatFor(fpath string) Format {
	switch strings.ToLower(filepath.Ext(fpath)) {
	case ".hcl", ".pack":
		return FormatHCL
	}
	return FormatJSON
}

// Marshal renders m. JSON output is compact.
func Marshal(m *models.Manifest, f Format) ([]byte, error) {
	switch f {
	case FormatJSON:
		return json.Marshal(m)
	case FormatHCL:
		return hclspec.Marshal(m), nil
	}
	return nil, fmt.Errorf("%w: %q", models.ErrUnknownFormat, f)
}

// Unmarshal decodes and validates a manifest. The file name is only
// used in diagnostics.
func Unmarshal(data []byte, fpath string, f Format) (*models.Manifest, error) {
	var m *models.Manifest
	switch f {
	case FormatJSON:
		m = &models.Manifest{}
		if err := json.Unmarshal(data, m); err != nil {
			return nil, fmt.Errorf("decode %q: %w", fpath, err)
		}
	case FormatHCL:
		hm, diags := hclspec.Parse(hclparse.NewParser(), data, fpath)
		if diags.HasErrors() {
			return nil, fmt.Errorf("decode %q: %w", fpath, diags)
		}
		m = hm
	default:
		return nil, fmt.Errorf("%w: %q", models.ErrUnknownFormat, f)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("validate %q: %w", fpath, err)
	}
	return m, nil
}

func ReadManifest(fs billy.Basic, fpath string) (*models.Manifest, error) {
	data, err := util.ReadFile(fs, fpath)
	if err != nil {
		return nil, fmt.Errorf("read manifest %q: %w", fpath, err)
	}
	return Unmarshal(data, fpath, FormatFor(fpath))
}

// ReadManifestFile reads a manifest from the OS filesystem, retrying
// reads that fail with transient errors.
func ReadManifestFile(fpath string) (*models.Manifest, error) {
	data, err := robustio.ReadFile(fpath)
	if err != nil {
		return nil, fmt.Errorf("read manifest %q: %w", fpath, err)
	}
	return Unmarshal(data, fpath, FormatFor(fpath))
}

// WriteManifest writes data followed by a newline, replacing fpath.
func WriteManifest(fs billy.Basic, fpath string, data []byte) error {
	if err := util.WriteFile(fs, fpath, withNewline(data), 0644); err != nil {
		return fmt.Errorf("write manifest %q: %w", fpath, err)
	}
	return nil
}

// WriteManifestFile atomically replaces fpath on the OS filesystem, so
// readers never see a partially written manifest.
func WriteManifestFile(fpath string, data []byte) error {
	if err := renameio.WriteFile(fpath, withNewline(data), 0644); err != nil {
		return fmt.Errorf("write manifest %q: %w", fpath, err)
	}
	return nil
}

func withNewline(data []byte) []byte {
	out := make([]byte, 0, len(data)+1)
	out = append(out, data...)
	return append(out, '\n')
}
