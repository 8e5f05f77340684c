// Package hclspec is the HCL rendition of a manifest:
//
//	game_version = "1.20.1"
//	mod_loader   = "fabric"
//
//	pacmc "sodium" {
//	  repo = "modrinth"
//	}
//
//	manual "optifine" {
//	  link = "https://optifine.net/downloads"
//	}
package hclspec

import (
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"

	"github.com/tie/mcmods/models"
)

type Manifest struct {
	GameVersion string  `hcl:"game_version,optional"`
	ModLoader   string  `hcl:"mod_loader,optional"`
	Pacmc       []Pacmc `hcl:"pacmc,block"`
	Manual      []Link  `hcl:"manual,block"`
	HTTPDL      []Link  `hcl:"http_dl,block"`
}

type Pacmc struct {
	Slug string `hcl:"slug,label"`
	Repo string `hcl:"repo,attr"`
}

type Link struct {
	ID   string `hcl:"id,label"`
	Link string `hcl:"link,attr"`
}

// Parse decodes an HCL manifest. Later blocks with the same label
// overwrite earlier ones.
func Parse(p *hclparse.Parser, src []byte, filename string) (*models.Manifest, hcl.Diagnostics) {
	file, diags := p.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diags
	}
	var hm Manifest
	decodeDiags := gohcl.DecodeBody(file.Body, nil, &hm)
	diags = append(diags, decodeDiags...)
	if diags.HasErrors() {
		return nil, diags
	}
	return hm.Manifest(), diags
}

func (hm *Manifest) Manifest() *models.Manifest {
	m := models.NewManifest(hm.GameVersion, models.Loader(hm.ModLoader))
	for _, p := range hm.Pacmc {
		m.Pacmc[p.Slug] = models.PacmcMod{Repo: models.Repo(p.Repo)}
	}
	for _, l := range hm.Manual {
		m.Manual[l.ID] = models.Link{Link: l.Link}
	}
	for _, l := range hm.HTTPDL {
		m.HTTPDL[l.ID] = models.Link{Link: l.Link}
	}
	return m
}

// Marshal renders m with blocks sorted by label, so equal manifests
// produce equal text.
func Marshal(m *models.Manifest) []byte {
	f := hclwrite.NewEmptyFile()
	b := Builder{Body: f.Body()}
	b.SetAttributeValue("game_version", cty.StringVal(m.GameVersion))
	b.SetAttributeValue("mod_loader", cty.StringVal(string(m.ModLoader)))
	b.Length++
	for _, slug := range models.SortedKeys(m.Pacmc) {
		b.Add("pacmc", slug, "repo", string(m.Pacmc[slug].Repo))
	}
	for _, id := range models.SortedKeys(m.Manual) {
		b.Add("manual", id, "link", m.Manual[id].Link)
	}
	for _, id := range models.SortedKeys(m.HTTPDL) {
		b.Add("http_dl", id, "link", m.HTTPDL[id].Link)
	}
	return hclwrite.Format(f.Bytes())
}

type Builder struct {
	*hclwrite.Body
	Length int
}

// Add appends a labelled block holding a single string attribute.
func (b *Builder) Add(typ, label, attr, val string) {
	if b.Length > 0 {
		b.AppendNewline()
	}
	b.Length++

	block := b.AppendNewBlock(typ, []string{label})
	body := block.Body()
	body.SetAttributeValue(attr, cty.StringVal(val))
}
