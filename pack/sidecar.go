package pack

import (
	"encoding/json"
	"fmt"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/tie/mcmods/models"
)

// Sidecar is the .mcmods.json descriptor kept in a mods folder by the
// tool that downloaded mods outside of pacmc.
type Sidecar struct {
	Manual map[string]models.Link `json:"manual"`
	HTTPDL map[string]models.Link `json:"http_dl"`
}

func ReadSidecar(fs billy.Basic, fpath string) (*Sidecar, error) {
	data, err := util.ReadFile(fs, fpath)
	if err != nil {
		return nil, fmt.Errorf("read sidecar %q: %w", fpath, err)
	}
	var sc Sidecar
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("decode sidecar %q: %w", fpath, err)
	}
	return &sc, nil
}

// MergeInto copies the sidecar entries into m, overwriting entries
// with the same ID.
func (sc *Sidecar) MergeInto(m *models.Manifest) {
	for id, l := range sc.Manual {
		m.Manual[id] = models.Link{Link: l.Link}
	}
	for id, l := range sc.HTTPDL {
		m.HTTPDL[id] = models.Link{Link: l.Link}
	}
}
