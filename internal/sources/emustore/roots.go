package emustore

import (
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"

	"github.com/agentstation/trophycase/pkg/errors"
)

// storeProducts are the known save-store folder names, one per emulation
// layer, searched under each user-data base.
var storeProducts = []string{
	"Goldberg SteamEmu Saves",
	"GSE Saves",
	"CODEX",
	"SmartSteamEmu",
	"EMPRESS",
	"RUNE",
	"OnlineFix",
	"Skidrow",
	"CreamAPI",
}

// candidateFiles are the exact filenames a store keeps unlock state in.
var candidateFiles = []string{
	"achievements.json",
	"achievements.ini",
	"achiev.ini",
	"stats.ini",
	"Achievements.Bin",
}

// RootsConfig is the optional YAML file adding store roots beyond the known
// product list:
//
//	roots:
//	  - /path/to/extra/store
type RootsConfig struct {
	Roots []string `yaml:"roots"`
}

// LoadRootsConfig parses a store-roots YAML file. A missing file yields an
// empty config.
func LoadRootsConfig(path string) (RootsConfig, error) {
	var cfg RootsConfig
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, errors.WrapIO("read", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.WrapParse("keyed", path, err)
	}
	return cfg, nil
}

// defaultRoots expands the known products under the user's data directories.
// Unresolvable bases are skipped silently.
func defaultRoots() []string {
	var bases []string
	if dir, err := os.UserConfigDir(); err == nil {
		bases = append(bases, dir)
	}
	if dir, err := os.UserHomeDir(); err == nil {
		bases = append(bases, dir, filepath.Join(dir, ".local", "share"))
	}
	if dir := os.Getenv("APPDATA"); dir != "" {
		bases = append(bases, dir)
	}
	if dir := os.Getenv("PROGRAMDATA"); dir != "" {
		bases = append(bases, dir)
	}

	var roots []string
	seen := make(map[string]bool)
	for _, base := range bases {
		for _, product := range storeProducts {
			root := filepath.Join(base, product)
			if !seen[root] {
				seen[root] = true
				roots = append(roots, root)
			}
		}
	}
	return roots
}
