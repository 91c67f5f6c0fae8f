// Package project loads the optional jtol.toml file that presets
// convert command options for a working tree.
package project

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ConfigFileName is looked up in the current directory.
const ConfigFileName = "jtol.toml"

// ConvertDefaults mirrors the convert flags a jtol.toml may preset.
// Explicit command-line flags always win over these.
type ConvertDefaults struct {
	Dir      string `toml:"dir"`
	Prefix   string `toml:"prefix"`
	Multi    string `toml:"multi"`
	Suppress bool   `toml:"suppress"`
	Compact  bool   `toml:"compact"`
	Format   string `toml:"format"`
}

type configFile struct {
	Convert ConvertDefaults `toml:"convert"`
}

// LoadConfig parses the [convert] section of path. A missing file is
// not an error; it yields zero defaults.
func LoadConfig(path string) (ConvertDefaults, error) {
	var cfg configFile
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if os.IsNotExist(err) {
			return ConvertDefaults{}, nil
		}
		return ConvertDefaults{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("convert") {
		return ConvertDefaults{}, nil
	}
	return cfg.Convert, nil
}
