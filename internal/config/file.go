package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// FileConfig is the optional TOML configuration read by the pwcheck CLI.
type FileConfig struct {
	Check CheckConfig `toml:"check"`
}

// CheckConfig maps the [check] section. Nil fields were not set in the file.
type CheckConfig struct {
	SpecialChars *string `toml:"special-chars"`
	MaxLength    *int    `toml:"max-length"`
}

// LoadFileConfig reads a TOML config from path. A missing file is not an error.
func LoadFileConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	if cfg.Check.MaxLength != nil && *cfg.Check.MaxLength < 1 {
		return FileConfig{}, fmt.Errorf("invalid max-length: %d (must be at least 1)", *cfg.Check.MaxLength)
	}
	return cfg, nil
}

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultFileConfigPath returns the default TOML config path.
func DefaultFileConfigPath() string {
	return filepath.Join(XDGConfigHome(), "pwstrength", "config.toml")
}
