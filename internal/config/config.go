package config

import (
	"errors"
	"os"
	"path/filepath"
	"sort"

	"github.com/BurntSushi/toml"
)

const EnvConfigPath = "APPRUNNERCTL_CONFIG"

type Config struct {
	Profile  string `toml:"profile"`
	Region   string `toml:"region"`
	LogLevel string `toml:"log_level"`
	ReadOnly bool   `toml:"read_only"`
	AuditLog string `toml:"audit_log"`
	PageSize int32  `toml:"page_size"`
}

type Overrides struct {
	Profile  *string
	Region   *string
	LogLevel *string
	ReadOnly *bool
}

func DefaultConfig() Config {
	return Config{
		LogLevel: "warn",
	}
}

// DefaultPath returns the config file used when none is given: the
// APPRUNNERCTL_CONFIG variable, else config.toml under the user config dir.
func DefaultPath() string {
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "apprunnerctl", "config.toml")
}

// DropInDir is the conf.d directory next to the config file.
func DropInDir(path string) string {
	if path == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(path), "conf.d")
}

// Load merges defaults, the config file, drop-ins (lexical order) and
// overrides. A missing file is only an error when required is set.
func Load(path string, required bool, dir string, overrides Overrides) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		fileCfg, md, err := readFile(path)
		switch {
		case err == nil:
			merge(&cfg, fileCfg, md)
		case errors.Is(err, os.ErrNotExist) && !required:
		default:
			return cfg, err
		}
	}

	if dir != "" {
		files, err := dropInFiles(dir)
		if err != nil {
			return cfg, err
		}
		for _, file := range files {
			fileCfg, md, err := readFile(file)
			if err != nil {
				return cfg, err
			}
			merge(&cfg, fileCfg, md)
		}
	}

	applyOverrides(&cfg, overrides)
	return cfg, nil
}

func readFile(path string) (Config, toml.MetaData, error) {
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		return cfg, toml.MetaData{}, err
	}
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return cfg, md, err
	}
	return cfg, md, nil
}

func dropInFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, err
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".toml" {
			continue
		}
		files = append(files, filepath.Join(dir, entry.Name()))
	}
	sort.Strings(files)
	return files, nil
}

// merge copies set values from src. read_only is taken whenever the key is
// present, so a later file can switch it off again.
func merge(dst *Config, src Config, md toml.MetaData) {
	if src.Profile != "" {
		dst.Profile = src.Profile
	}
	if src.Region != "" {
		dst.Region = src.Region
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
	if md.IsDefined("read_only") {
		dst.ReadOnly = src.ReadOnly
	}
	if src.AuditLog != "" {
		dst.AuditLog = src.AuditLog
	}
	if src.PageSize > 0 {
		dst.PageSize = src.PageSize
	}
}

func applyOverrides(cfg *Config, overrides Overrides) {
	if overrides.Profile != nil {
		cfg.Profile = *overrides.Profile
	}
	if overrides.Region != nil {
		cfg.Region = *overrides.Region
	}
	if overrides.LogLevel != nil {
		cfg.LogLevel = *overrides.LogLevel
	}
	if overrides.ReadOnly != nil {
		cfg.ReadOnly = *overrides.ReadOnly
	}
}
