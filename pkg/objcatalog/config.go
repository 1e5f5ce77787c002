package objcatalog

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"dario.cat/mergo"
	"github.com/titanous/json5"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the base directory when no config file
// is given explicitly.
const DefaultConfigFile = "catalog.json5"

func splitExt(f string) (string, string) {
	ext := filepath.Ext(f)
	return strings.TrimSuffix(f, ext), ext
}

func decodeConfig(path string, data []byte, out *Config) error {
	_, ext := splitExt(path)
	switch strings.ToLower(ext) {
	case ".yaml", ".yml":
		return yaml.Unmarshal(data, out)
	default:
		return json5.Unmarshal(data, out)
	}
}

// ReadConfigFile decodes a configuration file over base, then the sibling
// <name>.local.<ext> file over that. Keys absent from a file leave the
// current value untouched, so explicit zeros such as header_rows: 0 apply.
// It returns os.ErrNotExist when neither file exists.
func ReadConfigFile(name string, base Config) (Config, error) {
	out := base
	allNotFound := true

	prefix, ext := splitExt(name)

	defaultFile, err := os.ReadFile(name)
	if err != nil && !os.IsNotExist(err) {
		return base, err
	}
	if len(defaultFile) > 0 {
		if err := decodeConfig(name, defaultFile, &out); err != nil {
			return base, fmt.Errorf("parse %s: %w", name, err)
		}
		allNotFound = false
	}

	localPath := prefix + ".local" + ext
	localFile, err := os.ReadFile(localPath)
	if err != nil && !os.IsNotExist(err) {
		return base, err
	}
	if len(localFile) > 0 {
		if err := decodeConfig(localPath, localFile, &out); err != nil {
			return base, fmt.Errorf("parse %s: %w", localPath, err)
		}
		slog.Debug("merging config with local overrides", "local", localPath)
		allNotFound = false
	}

	if allNotFound {
		return base, os.ErrNotExist
	}
	return out, nil
}

// LoadConfig builds the configuration for base directory dir. Values from
// the config file override DefaultConfig. If path is empty, DefaultConfigFile
// in dir is used when it exists; an explicit path must exist.
func LoadConfig(dir, path string) (Config, error) {
	cfg := DefaultConfig()
	if dir != "" {
		cfg.Dir = dir
	}

	explicit := path != ""
	if !explicit {
		path = filepath.Join(cfg.Dir, DefaultConfigFile)
	}

	loaded, err := ReadConfigFile(path, cfg)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	// Dir and Logger are not part of the file format.
	loaded.Dir = cfg.Dir
	loaded.Logger = cfg.Logger

	slog.Debug("loaded config file", "path", path)
	return loaded, nil
}

// ApplyOverrides copies the non-empty fields of o over cfg. It is meant for
// command-line values, where an empty string means the flag was not given.
func ApplyOverrides(cfg *Config, o Config) error {
	if err := mergo.Merge(cfg, o, mergo.WithOverride); err != nil {
		return fmt.Errorf("apply overrides: %w", err)
	}
	return nil
}
