package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the config file looked up when none is given.
const DefaultPath = ".insist.yaml"

// File represents the structure of .insist.yaml (or .insist.json).
type File struct {
	// Disabled turns OfType and IsType into no-ops.
	Disabled bool `yaml:"disabled" json:"disabled" mapstructure:"disabled"`
	// Aliases maps a call name (args, ofType) to the text the remover looks for.
	Aliases  map[string]string `yaml:"aliases" json:"aliases" mapstructure:"aliases"`
	LogLevel string            `yaml:"log_level" json:"log_level" mapstructure:"log_level"`
}

// Load reads a configuration file (YAML or JSON). A missing file yields the
// zero configuration.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return File{}, nil
		}
		return File{}, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg File
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return File{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return File{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}
	return cfg, nil
}

// DisabledFromEnv reports whether the environment turns checks off.
//
// INSIST_DISABLED takes precedence when set to a boolean. Otherwise checks
// are off in production (NODE_ENV=production) unless INSIST_IN_PROD=true.
func DisabledFromEnv(getenv func(string) string) bool {
	if v := getenv("INSIST_DISABLED"); v != "" {
		if disabled, err := strconv.ParseBool(v); err == nil {
			return disabled
		}
	}
	return getenv("NODE_ENV") == "production" && getenv("INSIST_IN_PROD") != "true"
}

// Apply overlays the environment on the file configuration.
func (f File) Apply(getenv func(string) string) File {
	if DisabledFromEnv(getenv) {
		f.Disabled = true
	}
	if level := getenv("INSIST_LOG_LEVEL"); level != "" {
		f.LogLevel = level
	}
	return f
}

// Decode copies a loosely typed map (a decoded JSON body, MCP arguments)
// into out, matching `mapstructure` tags. Scalars are converted where it is
// unambiguous ("true" -> true) and unknown keys are rejected.
func Decode(input any, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(input); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}
