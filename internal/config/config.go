package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"unicode"
	"unicode/utf8"

	"github.com/violetpay-org/metastring/internal/errors"
	"gopkg.in/yaml.v3"
)

// SpecialChars holds the two characters at codes 62 and 63 of the
// 64-symbol alphabet.
type SpecialChars struct {
	First  string `yaml:"first"`
	Second string `yaml:"second"`
}

// OutputConfig controls how the CLI prints payloads.
type OutputConfig struct {
	Format string `yaml:"format"`          // hex, base64 or cbor
	Color  *bool  `yaml:"color,omitempty"` // nil follows the terminal
}

// Config represents the metastr configuration file.
type Config struct {
	Version      int          `yaml:"version"`
	SpecialChars SpecialChars `yaml:"special_chars"`
	Output       OutputConfig `yaml:"output"`
}

// Default values.
const (
	DefaultVersion       = 1
	DefaultSpecialFirst  = "."
	DefaultSpecialSecond = "_"
	DefaultFormat        = "hex"
)

// Formats lists the accepted output.format values.
var Formats = []string{"hex", "base64", "cbor"}

// Default returns a config with every field at its default.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates config from the default location.
func Load() (*Config, error) {
	return LoadFrom(NewPaths().ConfigFile)
}

// LoadFrom reads and validates config from a specific path.
func LoadFrom(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ConfigNotFound(path)
		}
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to read config", "", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(errors.ErrConfigInvalid, "failed to parse config YAML", "Check config syntax", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// LoadOrDefault reads config from path, falling back to Default when the
// file does not exist. Any other failure is returned.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := LoadFrom(path)
	if err != nil {
		if e, ok := err.(*errors.CLIError); ok && e.Code == errors.ErrConfigNotFound {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// SaveTo writes config to a specific path.
func SaveTo(cfg *Config, path string) error {
	cfg.applyDefaults()

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to marshal config", "", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrap(errors.ErrConfigInvalid, "failed to create config directory", "", err)
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks config for valid values.
func (c *Config) Validate() error {
	first, err := specialRune("special_chars.first", c.SpecialChars.First)
	if err != nil {
		return err
	}
	second, err := specialRune("special_chars.second", c.SpecialChars.Second)
	if err != nil {
		return err
	}
	if first == second {
		return errors.ConfigInvalid("special_chars.first and special_chars.second must differ")
	}

	if !slices.Contains(Formats, c.Output.Format) {
		return errors.ConfigInvalid(fmt.Sprintf("unknown output.format %q, use one of hex, base64, cbor", c.Output.Format))
	}

	return nil
}

// Runes returns the configured special character pair. It assumes the
// config has been validated.
func (c *Config) Runes() (rune, rune) {
	first, _ := utf8.DecodeRuneInString(c.SpecialChars.First)
	second, _ := utf8.DecodeRuneInString(c.SpecialChars.Second)
	return first, second
}

// applyDefaults sets default values for empty fields.
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = DefaultVersion
	}
	if c.SpecialChars.First == "" {
		c.SpecialChars.First = DefaultSpecialFirst
	}
	if c.SpecialChars.Second == "" {
		c.SpecialChars.Second = DefaultSpecialSecond
	}
	if c.Output.Format == "" {
		c.Output.Format = DefaultFormat
	}
}

// specialRune checks that s is exactly one character outside A-Z, a-z
// and 0-9, which already have codes of their own.
func specialRune(field, s string) (rune, error) {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError || size != len(s) {
		return 0, errors.ConfigInvalid(field + " must be a single character")
	}
	if r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
		return 0, errors.ConfigInvalid(fmt.Sprintf("%s %q must not be a letter or digit", field, r))
	}
	return r, nil
}
