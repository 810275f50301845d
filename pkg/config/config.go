package config

import (
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bmatcuk/doublestar"
	"github.com/pkg/errors"
	"github.com/pseudomuto/javafmt/pkg/consts"
	"github.com/pseudomuto/javafmt/pkg/format"
	"gopkg.in/yaml.v3"
)

// Config represents a javafmt settings file.
type Config struct {
	// Format holds the style options. Options missing from the file keep their
	// IntelliJ defaults.
	Format *format.Settings `yaml:"format" toml:"format"`

	// Include lists the glob patterns of the files formatted when a directory is given.
	// Patterns are matched against slash separated paths relative to that directory and
	// may use ** to cross directories.
	Include []string `yaml:"include,omitempty" toml:"include,omitempty"`

	// Exclude lists glob patterns removed from Include.
	Exclude []string `yaml:"exclude,omitempty" toml:"exclude,omitempty"`
}

// Default returns the configuration used when no settings file exists.
func Default() *Config {
	return &Config{
		Format:  format.DefaultSettings(),
		Include: []string{consts.DefaultInclude},
	}
}

// LoadConfig parses a YAML configuration from the provided io.Reader.
//
// Unknown keys are rejected so that a misspelled option does not silently keep its
// default. An empty document yields the defaults.
//
// Example:
//
//	yamlData := `
//	format:
//	  indent_size: 2
//	  space_before_if_parentheses: false
//	exclude:
//	  - "**/generated/**"
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Indent: %d\n", cfg.Format.IndentSize)
func LoadConfig(r io.Reader) (*Config, error) {
	cfg := Default()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return cfg.normalize(), nil
}

// LoadTOML parses a TOML configuration from the provided io.Reader. It accepts the same
// keys as LoadConfig.
func LoadTOML(r io.Reader) (*Config, error) {
	cfg := Default()

	meta, err := toml.NewDecoder(r).Decode(cfg)
	if err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}

		sort.Strings(keys)

		return nil, errors.Errorf("unknown config keys: %s", strings.Join(keys, ", "))
	}

	return cfg.normalize(), nil
}

// LoadConfigFile loads a configuration from the specified file path. Files ending in
// .toml are read with LoadTOML, everything else with LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("javafmt.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	load := LoadConfig
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		load = LoadTOML
	}

	cfg, err := load(f)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load config: %s", path)
	}

	return cfg, nil
}

// Settings returns the style options of c, or the defaults when c is nil.
func (c *Config) Settings() *format.Settings {
	if c == nil || c.Format == nil {
		return format.DefaultSettings()
	}

	return c.Format
}

// Matches reports whether the file at rel, a path relative to the formatted directory,
// is included and not excluded.
func (c *Config) Matches(rel string) (bool, error) {
	if c == nil {
		c = Default()
	}

	rel = filepath.ToSlash(rel)

	included, err := matchAny(c.Include, rel)
	if err != nil || !included {
		return false, err
	}

	excluded, err := matchAny(c.Exclude, rel)
	if err != nil {
		return false, err
	}

	return !excluded, nil
}

func matchAny(patterns []string, name string) (bool, error) {
	for _, pattern := range patterns {
		ok, err := doublestar.Match(pattern, name)
		if err != nil {
			return false, errors.Wrapf(err, "invalid pattern: %s", pattern)
		}

		if ok {
			return true, nil
		}
	}

	return false, nil
}

func (c *Config) normalize() *Config {
	if c.Format == nil {
		c.Format = format.DefaultSettings()
	}

	if len(c.Include) == 0 {
		c.Include = []string{consts.DefaultInclude}
	}

	return c
}
