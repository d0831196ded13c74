// Package config loads genero.toml, the per-project settings file.
//
// A project file is optional. Without one every command runs with the
// defaults below, relative to the working directory. Relative paths in a
// file are resolved against the directory that holds it.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the name searched for by Find.
const FileName = "genero.toml"

const (
	DefaultInput         = "data_in/nombres_unicos.csv"
	DefaultResultsDir    = "01data_out"
	DefaultValidationDir = "02data_validation"
	DefaultMetricsDir    = "03ground_truth"
	DefaultSampleSize    = 500
	DefaultSeed          = 42
	DefaultChunkSize     = 256
)

// Config is the resolved project configuration.
type Config struct {
	// Path is the file the values came from, or "" for defaults.
	Path string `toml:"-"`
	// Root is the base directory for relative paths.
	Root string `toml:"-"`

	Paths  PathsConfig  `toml:"paths"`
	Infer  InferConfig  `toml:"infer"`
	Sample SampleConfig `toml:"sample"`
	Rules  RulesConfig  `toml:"rules"`
}

type PathsConfig struct {
	Input         string `toml:"input"`
	ResultsDir    string `toml:"results_dir"`
	ValidationDir string `toml:"validation_dir"`
	MetricsDir    string `toml:"metrics_dir"`
}

type InferConfig struct {
	Workers   int `toml:"workers"`
	ChunkSize int `toml:"chunk_size"`
}

type SampleConfig struct {
	Size int    `toml:"size"`
	Seed uint64 `toml:"seed"`
}

type RulesConfig struct {
	// File replaces the built-in rule tables when set.
	File string `toml:"file"`
}

// Default returns the built-in configuration rooted at root.
func Default(root string) *Config {
	return &Config{
		Root: root,
		Paths: PathsConfig{
			Input:         DefaultInput,
			ResultsDir:    DefaultResultsDir,
			ValidationDir: DefaultValidationDir,
			MetricsDir:    DefaultMetricsDir,
		},
		Infer: InferConfig{
			Workers:   runtime.NumCPU(),
			ChunkSize: DefaultChunkSize,
		},
		Sample: SampleConfig{
			Size: DefaultSampleSize,
			Seed: DefaultSeed,
		},
	}
}

// Find walks from startDir up to the filesystem root looking for FileName.
func Find(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// Load reads the file at path on top of the defaults.
func Load(path string) (*Config, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path: %w", err)
	}
	cfg := Default(filepath.Dir(abs))
	cfg.Path = abs

	meta, err := toml.DecodeFile(abs, cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: parse TOML: %w", abs, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("%s: unknown keys: %s", abs, strings.Join(keys, ", "))
	}
	if meta.IsDefined("paths", "input") && strings.TrimSpace(cfg.Paths.Input) == "" {
		return nil, fmt.Errorf("%s: [paths].input is empty", abs)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", abs, err)
	}
	return cfg, nil
}

// Resolve loads explicit when set, otherwise the nearest FileName above
// startDir, otherwise the defaults rooted at startDir.
func Resolve(explicit, startDir string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	path, ok, err := Find(startDir)
	if err != nil {
		return nil, err
	}
	if ok {
		return Load(path)
	}
	root, err := filepath.Abs(startDir)
	if err != nil {
		return nil, fmt.Errorf("resolve start directory: %w", err)
	}
	return Default(root), nil
}

// Validate checks the numeric settings.
func (c *Config) Validate() error {
	if c.Infer.Workers < 1 {
		return fmt.Errorf("[infer].workers must be at least 1, got %d", c.Infer.Workers)
	}
	if c.Infer.ChunkSize < 1 {
		return fmt.Errorf("[infer].chunk_size must be at least 1, got %d", c.Infer.ChunkSize)
	}
	if c.Sample.Size < 1 {
		return fmt.Errorf("[sample].size must be at least 1, got %d", c.Sample.Size)
	}
	return nil
}

// Abs resolves p against Root unless it is already absolute.
func (c *Config) Abs(p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(c.Root, filepath.FromSlash(p))
}

func (c *Config) InputPath() string     { return c.Abs(c.Paths.Input) }
func (c *Config) ResultsDir() string    { return c.Abs(c.Paths.ResultsDir) }
func (c *Config) ValidationDir() string { return c.Abs(c.Paths.ValidationDir) }
func (c *Config) MetricsDir() string    { return c.Abs(c.Paths.MetricsDir) }
func (c *Config) RulesFile() string     { return c.Abs(c.Rules.File) }
