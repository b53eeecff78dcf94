package config

import (
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/cube2222/exprtraits/exprtraits"
)

var ExprtraitsDir = func() string {
	dir, err := homedir.Dir()
	if err != nil {
		log.Fatalf("couldn't get user home directory: %s", err)
	}
	return filepath.Join(dir, ".exprtraits")
}()

var ErrNotFound = errors.New("vector class not found")

type TypeConfig struct {
	Name    string `yaml:"name"`
	Storage string `yaml:"storage"`
}

type CacheConfig struct {
	Enabled    bool  `yaml:"enabled"`
	MaxEntries int64 `yaml:"maxEntries"`
}

type Config struct {
	Output string       `yaml:"output"`
	Cache  CacheConfig  `yaml:"cache"`
	Types  []TypeConfig `yaml:"types"`
}

func Default() *Config {
	return &Config{
		Output: "table",
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 1 << 16,
		},
	}
}

// GetTypeConfig returns the configuration of a user-defined vector class, or ErrNotFound.
func (config *Config) GetTypeConfig(name string) (TypeConfig, error) {
	for i := range config.Types {
		if config.Types[i].Name == name {
			return config.Types[i], nil
		}
	}

	return TypeConfig{}, ErrNotFound
}

// Classes returns the user-defined vector classes, keyed by class name.
func (config *Config) Classes() (map[string]exprtraits.TypeID, error) {
	out := make(map[string]exprtraits.TypeID, len(config.Types))
	for _, t := range config.Types {
		if t.Name == "" {
			return nil, errors.New("vector class without a name")
		}
		switch strings.ToLower(t.Storage) {
		case "dense":
			out[t.Name] = exprtraits.TypeIDDenseVector
		case "sparse":
			out[t.Name] = exprtraits.TypeIDSparseVector
		default:
			return nil, errors.Errorf("invalid storage '%s' for vector class %s, must be one of: dense, sparse", t.Storage, t.Name)
		}
	}
	return out, nil
}

// Read reads the configuration from ~/.exprtraits/config.yml. If there's no such file, the defaults are used.
func Read() (*Config, error) {
	path := filepath.Join(ExprtraitsDir, "config.yml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return Default(), nil
	}
	return ReadConfig(path)
}

func ReadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "couldn't open file")
	}
	defer f.Close()

	config := Default()

	err = yaml.NewDecoder(f).Decode(config)
	if err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "couldn't decode yaml configuration")
	}

	switch config.Output {
	case "table", "json", "yaml", "csv":
	default:
		return nil, errors.Errorf("invalid output format '%s', must be one of: table, json, yaml, csv", config.Output)
	}

	return config, nil
}
