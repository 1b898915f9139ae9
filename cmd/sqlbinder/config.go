package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

const defaultConfigFile = ".sqlbinder.yaml"

// fileConfig is the layout of the configuration file. Command line flags
// take precedence over every value set here.
type fileConfig struct {
	Packages   []string     `yaml:"packages"`
	Types      []string     `yaml:"types"`
	Tag        string       `yaml:"tag"`
	Suffix     string       `yaml:"suffix"`
	Header     *string      `yaml:"header"`
	BuildFlags []string     `yaml:"build_flags"`
	Workers    int          `yaml:"workers"`
	Verify     verifyConfig `yaml:"verify"`
}

type verifyConfig struct {
	Driver   string            `yaml:"driver"`
	DSN      string            `yaml:"dsn"`
	Database string            `yaml:"database"`
	Tables   map[string]string `yaml:"tables"`
}

// loadConfig reads the configuration file at path. A missing file is only
// an error if the path was given explicitly.
func loadConfig(path string, explicit bool) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &fileConfig{}, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	c := &fileConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	err = dec.Decode(c)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return c, nil
}

// loadConfig reads the configuration file selected by the global flags.
func (g *globalFlags) loadConfig(flags *pflag.FlagSet) (*fileConfig, error) {
	path := g.config
	if g.dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(g.dir, path)
	}
	return loadConfig(path, flags.Changed("config"))
}

// patterns returns the package patterns to load: the arguments, else the
// configured packages, else the current package.
func (c *fileConfig) patterns(args []string) []string {
	switch {
	case len(args) > 0:
		return args
	case len(c.Packages) > 0:
		return c.Packages
	default:
		return []string{"."}
	}
}

// Helpers that apply a file value unless the flag was set.

func mergeString(flags *pflag.FlagSet, name string, dst *string, v string) {
	if v != "" && !flags.Changed(name) {
		*dst = v
	}
}

func mergeStrings(flags *pflag.FlagSet, name string, dst *[]string, v []string) {
	if len(v) > 0 && !flags.Changed(name) {
		*dst = v
	}
}
