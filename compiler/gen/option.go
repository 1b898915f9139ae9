package gen

import (
	"errors"
	"go/token"
	"log/slog"
	"runtime"
	"strings"

	"github.com/syssam/sqlbinder/schema"
)

// Defaults applied by NewConfig.
const (
	// DefaultHeader is the first line of every generated file.
	DefaultHeader = "Code generated by sqlbinder, DO NOT EDIT."
	// DefaultSuffix is appended to the snake case type name to form the
	// output file name.
	DefaultSuffix = "_binder"
)

// Config holds the generation settings for one Go package.
type Config struct {
	// Target is the directory the generated files are written to.
	Target string
	// Package is the package clause of the generated files.
	Package string
	// Header is the leading comment of the generated files.
	Header string
	// TagKey is the struct-tag key holding the field directives.
	TagKey string
	// Suffix forms the file name: <snake type name><Suffix>.go.
	Suffix string
	// Workers bounds the number of types rendered concurrently.
	Workers int
	// Logger receives warnings and progress. Defaults to slog.Default().
	Logger *slog.Logger
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the package name of the generated files.
func WithPackage(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return NewConfigError("Package", nil, "package cannot be empty")
		}
		if !token.IsIdentifier(name) {
			return NewConfigError("Package", name, "package must be a Go identifier")
		}
		c.Package = name
		return nil
	}
}

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithTagKey sets the struct-tag key that holds the field directives.
func WithTagKey(key string) Option {
	return func(c *Config) error {
		if key == "" {
			return NewConfigError("TagKey", nil, "tag key cannot be empty")
		}
		if strings.ContainsAny(key, " :\"") {
			return NewConfigError("TagKey", key, "tag key cannot contain spaces, colons or quotes")
		}
		c.TagKey = key
		return nil
	}
}

// WithSuffix sets the file name suffix, e.g. "_binder" for dog_binder.go.
func WithSuffix(suffix string) Option {
	return func(c *Config) error {
		if suffix == "" {
			return NewConfigError("Suffix", nil, "suffix cannot be empty")
		}
		if strings.HasSuffix(suffix, "_test") || strings.ContainsAny(suffix, `/\`) {
			return NewConfigError("Suffix", suffix, "suffix must not name a test file or a directory")
		}
		c.Suffix = suffix
		return nil
	}
}

// WithWorkers sets the number of parallel workers.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n <= 0 {
			return NewConfigError("Workers", n, "workers must be positive")
		}
		c.Workers = n
		return nil
	}
}

// WithLogger sets the logger used for warnings and progress.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Header:  DefaultHeader,
		TagKey:  schema.TagKey,
		Suffix:  DefaultSuffix,
		Workers: runtime.GOMAXPROCS(0),
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// validate checks the settings required for writing files.
func (c *Config) validate() error {
	var errs []error
	if c.Target == "" {
		errs = append(errs, NewConfigError("Target", nil, "missing target directory in config"))
	}
	if c.Package == "" {
		errs = append(errs, NewConfigError("Package", nil, "missing package name in config"))
	}
	return errors.Join(errs...)
}

func (c *Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c *Config) tagKey() string {
	if c.TagKey != "" {
		return c.TagKey
	}
	return schema.TagKey
}

func (c *Config) suffix() string {
	if c.Suffix != "" {
		return c.Suffix
	}
	return DefaultSuffix
}

func (c *Config) workers() int {
	if c.Workers > 0 {
		return c.Workers
	}
	return runtime.GOMAXPROCS(0)
}
