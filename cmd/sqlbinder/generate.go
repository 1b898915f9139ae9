package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/syssam/sqlbinder/compiler/gen"
	"github.com/syssam/sqlbinder/compiler/load"
	"github.com/syssam/sqlbinder/schema"
)

type cmdGenerate struct {
	global *globalFlags

	types      []string
	tag        string
	suffix     string
	header     string
	buildFlags []string
	workers    int
	watch      bool
	debounce   time.Duration
}

func (c *cmdGenerate) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "generate [packages]"
	cmd.Short = "Generate binder files"
	cmd.Long = `Description:
  Generate binder files

  For every selected struct a <type>_binder.go file is written next to it.
  It holds the column names, a sealed field enum, field accessors and the
  Insert and Update statement builders.

  Types are selected with --type, or else by a //sqlbinder:generate comment
  on the type declaration. Packages default to the current directory.
`
	cmd.Args = cobra.ArbitraryArgs
	cmd.RunE = c.Run

	cmd.Flags().StringSliceVarP(&c.types, "type", "t", nil, "Comma separated list of type names to generate for")
	cmd.Flags().StringVar(&c.tag, "tag", schema.TagKey, "Struct tag key holding the field directives")
	cmd.Flags().StringVar(&c.suffix, "suffix", gen.DefaultSuffix, "Suffix of the generated file names")
	cmd.Flags().StringVar(&c.header, "header", gen.DefaultHeader, "Header comment of the generated files")
	cmd.Flags().StringSliceVar(&c.buildFlags, "build-flags", nil, "Flags passed to the build system, e.g. -tags=integration")
	cmd.Flags().IntVar(&c.workers, "workers", 0, "Number of types rendered concurrently (0 uses all CPUs)")
	cmd.Flags().BoolVarP(&c.watch, "watch", "w", false, "Regenerate whenever a source file changes")
	cmd.Flags().DurationVar(&c.debounce, "debounce", 200*time.Millisecond, "Quiet period before regenerating in watch mode")

	return cmd
}

func (c *cmdGenerate) Run(cmd *cobra.Command, args []string) error {
	fc, err := c.global.loadConfig(cmd.Flags())
	if err != nil {
		return err
	}
	c.merge(cmd, fc)
	patterns := fc.patterns(args)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if !c.watch {
		_, err := c.generate(ctx, patterns)
		return err
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	pkgs, err := c.generate(ctx, patterns)
	if err != nil {
		c.global.logger().Error("generation failed", "err", err)
	}
	w := &watcher{
		dirs:     watchDirs(c.global.dir, pkgs, patterns),
		suffix:   c.suffix,
		debounce: c.debounce,
		log:      c.global.logger(),
		run: func(ctx context.Context) error {
			_, err := c.generate(ctx, patterns)
			return err
		},
	}
	return w.Watch(ctx)
}

func (c *cmdGenerate) merge(cmd *cobra.Command, fc *fileConfig) {
	flags := cmd.Flags()
	mergeStrings(flags, "type", &c.types, fc.Types)
	mergeString(flags, "tag", &c.tag, fc.Tag)
	mergeString(flags, "suffix", &c.suffix, fc.Suffix)
	mergeStrings(flags, "build-flags", &c.buildFlags, fc.BuildFlags)
	if fc.Header != nil && !flags.Changed("header") {
		c.header = *fc.Header
	}
	if fc.Workers > 0 && !flags.Changed("workers") {
		c.workers = fc.Workers
	}
}

// generate loads the packages and writes the binder files of each one. A
// failing package does not stop the others.
func (c *cmdGenerate) generate(ctx context.Context, patterns []string) ([]*load.Package, error) {
	log := c.global.logger()
	start := time.Now()

	pkgs, err := load.Load(ctx, &load.Config{
		Patterns:   patterns,
		Types:      c.types,
		BuildFlags: c.buildFlags,
		Dir:        c.global.dir,
	})
	if err != nil {
		return nil, err
	}
	if len(pkgs) == 0 {
		log.Warn("no types selected", "patterns", strings.Join(patterns, " "), "marker", load.Marker)
		return nil, nil
	}

	var errs []error
	for _, p := range pkgs {
		opts := []gen.Option{
			gen.WithTarget(p.Dir),
			gen.WithPackage(p.Name),
			gen.WithHeader(c.header),
			gen.WithTagKey(c.tag),
			gen.WithSuffix(c.suffix),
			gen.WithLogger(log.With("package", p.PkgPath)),
		}
		if c.workers > 0 {
			opts = append(opts, gen.WithWorkers(c.workers))
		}
		cfg, err := gen.NewConfig(opts...)
		if err != nil {
			return pkgs, err
		}
		if err := gen.Generate(ctx, cfg, p.Decls...); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", p.PkgPath, err))
		}
	}
	log.Info("generate finished", "packages", len(pkgs), "duration", time.Since(start))
	return pkgs, errors.Join(errs...)
}

// watchDirs returns the directories of the loaded packages, plus every
// pattern naming a plain directory so packages without selected types are
// still watched.
func watchDirs(base string, pkgs []*load.Package, patterns []string) []string {
	seen := make(map[string]bool)
	var dirs []string
	add := func(d string) {
		if d == "" || seen[d] {
			return
		}
		seen[d] = true
		dirs = append(dirs, d)
	}
	for _, p := range pkgs {
		add(p.Dir)
	}
	for _, pat := range patterns {
		if strings.Contains(pat, "...") {
			continue
		}
		d := pat
		if base != "" && !filepath.IsAbs(d) {
			d = filepath.Join(base, d)
		}
		if fi, err := os.Stat(d); err == nil && fi.IsDir() {
			if abs, err := filepath.Abs(d); err == nil {
				d = abs
			}
			add(d)
		}
	}
	return dirs
}
