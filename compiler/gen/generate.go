package gen

import (
	"context"
	"os"
	"slices"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/syssam/sqlbinder/schema"
)

// Generator renders the binder files of a Graph in parallel. Types share no
// state, so each one is rendered by its own worker.
type Generator struct {
	graph   *Graph
	metrics *metrics
}

// NewGenerator creates a Generator for g.
func NewGenerator(g *Graph) *Generator {
	return &Generator{
		graph:   g,
		metrics: &metrics{},
	}
}

// Metrics returns a snapshot of the generation metrics.
func (g *Generator) Metrics() WriterMetrics {
	return g.metrics.snapshot()
}

// Render renders every type into memory and returns the file contents keyed
// by output path.
func (g *Generator) Render(ctx context.Context) (map[string][]byte, error) {
	outs, err := g.renderAll(ctx)
	if err != nil {
		return nil, err
	}
	files := make(map[string][]byte, len(outs))
	for _, o := range outs {
		files[o.path] = o.data
	}
	return files, nil
}

// Generate renders every type and, only if all of them succeed, writes the
// files into the target directory.
func (g *Generator) Generate(ctx context.Context) error {
	if g.graph == nil || g.graph.Config == nil {
		return NewConfigError("Config", nil, "missing graph config")
	}
	if err := g.graph.validate(); err != nil {
		return err
	}
	outs, err := g.renderAll(ctx)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(g.graph.Target, 0o755); err != nil {
		return NewGenerationError("write", g.graph.Target, "create output directory", err)
	}
	log := g.graph.logger()
	for _, o := range outs {
		if err := g.write(o); err != nil {
			return err
		}
		log.Debug("generated binder", "type", o.typ, "file", o.path, "bytes", len(o.data))
	}
	m := g.Metrics()
	log.Info("generation complete",
		"package", g.graph.Package,
		"files", m.FilesGenerated,
		"bytes", m.TotalBytes,
	)
	return nil
}

func (g *Generator) renderAll(ctx context.Context) ([]*output, error) {
	outs := make([]*output, len(g.graph.Nodes))
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.graph.workers())
	for i, t := range g.graph.Nodes {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			o, err := g.render(t)
			if err != nil {
				return err
			}
			outs[i] = o
			return nil
		})
	}
	if err := errg.Wait(); err != nil {
		return nil, err
	}
	slices.SortStableFunc(outs, func(a, b *output) int {
		return strings.Compare(a.path, b.path)
	})
	return outs, nil
}

// Generate is the convenience function that builds the graph of decls and
// writes their binder files.
func Generate(ctx context.Context, c *Config, decls ...*schema.Decl) error {
	g, err := NewGraph(c, decls...)
	if err != nil {
		return err
	}
	return NewGenerator(g).Generate(ctx)
}
