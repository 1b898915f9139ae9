package gen

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/tools/imports"
)

// WriterMetrics tracks generation performance.
type WriterMetrics struct {
	FilesGenerated int
	TotalBytes     int64
	RenderTime     time.Duration
	FormatTime     time.Duration
	WriteTime      time.Duration
}

// formatOptions formats and groups imports without resolving new ones;
// every import is already declared by the renderer.
var formatOptions = &imports.Options{
	Comments:   true,
	TabIndent:  true,
	TabWidth:   8,
	FormatOnly: true,
}

// output is one rendered file, held in memory until every type rendered.
type output struct {
	typ  string
	path string
	data []byte
}

type metrics struct {
	mu sync.Mutex
	WriterMetrics
}

func (m *metrics) add(fn func(*WriterMetrics)) {
	m.mu.Lock()
	defer m.mu.Unlock()
	fn(&m.WriterMetrics)
}

func (m *metrics) snapshot() WriterMetrics {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.WriterMetrics
}

// render renders and formats the binder file of t.
func (g *Generator) render(t *Type) (*output, error) {
	path := filepath.Join(g.graph.Target, t.FileName(g.graph.suffix()))

	start := time.Now()
	var buf bytes.Buffer
	if err := g.graph.genBinder(t).Render(&buf); err != nil {
		return nil, NewGenerationError("render", path, t.Name, err)
	}
	rendered := time.Now()

	formatted, err := imports.Process(path, buf.Bytes(), formatOptions)
	if err != nil {
		return nil, NewGenerationError("format", path, t.Name, err)
	}
	g.metrics.add(func(m *WriterMetrics) {
		m.RenderTime += rendered.Sub(start)
		m.FormatTime += time.Since(rendered)
	})
	return &output{typ: t.Name, path: path, data: formatted}, nil
}

// write replaces the file at o.path. The content goes to a temporary file
// in the same directory first, so a failed write leaves no partial file.
func (g *Generator) write(o *output) error {
	start := time.Now()
	tmp, err := os.CreateTemp(filepath.Dir(o.path), "."+filepath.Base(o.path)+".*")
	if err != nil {
		return NewGenerationError("write", o.path, "create temporary file", err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.Write(o.data); err != nil {
		tmp.Close()
		return NewGenerationError("write", o.path, "", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return NewGenerationError("write", o.path, "", err)
	}
	if err := tmp.Close(); err != nil {
		return NewGenerationError("write", o.path, "", err)
	}
	if err := os.Rename(tmp.Name(), o.path); err != nil {
		return NewGenerationError("write", o.path, "", err)
	}
	g.metrics.add(func(m *WriterMetrics) {
		m.FilesGenerated++
		m.TotalBytes += int64(len(o.data))
		m.WriteTime += time.Since(start)
	})
	return nil
}
