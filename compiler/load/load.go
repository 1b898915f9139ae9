// Package load reads Go source and returns the struct declarations that
// sqlbinder generates code for.
package load

import (
	"context"
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"path"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/go/packages"

	"github.com/syssam/sqlbinder/schema"
)

// Marker is the comment that selects a type for generation when no type
// names are given explicitly.
const Marker = "//sqlbinder:generate"

// Config configures a Load call.
type Config struct {
	// Patterns are the package patterns to load, e.g. "." or "./models/...".
	Patterns []string
	// Types selects types by name. If empty, types carrying the Marker
	// comment are selected.
	Types []string
	// BuildFlags are passed to the build system, e.g. "-tags=integration".
	BuildFlags []string
	// Dir is the working directory for the build system. Empty means the
	// current directory.
	Dir string
}

// Package is one loaded Go package and its selected declarations.
type Package struct {
	// Name is the package name.
	Name string
	// PkgPath is the import path.
	PkgPath string
	// Dir is the directory holding the package sources.
	Dir string
	// Decls are the selected declarations in source order.
	Decls []*schema.Decl
}

// Load loads the packages matching cfg.Patterns and collects their selected
// declarations. Packages without a selected type are omitted.
func Load(ctx context.Context, cfg *Config) ([]*Package, error) {
	if cfg == nil || len(cfg.Patterns) == 0 {
		return nil, errors.New("load: missing package patterns")
	}
	pcfg := &packages.Config{
		Context:    ctx,
		Dir:        cfg.Dir,
		BuildFlags: cfg.BuildFlags,
		Mode:       packages.NeedName | packages.NeedFiles | packages.NeedSyntax | packages.NeedImports,
	}
	pkgs, err := packages.Load(pcfg, cfg.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("load: loading packages: %w", err)
	}
	var (
		out   []*Package
		found = make(map[string]bool)
	)
	for _, p := range pkgs {
		if len(p.Errors) > 0 {
			return nil, fmt.Errorf("load: %s: %w", p.PkgPath, p.Errors[0])
		}
		decls, err := collect(p.Fset, p.Syntax, cfg.Types, importNames(p))
		if err != nil {
			return nil, fmt.Errorf("load: %s: %w", p.PkgPath, err)
		}
		if len(decls) == 0 {
			continue
		}
		for _, d := range decls {
			found[d.Name] = true
		}
		out = append(out, &Package{
			Name:    p.Name,
			PkgPath: p.PkgPath,
			Dir:     packageDir(p),
			Decls:   decls,
		})
	}
	if err := missing(cfg.Types, found); err != nil {
		return nil, err
	}
	return out, nil
}

// ParseFile parses a single source file, without type checking, and returns
// its selected declarations. The src argument follows parser.ParseFile.
func ParseFile(filename string, src any, names ...string) ([]*schema.Decl, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	decls, err := collect(fset, []*ast.File{f}, names, nil)
	if err != nil {
		return nil, fmt.Errorf("load: %w", err)
	}
	found := make(map[string]bool, len(decls))
	for _, d := range decls {
		found[d.Name] = true
	}
	if err := missing(names, found); err != nil {
		return nil, err
	}
	return decls, nil
}

// collect walks the top-level type declarations of files. resolved maps
// import paths to package names when type information is available.
func collect(fset *token.FileSet, files []*ast.File, names []string, resolved map[string]string) ([]*schema.Decl, error) {
	var decls []*schema.Decl
	for _, f := range files {
		imports := fileImports(f, resolved)
		for _, d := range f.Decls {
			gd, ok := d.(*ast.GenDecl)
			if !ok || gd.Tok != token.TYPE {
				continue
			}
			for _, spec := range gd.Specs {
				ts := spec.(*ast.TypeSpec)
				if !selected(ts, gd, names) {
					continue
				}
				decl, err := newDecl(fset, ts, imports)
				if err != nil {
					return nil, err
				}
				decls = append(decls, decl)
			}
		}
	}
	return decls, nil
}

func selected(ts *ast.TypeSpec, gd *ast.GenDecl, names []string) bool {
	if len(names) > 0 {
		return slices.Contains(names, ts.Name.Name)
	}
	if ts.Doc != nil {
		return hasMarker(ts.Doc)
	}
	// A lone spec shares the doc comment of its declaration.
	return len(gd.Specs) == 1 && hasMarker(gd.Doc)
}

func hasMarker(cg *ast.CommentGroup) bool {
	if cg == nil {
		return false
	}
	for _, c := range cg.List {
		if strings.TrimSpace(c.Text) == Marker {
			return true
		}
	}
	return false
}

func newDecl(fset *token.FileSet, ts *ast.TypeSpec, imports map[string]string) (*schema.Decl, error) {
	d := &schema.Decl{
		Name: ts.Name.Name,
		Pos:  position(fset, ts.Pos()),
	}
	if ts.TypeParams != nil {
		for _, tp := range ts.TypeParams.List {
			for _, n := range tp.Names {
				d.TypeParams = append(d.TypeParams, n.Name)
			}
		}
	}
	st, ok := ts.Type.(*ast.StructType)
	if !ok || ts.Assign.IsValid() {
		d.Kind = schema.KindOther
		return d, nil
	}
	for _, f := range st.Fields.List {
		tag := ""
		if f.Tag != nil {
			var err error
			if tag, err = strconv.Unquote(f.Tag.Value); err != nil {
				return nil, fmt.Errorf("%s: invalid struct tag %s: %w", position(fset, f.Tag.Pos()), f.Tag.Value, err)
			}
		}
		typ := types.ExprString(f.Type)
		if len(f.Names) == 0 {
			d.Fields = append(d.Fields, schema.DeclField{
				Name:     embeddedName(f.Type),
				Type:     typ,
				Tag:      tag,
				Embedded: true,
				Pos:      position(fset, f.Pos()),
			})
			continue
		}
		for _, n := range f.Names {
			d.Fields = append(d.Fields, schema.DeclField{
				Name: n.Name,
				Type: typ,
				Tag:  tag,
				Pos:  position(fset, n.Pos()),
			})
		}
	}
	d.Imports = usedImports(d, imports)
	return d, nil
}

// embeddedName returns the field name Go gives an embedded field.
func embeddedName(x ast.Expr) string {
	switch x := x.(type) {
	case *ast.Ident:
		return x.Name
	case *ast.StarExpr:
		return embeddedName(x.X)
	case *ast.SelectorExpr:
		return x.Sel.Name
	case *ast.IndexExpr:
		return embeddedName(x.X)
	case *ast.IndexListExpr:
		return embeddedName(x.X)
	default:
		return types.ExprString(x)
	}
}

// fileImports maps the package names visible in f to their import paths.
func fileImports(f *ast.File, resolved map[string]string) map[string]string {
	m := make(map[string]string, len(f.Imports))
	for _, spec := range f.Imports {
		p, err := strconv.Unquote(spec.Path.Value)
		if err != nil {
			continue
		}
		var name string
		switch {
		case spec.Name != nil:
			name = spec.Name.Name
		case resolved[p] != "":
			name = resolved[p]
		default:
			name = guessName(p)
		}
		if name == "_" || name == "." {
			continue
		}
		m[name] = p
	}
	return m
}

// usedImports keeps the imports referenced by the field types of d.
func usedImports(d *schema.Decl, imports map[string]string) map[string]string {
	var used map[string]string
	for _, f := range d.Fields {
		x, err := parser.ParseExpr(f.Type)
		if err != nil {
			continue
		}
		ast.Inspect(x, func(n ast.Node) bool {
			sel, ok := n.(*ast.SelectorExpr)
			if !ok {
				return true
			}
			if id, ok := sel.X.(*ast.Ident); ok {
				if p, ok := imports[id.Name]; ok {
					if used == nil {
						used = make(map[string]string)
					}
					used[id.Name] = p
				}
			}
			return false
		})
	}
	return used
}

// guessName derives a package name from an import path, the way goimports
// does for paths it cannot resolve.
func guessName(p string) string {
	base := path.Base(p)
	if len(base) > 1 && base[0] == 'v' && strings.Trim(base[1:], "0123456789") == "" {
		if dir := path.Dir(p); dir != "." {
			base = path.Base(dir)
		}
	}
	base = strings.TrimPrefix(base, "go-")
	if i := strings.IndexAny(base, ".-"); i >= 0 {
		base = base[:i]
	}
	return base
}

func importNames(p *packages.Package) map[string]string {
	m := make(map[string]string, len(p.Imports))
	for path, ip := range p.Imports {
		m[path] = ip.Name
	}
	return m
}

func packageDir(p *packages.Package) string {
	if len(p.GoFiles) > 0 {
		return filepath.Dir(p.GoFiles[0])
	}
	return p.Dir
}

func position(fset *token.FileSet, pos token.Pos) string {
	p := fset.Position(pos)
	return filepath.Base(p.Filename) + ":" + strconv.Itoa(p.Line)
}

func missing(names []string, found map[string]bool) error {
	var errs []error
	for _, n := range names {
		if !found[n] {
			errs = append(errs, fmt.Errorf("load: type %q not found", n))
		}
	}
	return errors.Join(errs...)
}
