package gen

import (
	"bytes"
	"context"
	"os"
	"path"
	"path/filepath"
	"runtime"

	"github.com/dave/jennifer/jen"
	"golang.org/x/sync/errgroup"
	"golang.org/x/tools/imports"
)

// Output file names, one per declaration group.
var groupFiles = map[DeclKind]string{
	DeclEnum:  "enums.go",
	DeclInput: "inputs.go",
	DeclArgs:  "args.go",
}

// Writer renders compiled declarations into Go source files, one file per
// declaration group, written in parallel.
type Writer struct {
	cfg     *Config
	decls   []*Declaration
	workers int
}

// NewWriter creates a writer for the given declarations.
func NewWriter(cfg *Config, decls []*Declaration) *Writer {
	workers := cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Writer{cfg: cfg, decls: decls, workers: workers}
}

// Write renders and writes all output files. Empty groups produce no file.
func (w *Writer) Write(ctx context.Context) error {
	if w.cfg.Target == "" {
		return NewConfigError("Target", nil, "no output directory set")
	}
	if w.cfg.Package == "" {
		return NewConfigError("Package", nil, "no target package set")
	}
	if err := os.MkdirAll(w.cfg.Target, 0o755); err != nil {
		return NewGenerationError("write", w.cfg.Target, "create output directory", err)
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(w.workers)

	for _, k := range []DeclKind{DeclEnum, DeclInput, DeclArgs} {
		group := w.group(k)
		if len(group) == 0 {
			continue
		}
		name := groupFiles[k]
		eg.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
				return w.writeFile(name, k.String(), group)
			}
		})
	}

	return eg.Wait()
}

// group returns the declarations of one kind, preserving compile order.
func (w *Writer) group(k DeclKind) []*Declaration {
	var group []*Declaration
	for _, d := range w.decls {
		if d.Kind == k {
			group = append(group, d)
		}
	}
	return group
}

// writeFile renders one group file and writes it to the target directory.
// The rendered source is passed through goimports to prune unused imports
// and normalize raw fragments.
func (w *Writer) writeFile(name, banner string, group []*Declaration) error {
	f := w.newFile(banner, group)

	var buf bytes.Buffer
	if err := f.Render(&buf); err != nil {
		return NewGenerationError("render", name, "render declarations", err)
	}

	fullPath := filepath.Join(w.cfg.Target, name)
	formatted, err := imports.Process(fullPath, buf.Bytes(), nil)
	if err != nil {
		return NewGenerationError("render", name, "format output", err)
	}
	if err := os.WriteFile(fullPath, formatted, 0o644); err != nil {
		return NewGenerationError("write", name, "write output", err)
	}
	return nil
}

// newFile builds the jennifer file for one declaration group: a section
// banner followed by, per declaration, an exported variable and the
// builder function backing it. The variable carries an explicit Schema
// type annotation; builders return the concrete chain so reference sites
// in other declarations (lazy or direct) get a fresh value that modifiers
// apply to without touching the shared variable.
func (w *Writer) newFile(banner string, group []*Declaration) *jen.File {
	pkgName := path.Base(w.cfg.Package)
	f := jen.NewFilePathName(w.cfg.Package, pkgName)
	f.HeaderComment(w.cfg.Header)
	f.Comment(banner + ".")

	for _, d := range group {
		f.Line()
		f.Commentf("%s validates %s values.", d.Name, d.GoType)
		f.Var().Id(d.Name).Qual(w.cfg.RuntimePkg, "Schema").Op("=").Id(d.Builder).Call()
		f.Line()
		f.Func().Id(d.Builder).Params().Op("*").Qual(w.cfg.RuntimePkg, "Chain").Block(
			jen.Return(d.Body),
		)
	}
	return f
}
