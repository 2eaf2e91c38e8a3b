package gen

import (
	"runtime"

	"github.com/syssam/validgen/schema"
)

// Generator compiles a schema snapshot into an ordered list of validator
// declarations. A Generator is built fresh per run and performs a single
// synchronous pass over the snapshot; it holds no mutable state shared
// across declarations besides output ordering.
type Generator struct {
	cfg  *Config
	snap *schema.Snapshot
}

// NewGenerator creates a Generator for the given snapshot.
func NewGenerator(snap *schema.Snapshot, opts ...Option) (*Generator, error) {
	if snap == nil {
		return nil, NewSnapshotError("", "", "snapshot is nil", nil)
	}
	cfg := &Config{
		Header:     DefaultHeader,
		RuntimePkg: DefaultRuntimePkg,
		Workers:    runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}
	return &Generator{cfg: cfg, snap: snap}, nil
}

// Config returns the generator configuration.
func (g *Generator) Config() *Config {
	return g.cfg
}

// Compile produces the full ordered declaration list: enums first, then
// input object types with deferred references, then one argument set per
// root Query and Mutation field with direct references. Any descriptor
// that fails classification, or any field without a non-null candidate,
// fails the whole run.
func (g *Generator) Compile() ([]*Declaration, error) {
	decls := make([]*Declaration, 0, len(g.snap.Enums)+len(g.snap.Inputs)+len(g.snap.Operations))
	for _, e := range g.snap.Enums {
		decls = append(decls, g.enumDecl(e))
	}
	for _, t := range g.snap.Inputs {
		d, err := g.inputDecl(t)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	for _, op := range g.snap.Operations {
		d, err := g.argsDecl(op)
		if err != nil {
			return nil, err
		}
		decls = append(decls, d)
	}
	return decls, nil
}
