package validgen

import (
	"context"

	"github.com/syssam/validgen/compiler/gen"
	"github.com/syssam/validgen/compiler/load"
	"github.com/syssam/validgen/schema"
)

// Generate loads the given SDL schema files, compiles them into validator
// declarations and writes the generated source files.
//
// Example:
//
//	err := validgen.Generate(ctx, []string{"schema.graphql"},
//	    gen.WithPackage("github.com/org/app/appvalid"),
//	    gen.WithTarget("./appvalid"),
//	)
func Generate(ctx context.Context, schemaPaths []string, opts ...gen.Option) error {
	snap, err := load.Load(schemaPaths...)
	if err != nil {
		return err
	}
	return GenerateSnapshot(ctx, snap, opts...)
}

// GenerateSnapshot compiles an already-loaded snapshot and writes the
// generated source files. Callers that cache parsed schemas with
// load.ReadSnapshot use this entry point.
func GenerateSnapshot(ctx context.Context, snap *schema.Snapshot, opts ...gen.Option) error {
	g, err := gen.NewGenerator(snap, opts...)
	if err != nil {
		return err
	}
	decls, err := g.Compile()
	if err != nil {
		return err
	}
	return gen.NewWriter(g.Config(), decls).Write(ctx)
}
