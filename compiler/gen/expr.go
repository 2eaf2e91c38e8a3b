package gen

import (
	"unicode"
	"unicode/utf8"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/validgen/schema"
)

// modifiers are the wrapping flags applied to one branch expression.
// List wraps immediately after the base constructor or reference; Optional
// and Nullable follow, in that order.
type modifiers struct {
	list     bool
	optional bool
	nullable bool
}

// fieldExpr compiles one field or argument slot into a validator
// expression. Multi-candidate slots compile into a union with the
// optional/nullable modifiers applied once at the union's close; single
// candidate slots apply them inline. deferRef selects lazy reference
// wrapping and is true for input type fields, which may form cycles, and
// false for operation arguments, which never do.
func (g *Generator) fieldExpr(typeName string, f *schema.Field, deferRef bool) (*jen.Statement, error) {
	cands := f.NonNull()
	if len(cands) == 0 {
		return nil, NewSnapshotError(typeName, f.Name, "field has no non-null candidate type", nil)
	}
	// A null marker among the candidates makes the slot nullable, same as
	// the slot's own flag.
	nullable := f.Nullable || f.AcceptsNull()

	if len(cands) == 1 {
		c, err := g.classify(cands[0], typeName, f.Name)
		if err != nil {
			return nil, err
		}
		return g.branchExpr(c, f, modifiers{
			list:     c.list,
			optional: !f.Required,
			nullable: nullable,
		}, deferRef), nil
	}

	branches := make([]jen.Code, 0, len(cands))
	for _, cand := range cands {
		c, err := g.classify(cand, typeName, f.Name)
		if err != nil {
			return nil, err
		}
		// Optional/nullable are withheld inside a union; the list flag is
		// per-descriptor and stays on its branch.
		branches = append(branches, g.branchExpr(c, f, modifiers{list: c.list}, deferRef))
	}
	expr := jen.Qual(g.cfg.RuntimePkg, "Union").Call(branches...)
	return applyModifiers(expr, modifiers{optional: !f.Required, nullable: nullable}), nil
}

// branchExpr emits the expression for one classified descriptor. The
// switch is exhaustive over Kind, so exactly one branch form is produced
// for any classified descriptor.
func (g *Generator) branchExpr(c classified, f *schema.Field, m modifiers, deferRef bool) *jen.Statement {
	var expr *jen.Statement
	switch c.kind {
	case KindScalar:
		expr = g.scalarExpr(c, f)
	case KindRef:
		expr = g.refExpr(c, deferRef)
	case KindNull:
		// fieldExpr folds null markers into the slot's nullable flag; this
		// arm keeps the match exhaustive over Kind.
		expr = jen.Qual(g.cfg.RuntimePkg, "Null").Call()
	}
	return applyModifiers(expr, m)
}

// scalarExpr emits `valid.<Ctor>(<errorSpec?>)<checkExpr?>`. The error
// spec and check expression are opaque fragments inserted verbatim; the
// render pass normalizes their formatting.
func (g *Generator) scalarExpr(c classified, f *schema.Field) *jen.Statement {
	expr := jen.Qual(g.cfg.RuntimePkg, c.ctor)
	if f.ErrorSpec != "" {
		expr.Call(raw(f.ErrorSpec))
	} else {
		expr.Call()
	}
	if f.CheckExpr != "" {
		expr.Add(raw(f.CheckExpr))
	}
	return expr
}

// refExpr emits a reference to another declaration. Deferred references go
// through the target's builder function so forward and circular references
// between input declarations resolve at first use instead of at package
// init, where Go would reject the cycle. Direct references call the
// builder: every use site gets its own chain, so modifiers applied at the
// site cannot mutate the shared declaration variable, and the chain is a
// concrete value the modifiers exist on.
func (g *Generator) refExpr(c classified, deferRef bool) *jen.Statement {
	if deferRef {
		return jen.Qual(g.cfg.RuntimePkg, "Lazy").Call(jen.Id(builderName(c.ref)))
	}
	return jen.Id(builderName(c.ref)).Call()
}

func applyModifiers(expr *jen.Statement, m modifiers) *jen.Statement {
	if m.list {
		expr.Dot("Array").Call()
	}
	if m.optional {
		expr.Dot("Optional").Call()
	}
	if m.nullable {
		expr.Dot("Nullable").Call()
	}
	return expr
}

// raw injects an opaque source fragment. Fragments are trusted upstream
// text; gofmt normalizes spacing when the file is rendered.
func raw(fragment string) *jen.Statement {
	return jen.Id(fragment)
}

// builderName returns the unexported builder function name for a
// declaration, e.g. "UserWhereInput" -> "userWhereInputSchema".
func builderName(decl string) string {
	r, size := utf8.DecodeRuneInString(decl)
	return string(unicode.ToLower(r)) + decl[size:] + "Schema"
}
