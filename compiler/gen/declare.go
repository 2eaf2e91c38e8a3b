package gen

import (
	"github.com/dave/jennifer/jen"

	"github.com/syssam/validgen/schema"
)

// DeclKind is the output group a declaration belongs to. Group order is
// load-bearing: enums precede the input types that reference them, and
// input types precede the argument sets that reference them.
type DeclKind uint8

const (
	// DeclEnum is an enum validator declaration.
	DeclEnum DeclKind = iota
	// DeclInput is an input object type declaration.
	DeclInput
	// DeclArgs is a root operation argument set declaration.
	DeclArgs
)

// String returns the group banner name for the declaration kind.
func (k DeclKind) String() string {
	switch k {
	case DeclEnum:
		return "Enum validators"
	case DeclInput:
		return "Input type validators"
	default:
		return "Operation argument validators"
	}
}

// Declaration is one named, fully-compiled validator expression.
// Declarations are immutable once produced; the only identity they carry
// is their name, and the orchestrator's output order is the only required
// ordering.
type Declaration struct {
	// Name is the exported variable name of the declaration.
	Name string

	// Kind selects the output group.
	Kind DeclKind

	// GoType is the type annotation: the name of the native Go type the
	// declaration validates, written into the generated doc comment.
	GoType string

	// Builder is the unexported builder function name backing the
	// declaration. Reference sites in other declarations use it: deferred
	// references hand it to Lazy, direct references call it.
	Builder string

	// Body is the compiled validator expression the builder returns.
	Body *jen.Statement
}

// enumDecl wraps one enum into a declaration re-exporting its member set
// as an enum validator.
func (g *Generator) enumDecl(e *schema.EnumType) *Declaration {
	values := make([]jen.Code, len(e.Values))
	for i, v := range e.Values {
		values[i] = jen.Lit(v)
	}
	return &Declaration{
		Name:    e.Name,
		Kind:    DeclEnum,
		GoType:  g.goType(e.GoType, e.Name),
		Builder: builderName(e.Name),
		Body:    jen.Qual(g.cfg.RuntimePkg, "Enum").Call(values...),
	}
}

// inputDecl wraps one input object type into a strict object declaration.
// Field references are deferred because input types may reference each
// other cyclically.
func (g *Generator) inputDecl(t *schema.InputType) (*Declaration, error) {
	body, err := g.objectExpr(t.Name, t.Fields, true)
	if err != nil {
		return nil, err
	}
	return &Declaration{
		Name:    t.Name,
		Kind:    DeclInput,
		GoType:  g.goType(t.GoType, t.Name),
		Builder: builderName(t.Name),
		Body:    body,
	}, nil
}

// argsDecl wraps one root operation's argument list into a strict object
// declaration. Argument sets are declared after every input type and never
// form cycles, so references call the target builder directly.
func (g *Generator) argsDecl(op *schema.Operation) (*Declaration, error) {
	body, err := g.objectExpr(op.DeclName, op.Args, false)
	if err != nil {
		return nil, err
	}
	return &Declaration{
		Name:    op.DeclName,
		Kind:    DeclArgs,
		GoType:  g.goType(op.GoType, op.DeclName),
		Builder: builderName(op.DeclName),
		Body:    body,
	}, nil
}

// objectExpr compiles a field set into `valid.Object(valid.Fields{...}).Strict()`,
// one compiled entry per field in declared order, closed against unknown
// keys.
func (g *Generator) objectExpr(typeName string, fields []*schema.Field, deferRef bool) (*jen.Statement, error) {
	entries := make([]jen.Code, 0, len(fields))
	for _, f := range fields {
		expr, err := g.fieldExpr(typeName, f, deferRef)
		if err != nil {
			return nil, err
		}
		entries = append(entries, jen.Line().Lit(f.Name).Op(":").Add(expr))
	}
	return jen.Qual(g.cfg.RuntimePkg, "Object").Call(
		jen.Qual(g.cfg.RuntimePkg, "Fields").ValuesFunc(func(grp *jen.Group) {
			for _, e := range entries {
				grp.Add(e)
			}
			if len(entries) > 0 {
				grp.Line()
			}
		}),
	).Dot("Strict").Call(), nil
}

// goType returns the declaration type annotation, qualified with the
// configured model package when one is set.
func (g *Generator) goType(goType, fallback string) string {
	name := goType
	if name == "" {
		name = fallback
	}
	if g.cfg.ModelPkg != "" {
		return g.cfg.ModelPkg + "." + name
	}
	return name
}
