package load

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"

	"github.com/syssam/validgen/schema"
)

// Source is one schema source to parse.
type Source struct {
	Name  string
	Input string
}

// Load reads and parses the given SDL files into a schema snapshot.
func Load(paths ...string) (*schema.Snapshot, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("load: no schema files given")
	}
	sources := make([]Source, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("load: read schema %s: %w", p, err)
		}
		sources = append(sources, Source{Name: p, Input: string(data)})
	}
	return Parse(sources...)
}

// Parse parses and validates SDL sources into a schema snapshot. The
// generator prelude (custom scalars, the SortOrder enum and the @check,
// @message and @accepts directives) is always included.
//
// Declared order is preserved throughout: enums, input types, operations
// and their fields appear in the snapshot in source order, with prelude
// definitions first.
func Parse(sources ...Source) (*schema.Snapshot, error) {
	astSources := make([]*ast.Source, 0, len(sources)+1)
	astSources = append(astSources, &ast.Source{Name: preludeName, Input: prelude})
	order := map[string]int{preludeName: 0}
	for i, src := range sources {
		astSources = append(astSources, &ast.Source{Name: src.Name, Input: src.Input})
		order[src.Name] = i + 1
	}

	s, gqlErr := gqlparser.LoadSchema(astSources...)
	if gqlErr != nil {
		return nil, fmt.Errorf("load: parse schema: %w", gqlErr)
	}

	snap := &schema.Snapshot{}
	for _, def := range definitionsInOrder(s, order) {
		switch def.Kind {
		case ast.Enum:
			snap.Enums = append(snap.Enums, convertEnum(def))
		case ast.InputObject:
			in, err := convertInput(def)
			if err != nil {
				return nil, err
			}
			snap.Inputs = append(snap.Inputs, in)
		}
	}

	for _, root := range []struct {
		def  *ast.Definition
		kind schema.OpKind
	}{
		{s.Query, schema.OpQuery},
		{s.Mutation, schema.OpMutation},
	} {
		if root.def == nil {
			continue
		}
		ops, err := convertOperations(root.def, root.kind)
		if err != nil {
			return nil, err
		}
		snap.Operations = append(snap.Operations, ops...)
	}

	return snap, nil
}

// definitionsInOrder returns the schema's type definitions sorted by source
// position. gqlparser indexes types by name; declared order matters here
// because declarations may only reference earlier ones directly.
func definitionsInOrder(s *ast.Schema, order map[string]int) []*ast.Definition {
	defs := make([]*ast.Definition, 0, len(s.Types))
	for name, def := range s.Types {
		if def.BuiltIn || strings.HasPrefix(name, "__") {
			continue
		}
		if isRoot(s, def) {
			continue
		}
		defs = append(defs, def)
	}
	sort.SliceStable(defs, func(i, j int) bool {
		pi, pj := defs[i].Position, defs[j].Position
		if pi == nil || pj == nil {
			return pj != nil
		}
		si, sj := sourceRank(pi, order), sourceRank(pj, order)
		if si != sj {
			return si < sj
		}
		return pi.Line < pj.Line
	})
	return defs
}

func sourceRank(p *ast.Position, order map[string]int) int {
	if p.Src == nil {
		return -1
	}
	return order[p.Src.Name]
}

func isRoot(s *ast.Schema, def *ast.Definition) bool {
	return (s.Query != nil && def == s.Query) ||
		(s.Mutation != nil && def == s.Mutation) ||
		(s.Subscription != nil && def == s.Subscription)
}

func convertEnum(def *ast.Definition) *schema.EnumType {
	e := &schema.EnumType{
		Name:    def.Name,
		GoType:  Exported(def.Name),
		Builtin: isPrelude(def),
	}
	for _, v := range def.EnumValues {
		e.Values = append(e.Values, v.Name)
	}
	return e
}

func convertInput(def *ast.Definition) (*schema.InputType, error) {
	in := &schema.InputType{
		Name:   def.Name,
		GoType: Exported(def.Name),
	}
	for _, fd := range def.Fields {
		f, err := convertField(def.Name, fd.Name, fd.Type, fd.Directives)
		if err != nil {
			return nil, err
		}
		in.Fields = append(in.Fields, f)
	}
	return in, nil
}

func convertOperations(root *ast.Definition, kind schema.OpKind) ([]*schema.Operation, error) {
	var ops []*schema.Operation
	for _, fd := range root.Fields {
		if strings.HasPrefix(fd.Name, "__") {
			continue
		}
		op := &schema.Operation{
			Name:     fd.Name,
			DeclName: Exported(fd.Name) + "Args",
			GoType:   Exported(fd.Name) + "Args",
			Kind:     kind,
		}
		for _, arg := range fd.Arguments {
			f, err := convertField(root.Name+"."+fd.Name, arg.Name, arg.Type, arg.Directives)
			if err != nil {
				return nil, err
			}
			op.Args = append(op.Args, f)
		}
		ops = append(ops, op)
	}
	return ops, nil
}

// convertField maps one SDL field or argument onto the snapshot model.
// A non-null SDL type makes the slot required and non-nullable; a nullable
// SDL type makes it omittable and null-accepting. An @accepts directive
// replaces the candidate list entirely, letting a slot admit several types
// (including the Null marker).
func convertField(owner, name string, typ *ast.Type, directives ast.DirectiveList) (*schema.Field, error) {
	base, list := unwrap(typ)
	f := &schema.Field{
		Name:     name,
		Required: typ.NonNull,
		Nullable: !typ.NonNull,
	}

	if d := directives.ForName("accepts"); d != nil {
		arg := d.Arguments.ForName("types")
		if arg == nil {
			return nil, fmt.Errorf("load: %s.%s: @accepts requires a types argument", owner, name)
		}
		names := stringList(arg.Value)
		if len(names) == 0 {
			return nil, fmt.Errorf("load: %s.%s: @accepts types cannot be empty", owner, name)
		}
		for _, n := range names {
			f.Types = append(f.Types, schema.TypeRef{Name: n})
		}
	} else {
		f.Types = []schema.TypeRef{{Name: base, List: list}}
	}

	if d := directives.ForName("check"); d != nil {
		if arg := d.Arguments.ForName("expr"); arg != nil {
			f.CheckExpr = arg.Value.Raw
		}
	}
	if d := directives.ForName("message"); d != nil {
		if arg := d.Arguments.ForName("text"); arg != nil {
			f.ErrorSpec = fmt.Sprintf("valid.Message(%q)", arg.Value.Raw)
		}
	}
	return f, nil
}

// unwrap returns the innermost named type and whether any list wrapping
// was present.
func unwrap(t *ast.Type) (name string, list bool) {
	for t.Elem != nil {
		list = true
		t = t.Elem
	}
	return t.NamedType, list
}

func stringList(v *ast.Value) []string {
	if v == nil {
		return nil
	}
	var out []string
	for _, child := range v.Children {
		out = append(out, child.Value.Raw)
	}
	return out
}

func isPrelude(def *ast.Definition) bool {
	return def.Position != nil && def.Position.Src != nil && def.Position.Src.Name == preludeName
}
