package gen

import (
	"github.com/syssam/validgen/schema"
)

// Kind is the category of a classified type descriptor. Classification is
// an explicit tagged match: every well-formed descriptor resolves to
// exactly one kind, and an unresolvable descriptor fails the run instead
// of silently emitting nothing.
type Kind uint8

const (
	// KindScalar is a primitive type with a runtime constructor.
	KindScalar Kind = iota
	// KindRef is a reference to another declaration (enum or input type).
	KindRef
	// KindNull is the explicit null marker.
	KindNull
)

// scalarCtors maps schema scalar names to runtime constructor names.
var scalarCtors = map[string]string{
	"String":   "String",
	"Int":      "Int",
	"Float":    "Float",
	"Boolean":  "Bool",
	"ID":       "ID",
	"DateTime": "Time",
	"UUID":     "UUID",
	"Decimal":  "Decimal",
	"JSON":     "Any",
	"Bytes":    "Bytes",
}

// classified is the result of classifying one candidate type descriptor.
type classified struct {
	kind Kind
	ctor string // runtime constructor name, scalar only
	ref  string // referenced declaration name, reference only
	list bool
}

// classify resolves a candidate descriptor against the snapshot. The
// typeName and fieldName arguments are carried solely for error context.
func (g *Generator) classify(r schema.TypeRef, typeName, fieldName string) (classified, error) {
	switch {
	case r.IsNull():
		return classified{kind: KindNull, list: r.List}, nil
	case scalarCtors[r.Name] != "":
		return classified{kind: KindScalar, ctor: scalarCtors[r.Name], list: r.List}, nil
	case g.snap.HasEnum(r.Name) || g.snap.HasInput(r.Name):
		return classified{kind: KindRef, ref: r.Name, list: r.List}, nil
	default:
		return classified{}, NewDescriptorError(typeName, fieldName, r.Name)
	}
}
