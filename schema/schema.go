package schema

// NullType is the name of the pseudo-type marking explicit null acceptance
// on a field or argument slot. It is distinct from the Nullable flag: a
// null-marker descriptor comes from the schema's candidate type list, while
// Nullable is a property of the slot itself. Both result in a nullable
// validator expression.
const NullType = "Null"

// TypeRef is one candidate type of a field or argument slot. A slot with
// more than one non-null candidate compiles into a union validator.
//
// TypeRef values are immutable and owned by the slot that lists them.
type TypeRef struct {
	// Name is a scalar name (String, Int, ...), the name of a declared
	// enum or input type, or NullType.
	Name string `msgpack:"name"`

	// List reports whether this candidate is a list of Name.
	List bool `msgpack:"list,omitempty"`
}

// IsNull reports whether the reference is the null marker.
func (r TypeRef) IsNull() bool {
	return r.Name == NullType
}

// Field is one slot of an input object type, or one argument of a root
// operation. The two are identical in shape and compile identically except
// for reference deferral.
type Field struct {
	// Name is the slot name as declared in the schema.
	Name string `msgpack:"name"`

	// Types holds the candidate type descriptors in declared order.
	// Order is load-bearing: union branches preserve it.
	Types []TypeRef `msgpack:"types"`

	// Required reports whether the slot must be present. A slot that is
	// not required compiles with an Optional modifier.
	Required bool `msgpack:"required,omitempty"`

	// Nullable reports whether the slot accepts an explicit null value.
	Nullable bool `msgpack:"nullable,omitempty"`

	// CheckExpr is an opaque validator augmentation appended verbatim
	// after the scalar constructor, e.g. `.Min(1).Max(255)`. The compiler
	// never parses it.
	CheckExpr string `msgpack:"check_expr,omitempty"`

	// ErrorSpec is an opaque error configuration passed verbatim as the
	// scalar constructor argument, e.g. `valid.Message("invalid email")`.
	ErrorSpec string `msgpack:"error_spec,omitempty"`
}

// NonNull returns the candidate descriptors with null markers filtered out,
// preserving declared order.
func (f *Field) NonNull() []TypeRef {
	refs := make([]TypeRef, 0, len(f.Types))
	for _, r := range f.Types {
		if !r.IsNull() {
			refs = append(refs, r)
		}
	}
	return refs
}

// AcceptsNull reports whether any candidate descriptor is the null marker.
func (f *Field) AcceptsNull() bool {
	for _, r := range f.Types {
		if r.IsNull() {
			return true
		}
	}
	return false
}

// InputType is one input object type. Each input type becomes one generated
// validator declaration.
type InputType struct {
	// Name is the declaration name, already a valid unique Go identifier.
	Name string `msgpack:"name"`

	// GoType names the native Go type the declaration validates, used in
	// the generated doc comment. May equal Name when no model package is
	// configured.
	GoType string `msgpack:"go_type,omitempty"`

	Fields []*Field `msgpack:"fields"`
}

// EnumType is one enum definition. Each enum becomes one generated validator
// declaration wrapping its member values.
type EnumType struct {
	Name   string   `msgpack:"name"`
	GoType string   `msgpack:"go_type,omitempty"`
	Values []string `msgpack:"values"`

	// Builtin reports whether the enum is defined by the schema system
	// itself rather than the user's data model.
	Builtin bool `msgpack:"builtin,omitempty"`
}

// OpKind distinguishes root operation types.
type OpKind uint8

// Root operation kinds.
const (
	OpQuery OpKind = iota
	OpMutation
)

// String returns the lowercase operation kind name.
func (k OpKind) String() string {
	if k == OpMutation {
		return "mutation"
	}
	return "query"
}

// Operation is one field of a root Query or Mutation type. Its argument
// list compiles into one validator declaration, like an input type but with
// direct (non-deferred) references.
type Operation struct {
	// Name is the operation field name, e.g. "findUser".
	Name string `msgpack:"name"`

	// DeclName is the generated declaration name, e.g. "FindUserArgs".
	DeclName string `msgpack:"decl_name"`

	GoType string   `msgpack:"go_type,omitempty"`
	Kind   OpKind   `msgpack:"kind"`
	Args   []*Field `msgpack:"args"`
}

// Snapshot is the read-only schema metadata a single generation run consumes.
// All slices preserve declared order. A Snapshot must not be shared across
// concurrent generation runs with mutation; generation itself never mutates
// it.
type Snapshot struct {
	Enums      []*EnumType  `msgpack:"enums"`
	Inputs     []*InputType `msgpack:"inputs"`
	Operations []*Operation `msgpack:"operations"`
}

// HasEnum reports whether the snapshot declares an enum with the given name.
func (s *Snapshot) HasEnum(name string) bool {
	for _, e := range s.Enums {
		if e.Name == name {
			return true
		}
	}
	return false
}

// HasInput reports whether the snapshot declares an input type with the
// given name.
func (s *Snapshot) HasInput(name string) bool {
	for _, t := range s.Inputs {
		if t.Name == name {
			return true
		}
	}
	return false
}
