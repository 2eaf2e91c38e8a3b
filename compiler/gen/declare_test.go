package gen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/validgen/schema"
)

func compileSnapshot() *schema.Snapshot {
	return &schema.Snapshot{
		Enums: []*schema.EnumType{
			{Name: "SortOrder", Values: []string{"ASC", "DESC"}, Builtin: true},
			{Name: "Role", GoType: "Role", Values: []string{"ADMIN", "MEMBER"}},
		},
		Inputs: []*schema.InputType{
			{
				Name: "StringFilter",
				Fields: []*schema.Field{
					{Name: "equals", Types: []schema.TypeRef{{Name: "String"}}},
					{Name: "contains", Types: []schema.TypeRef{{Name: "String"}}},
				},
			},
			{
				Name: "UserWhereInput",
				Fields: []*schema.Field{
					{Name: "AND", Types: []schema.TypeRef{{Name: "UserWhereInput", List: true}}},
					{Name: "role", Types: []schema.TypeRef{{Name: "Role"}}},
					{Name: "name", Types: []schema.TypeRef{{Name: "String"}, {Name: "StringFilter"}}},
				},
			},
		},
		Operations: []*schema.Operation{
			{
				Name:     "findUser",
				DeclName: "FindUserArgs",
				GoType:   "FindUserArgs",
				Kind:     schema.OpQuery,
				Args: []*schema.Field{
					{Name: "where", Types: []schema.TypeRef{{Name: "UserWhereInput"}}},
					{Name: "limit", Types: []schema.TypeRef{{Name: "Int"}}, Required: true},
				},
			},
			{
				Name:     "createUser",
				DeclName: "CreateUserArgs",
				GoType:   "CreateUserArgs",
				Kind:     schema.OpMutation,
				Args: []*schema.Field{
					{Name: "order", Types: []schema.TypeRef{{Name: "SortOrder"}}},
				},
			},
		},
	}
}

func TestCompileOrder(t *testing.T) {
	require := require.New(t)
	g, err := NewGenerator(compileSnapshot())
	require.NoError(err)

	decls, err := g.Compile()
	require.NoError(err)

	names := make([]string, len(decls))
	kinds := make([]DeclKind, len(decls))
	for i, d := range decls {
		names[i] = d.Name
		kinds[i] = d.Kind
	}
	// Enums precede input types, which precede argument sets.
	require.Equal([]string{
		"SortOrder", "Role",
		"StringFilter", "UserWhereInput",
		"FindUserArgs", "CreateUserArgs",
	}, names)
	require.Equal([]DeclKind{
		DeclEnum, DeclEnum,
		DeclInput, DeclInput,
		DeclArgs, DeclArgs,
	}, kinds)
}

func TestEnumDecl(t *testing.T) {
	require := require.New(t)
	g, err := NewGenerator(compileSnapshot())
	require.NoError(err)

	d := g.enumDecl(&schema.EnumType{Name: "Role", GoType: "Role", Values: []string{"ADMIN", "MEMBER"}})
	require.Equal("Role", d.Name)
	require.Equal(DeclEnum, d.Kind)
	require.Equal("roleSchema", d.Builder)
	require.Equal(`valid.Enum("ADMIN", "MEMBER")`, render(t, d.Body))
}

func TestInputDeclDefersReferences(t *testing.T) {
	require := require.New(t)
	g, err := NewGenerator(compileSnapshot())
	require.NoError(err)

	d, err := g.inputDecl(&schema.InputType{
		Name: "UserWhereInput",
		Fields: []*schema.Field{
			{Name: "AND", Types: []schema.TypeRef{{Name: "UserWhereInput", List: true}}},
			{Name: "role", Types: []schema.TypeRef{{Name: "Role"}}},
		},
	})
	require.NoError(err)

	body := render(t, d.Body)
	require.Contains(body, `"AND": valid.Lazy(userWhereInputSchema).Array().Optional()`)
	require.Contains(body, `"role": valid.Lazy(roleSchema).Optional()`)
	require.True(len(body) > 0 && body[len(body)-len(".Strict()"):] == ".Strict()",
		"object declarations are closed: %s", body)
}

func TestArgsDeclDirectReferences(t *testing.T) {
	require := require.New(t)
	g, err := NewGenerator(compileSnapshot())
	require.NoError(err)

	d, err := g.argsDecl(&schema.Operation{
		Name:     "findUser",
		DeclName: "FindUserArgs",
		Kind:     schema.OpQuery,
		Args: []*schema.Field{
			{Name: "where", Types: []schema.TypeRef{{Name: "UserWhereInput"}}},
		},
	})
	require.NoError(err)

	body := render(t, d.Body)
	require.Contains(body, `"where": userWhereInputSchema().Optional()`)
	require.NotContains(body, "Lazy")
	// The exported variable is interface-typed; reference sites must go
	// through the builder to have modifiers to chain onto.
	require.NotContains(body, `"where": UserWhereInput`)
}

func TestObjectExprFieldOrder(t *testing.T) {
	require := require.New(t)
	g, err := NewGenerator(compileSnapshot())
	require.NoError(err)

	expr, err := g.objectExpr("T", []*schema.Field{
		{Name: "b", Types: []schema.TypeRef{{Name: "Int"}}, Required: true},
		{Name: "a", Types: []schema.TypeRef{{Name: "String"}}, Required: true},
	}, false)
	require.NoError(err)

	body := render(t, expr)
	require.Less(indexOf(t, body, `"b"`), indexOf(t, body, `"a"`), "declared field order is preserved")
}

func TestDeclGoTypeAnnotation(t *testing.T) {
	require := require.New(t)
	g, err := NewGenerator(compileSnapshot(), WithModelPackage("model"))
	require.NoError(err)

	d := g.enumDecl(&schema.EnumType{Name: "Role", GoType: "Role"})
	require.Equal("model.Role", d.GoType)
}

func indexOf(t *testing.T, s, sub string) int {
	t.Helper()
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			return i
		}
	}
	t.Fatalf("%q not found in %q", sub, s)
	return -1
}
