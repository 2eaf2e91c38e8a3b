package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/syssam/validgen/schema"
)

const testSchema = `
enum Role {
  ADMIN
  MEMBER
}

input StringFilter {
  equals: String
  contains: String @check(expr: ".Min(1)")
}

input UserWhereInput {
  AND: [UserWhereInput!]
  role: Role
  name: String @accepts(types: ["String", "StringFilter"])
  order: SortOrder
}

type User {
  id: ID!
}

type Query {
  findUser(where: UserWhereInput, limit: Int!): User
}

type Mutation {
  createUser(
    email: String! @message(text: "invalid email") @check(expr: ".Min(3).Max(255)")
    role: Role!
  ): User
}
`

func parseTestSchema(t *testing.T) *schema.Snapshot {
	t.Helper()
	snap, err := Parse(Source{Name: "schema.graphql", Input: testSchema})
	require.NoError(t, err)
	return snap
}

func TestParseEnums(t *testing.T) {
	require := require.New(t)
	snap := parseTestSchema(t)

	require.Len(snap.Enums, 2)

	// Prelude definitions come first, in a stable order.
	require.Equal("SortOrder", snap.Enums[0].Name)
	require.True(snap.Enums[0].Builtin)
	require.Equal([]string{"ASC", "DESC"}, snap.Enums[0].Values)

	require.Equal("Role", snap.Enums[1].Name)
	require.False(snap.Enums[1].Builtin)
	require.Equal("Role", snap.Enums[1].GoType)
	require.Equal([]string{"ADMIN", "MEMBER"}, snap.Enums[1].Values)
}

func TestParseInputs(t *testing.T) {
	require := require.New(t)
	snap := parseTestSchema(t)

	require.Len(snap.Inputs, 2)
	require.Equal("StringFilter", snap.Inputs[0].Name)
	require.Equal("UserWhereInput", snap.Inputs[1].Name)

	where := snap.Inputs[1]
	require.Equal("UserWhereInput", where.GoType)
	names := make([]string, len(where.Fields))
	for i, f := range where.Fields {
		names[i] = f.Name
	}
	require.Equal([]string{"AND", "role", "name", "order"}, names)

	and := where.Fields[0]
	require.Equal([]schema.TypeRef{{Name: "UserWhereInput", List: true}}, and.Types)
	require.False(and.Required)
	require.True(and.Nullable)
}

func TestParseNullability(t *testing.T) {
	require := require.New(t)
	snap := parseTestSchema(t)

	var findUser *schema.Operation
	for _, op := range snap.Operations {
		if op.Name == "findUser" {
			findUser = op
		}
	}
	require.NotNil(findUser)

	where, limit := findUser.Args[0], findUser.Args[1]
	require.False(where.Required)
	require.True(where.Nullable)
	require.True(limit.Required)
	require.False(limit.Nullable)
	require.Equal([]schema.TypeRef{{Name: "Int"}}, limit.Types)
}

func TestParseDirectives(t *testing.T) {
	require := require.New(t)
	snap := parseTestSchema(t)

	contains := snap.Inputs[0].Fields[1]
	require.Equal("contains", contains.Name)
	require.Equal(".Min(1)", contains.CheckExpr)

	// @accepts replaces the candidate list entirely.
	name := snap.Inputs[1].Fields[2]
	require.Equal([]schema.TypeRef{{Name: "String"}, {Name: "StringFilter"}}, name.Types)

	var createUser *schema.Operation
	for _, op := range snap.Operations {
		if op.Name == "createUser" {
			createUser = op
		}
	}
	require.NotNil(createUser)
	email := createUser.Args[0]
	require.Equal(`valid.Message("invalid email")`, email.ErrorSpec)
	require.Equal(".Min(3).Max(255)", email.CheckExpr)
}

func TestParseOperations(t *testing.T) {
	require := require.New(t)
	snap := parseTestSchema(t)

	require.Len(snap.Operations, 2)

	require.Equal("findUser", snap.Operations[0].Name)
	require.Equal("FindUserArgs", snap.Operations[0].DeclName)
	require.Equal(schema.OpQuery, snap.Operations[0].Kind)

	require.Equal("createUser", snap.Operations[1].Name)
	require.Equal("CreateUserArgs", snap.Operations[1].DeclName)
	require.Equal(schema.OpMutation, snap.Operations[1].Kind)
}

func TestParseErrors(t *testing.T) {
	require := require.New(t)

	// Unknown type.
	_, err := Parse(Source{Name: "bad.graphql", Input: `
input Broken {
  v: Mystery
}
type Query { ping(v: Broken): Boolean }
`})
	require.Error(err)

	// @accepts without candidates.
	_, err = Parse(Source{Name: "bad.graphql", Input: `
input Broken {
  v: String @accepts(types: [])
}
type Query { ping(v: Broken): Boolean }
`})
	require.Error(err)
	require.Contains(err.Error(), "@accepts types cannot be empty")
}

func TestLoad(t *testing.T) {
	require := require.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "schema.graphql")
	require.NoError(os.WriteFile(path, []byte(testSchema), 0o644))

	snap, err := Load(path)
	require.NoError(err)
	require.True(snap.HasInput("UserWhereInput"))
	require.True(snap.HasEnum("Role"))

	_, err = Load()
	require.Error(err)

	_, err = Load(filepath.Join(dir, "missing.graphql"))
	require.Error(err)
}

func TestExported(t *testing.T) {
	require := require.New(t)

	require.Equal("FindUser", Exported("findUser"))
	require.Equal("FindUser", Exported("find_user"))
	require.Equal("UserWhereInput", Exported("UserWhereInput"))
	require.Equal("Role", Exported("role"))
}
