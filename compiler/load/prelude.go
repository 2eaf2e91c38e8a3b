package load

// preludeName identifies the generator prelude source in parse errors and
// type positions.
const preludeName = "validgen/prelude.graphql"

// prelude declares the custom scalars, the native SortOrder enum and the
// generator directives every schema may use:
//
//   - @check(expr): opaque validator augmentation appended verbatim after
//     the scalar constructor, e.g. ".Min(1).Max(255)".
//   - @message(text): custom error text passed to the scalar constructor.
//   - @accepts(types): replaces the slot's candidate type list, turning
//     the slot into a union of the named types. The pseudo-type "Null"
//     marks explicit null acceptance.
const prelude = `
scalar DateTime
scalar UUID
scalar Decimal
scalar JSON
scalar Bytes
scalar Null

enum SortOrder {
  ASC
  DESC
}

directive @check(expr: String!) on INPUT_FIELD_DEFINITION | ARGUMENT_DEFINITION
directive @message(text: String!) on INPUT_FIELD_DEFINITION | ARGUMENT_DEFINITION
directive @accepts(types: [String!]!) on INPUT_FIELD_DEFINITION | ARGUMENT_DEFINITION
`
