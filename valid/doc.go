// Package valid is the runtime targeted by validgen's generated code: a
// small composable validator library over decoded values (map[string]any,
// []any, scalars).
//
// Validators are built by chaining constructors and modifiers:
//
//	var CreateUserInput = valid.Object(valid.Fields{
//		"email": valid.String().Min(3),
//		"ids":   valid.Int().Array().Optional().Nullable(),
//	}).Strict()
//
//	err := CreateUserInput.Validate(payload)
//
// Reference cycles between declarations are broken with [Lazy], which
// defers target construction until first validation.
package valid
