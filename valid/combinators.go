package valid

// Union returns a validator accepting values that conform to at least one
// of the given schemas. Branches are tried in order.
func Union(schemas ...Schema) *Chain {
	c := newChain(kindUnion, "union", nil)
	c.schemas = schemas
	return c
}

// Lazy returns a validator that resolves its target schema on first use.
// It exists to break reference cycles between generated declarations:
// mutually recursive builder functions can hand each other to Lazy without
// forcing construction at package init. The thunk is invoked at most once.
func Lazy[S Schema](fn func() S) *Chain {
	c := newChain(kindLazy, "lazy", nil)
	c.thunk = func() Schema { return fn() }
	return c
}

// Enum returns a validator accepting exactly the given string members.
func Enum(values ...string) *Chain {
	c := newChain(kindEnum, "enum", nil)
	c.members = values
	return c
}
