package valid

// Fields maps field names to their validators inside an Object.
type Fields map[string]Schema

// Object returns a validator accepting map[string]any values whose entries
// conform to the given field validators. Fields marked Optional may be
// absent. Unknown keys are accepted unless Strict is applied.
func Object(fields Fields, opts ...Option) *Chain {
	c := newChain(kindObject, "object", opts)
	c.fields = fields
	return c
}

// Strict makes the object validator reject unknown keys.
func (c *Chain) Strict() *Chain {
	c.strict = true
	return c
}
