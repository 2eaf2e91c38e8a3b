package valid

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"sync"
)

// Schema validates a decoded value. Implementations report the first
// violation found; nil means the value conforms.
type Schema interface {
	Validate(v any) error
}

// Error is the error type returned by validators. Path locates the
// offending value relative to the validated root, e.g. "items.[2].name".
type Error struct {
	Path    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Path == "" {
		return "valid: " + e.Message
	}
	return "valid: " + e.Path + ": " + e.Message
}

// Option configures a validator constructor.
type Option func(*Chain)

// Message overrides the error message reported when the validator rejects
// a value.
func Message(text string) Option {
	return func(c *Chain) {
		c.msg = text
	}
}

// kind discriminates the validator categories a Chain can hold.
type kind uint8

const (
	kindString kind = iota
	kindID
	kindInt
	kindFloat
	kindBool
	kindTime
	kindUUID
	kindDecimal
	kindBytes
	kindAny
	kindNull
	kindEnum
	kindObject
	kindUnion
	kindLazy
	kindArray
)

// Chain is the concrete validator value built by this package's
// constructors. All modifiers return the chain to allow zod-style
// composition:
//
//	valid.String().Min(1).Array().Optional()
//
// Chains are built once (typically at package init in generated code) and
// are safe for concurrent Validate calls afterwards.
type Chain struct {
	kind   kind
	name   string
	msg    string
	checks []func(v any) error

	members []string      // enum
	fields  Fields        // object
	strict  bool          // object
	schemas []Schema      // union
	thunk   func() Schema // lazy
	elem    *Chain        // array element

	optional bool
	nullable bool

	lazyOnce sync.Once
	lazyVal  Schema
}

func newChain(k kind, name string, opts []Option) *Chain {
	c := &Chain{kind: k, name: name}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Array wraps the chain into a list validator. Modifiers applied after
// Array describe the list, not its elements.
func (c *Chain) Array() *Chain {
	return &Chain{kind: kindArray, name: "list of " + c.name, elem: c}
}

// Optional marks the value as omittable when it appears as an object field.
func (c *Chain) Optional() *Chain {
	c.optional = true
	return c
}

// Nullable allows an explicit null value.
func (c *Chain) Nullable() *Chain {
	c.nullable = true
	return c
}

// IsOptional reports whether the value may be omitted from its enclosing
// object.
func (c *Chain) IsOptional() bool {
	return c.optional
}

// Validate implements Schema.
func (c *Chain) Validate(v any) error {
	if c.kind == kindNull {
		if v == nil {
			return nil
		}
		return c.fail("must be null")
	}
	if v == nil {
		if c.nullable {
			return nil
		}
		return c.fail("must not be null")
	}
	switch c.kind {
	case kindLazy:
		c.lazyOnce.Do(func() {
			c.lazyVal = c.thunk()
		})
		return c.lazyVal.Validate(v)
	case kindUnion:
		for _, s := range c.schemas {
			if s.Validate(v) == nil {
				return nil
			}
		}
		return c.fail("does not match any allowed type")
	case kindArray:
		if err := c.validateArray(v); err != nil {
			return err
		}
	case kindObject:
		return c.validateObject(v)
	case kindEnum:
		s, ok := v.(string)
		if !ok {
			return c.fail("must be a %s value", c.name)
		}
		if !contains(c.members, s) {
			return c.fail("%q is not a member of %s", s, c.name)
		}
	default:
		if err := c.accept(v); err != nil {
			return err
		}
	}
	return c.runChecks(v)
}

func (c *Chain) validateArray(v any) error {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array {
		return c.fail("must be a list")
	}
	for i := 0; i < rv.Len(); i++ {
		if err := c.elem.Validate(rv.Index(i).Interface()); err != nil {
			return at(err, fmt.Sprintf("[%d]", i))
		}
	}
	return nil
}

func (c *Chain) validateObject(v any) error {
	m, ok := v.(map[string]any)
	if !ok {
		return c.fail("must be an object")
	}
	for _, name := range sortedKeys(c.fields) {
		s := c.fields[name]
		val, present := m[name]
		if !present {
			if isOptional(s) {
				continue
			}
			return &Error{Path: name, Message: "missing required field"}
		}
		if err := s.Validate(val); err != nil {
			return at(err, name)
		}
	}
	if c.strict {
		keys := make([]string, 0, len(m))
		for k := range m {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, ok := c.fields[k]; !ok {
				return &Error{Path: k, Message: "unknown field"}
			}
		}
	}
	return nil
}

func (c *Chain) runChecks(v any) error {
	for _, chk := range c.checks {
		if err := chk(v); err != nil {
			if c.msg != "" {
				return &Error{Message: c.msg}
			}
			var e *Error
			if errors.As(err, &e) {
				return e
			}
			return &Error{Message: err.Error()}
		}
	}
	return nil
}

func (c *Chain) fail(format string, args ...any) error {
	if c.msg != "" {
		return &Error{Message: c.msg}
	}
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// at prefixes the error path with the given segment.
func at(err error, segment string) error {
	var e *Error
	if !errors.As(err, &e) {
		return &Error{Path: segment, Message: err.Error()}
	}
	path := segment
	if e.Path != "" {
		if e.Path[0] == '[' {
			path = segment + e.Path
		} else {
			path = segment + "." + e.Path
		}
	}
	return &Error{Path: path, Message: e.Message}
}

func isOptional(s Schema) bool {
	o, ok := s.(interface{ IsOptional() bool })
	return ok && o.IsOptional()
}

func contains(list []string, s string) bool {
	for _, m := range list {
		if m == s {
			return true
		}
	}
	return false
}

func sortedKeys(fields Fields) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
