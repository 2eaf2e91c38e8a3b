package valid

import (
	"fmt"
	"reflect"
	"regexp"
)

// Min constrains the value's size: string and list length, or numeric value.
func (c *Chain) Min(n float64) *Chain {
	c.checks = append(c.checks, func(v any) error {
		size, what, ok := measure(v)
		if !ok {
			return nil
		}
		if size < n {
			return fmt.Errorf("%s must be at least %v", what, n)
		}
		return nil
	})
	return c
}

// Max constrains the value's size: string and list length, or numeric value.
func (c *Chain) Max(n float64) *Chain {
	c.checks = append(c.checks, func(v any) error {
		size, what, ok := measure(v)
		if !ok {
			return nil
		}
		if size > n {
			return fmt.Errorf("%s must be at most %v", what, n)
		}
		return nil
	})
	return c
}

// Pattern constrains string values to match the given regular expression.
func (c *Chain) Pattern(expr string) *Chain {
	re, compileErr := regexp.Compile(expr)
	c.checks = append(c.checks, func(v any) error {
		if compileErr != nil {
			return fmt.Errorf("invalid pattern %q: %v", expr, compileErr)
		}
		s, ok := v.(string)
		if !ok {
			return nil
		}
		if !re.MatchString(s) {
			return fmt.Errorf("must match %q", expr)
		}
		return nil
	})
	return c
}

// measure returns the comparable size of a value: length for strings and
// lists, the value itself for numbers.
func measure(v any) (size float64, what string, ok bool) {
	switch s := v.(type) {
	case string:
		return float64(len(s)), "length", true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		return float64(rv.Len()), "length", true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), "value", true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), "value", true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), "value", true
	}
	return 0, "", false
}
