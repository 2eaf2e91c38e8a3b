package valid

import (
	"encoding/base64"
	"math"
	"reflect"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// String returns a validator accepting string values.
func String(opts ...Option) *Chain {
	return newChain(kindString, "string", opts)
}

// ID returns a validator accepting identifier values. Identifiers are
// strings on the wire; UUID values are accepted as well.
func ID(opts ...Option) *Chain {
	return newChain(kindID, "id", opts)
}

// Int returns a validator accepting integer values. Floating point values
// carrying an integral value are accepted to cover JSON-decoded input.
func Int(opts ...Option) *Chain {
	return newChain(kindInt, "int", opts)
}

// Float returns a validator accepting numeric values.
func Float(opts ...Option) *Chain {
	return newChain(kindFloat, "float", opts)
}

// Bool returns a validator accepting boolean values.
func Bool(opts ...Option) *Chain {
	return newChain(kindBool, "bool", opts)
}

// Time returns a validator accepting time.Time values or RFC 3339 strings.
func Time(opts ...Option) *Chain {
	return newChain(kindTime, "time", opts)
}

// UUID returns a validator accepting uuid.UUID values or their string form.
func UUID(opts ...Option) *Chain {
	return newChain(kindUUID, "uuid", opts)
}

// Decimal returns a validator accepting decimal.Decimal values, numeric
// values, or decimal strings.
func Decimal(opts ...Option) *Chain {
	return newChain(kindDecimal, "decimal", opts)
}

// Bytes returns a validator accepting []byte values or base64 strings.
func Bytes(opts ...Option) *Chain {
	return newChain(kindBytes, "bytes", opts)
}

// Any returns a validator accepting any non-null value.
func Any(opts ...Option) *Chain {
	return newChain(kindAny, "any", opts)
}

// Null returns a validator accepting only an explicit null value.
func Null(opts ...Option) *Chain {
	return newChain(kindNull, "null", opts)
}

// accept performs the scalar type check for the chain's kind.
func (c *Chain) accept(v any) error {
	switch c.kind {
	case kindString:
		if _, ok := v.(string); !ok {
			return c.fail("must be a string")
		}
	case kindID:
		switch v.(type) {
		case string, uuid.UUID:
		default:
			return c.fail("must be an id")
		}
	case kindInt:
		if !isInt(v) {
			return c.fail("must be an integer")
		}
	case kindFloat:
		if !isNumber(v) {
			return c.fail("must be a number")
		}
	case kindBool:
		if _, ok := v.(bool); !ok {
			return c.fail("must be a boolean")
		}
	case kindTime:
		switch t := v.(type) {
		case time.Time:
		case string:
			if _, err := time.Parse(time.RFC3339, t); err != nil {
				return c.fail("must be an RFC 3339 timestamp")
			}
		default:
			return c.fail("must be a timestamp")
		}
	case kindUUID:
		switch u := v.(type) {
		case uuid.UUID:
		case string:
			if _, err := uuid.Parse(u); err != nil {
				return c.fail("must be a uuid")
			}
		default:
			return c.fail("must be a uuid")
		}
	case kindDecimal:
		switch d := v.(type) {
		case decimal.Decimal:
		case string:
			if _, err := decimal.NewFromString(d); err != nil {
				return c.fail("must be a decimal")
			}
		default:
			if !isNumber(v) {
				return c.fail("must be a decimal")
			}
		}
	case kindBytes:
		switch b := v.(type) {
		case []byte:
		case string:
			if _, err := base64.StdEncoding.DecodeString(b); err != nil {
				return c.fail("must be base64 bytes")
			}
		default:
			return c.fail("must be bytes")
		}
	case kindAny:
		// Any non-null value conforms.
	}
	return nil
}

func isInt(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		return f == math.Trunc(f)
	}
	return false
}

func isNumber(v any) bool {
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}
