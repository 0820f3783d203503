package types

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the single accepted layout for parsing textual values
// bound with TargetTimestamp. It matches the Cassandra timestamp literal
// format "yyyy-MM-dd HH:mm:ssZ".
const TimestampLayout = "2006-01-02 15:04:05-0700"

// ValueKind tags the shape of a bound value.
type ValueKind uint8

const (
	// ValueUnset marks a placeholder position that was never bound.
	// It is the zero value of Value and distinct from an explicit null;
	// how an unset position is treated is up to the engine adapter.
	ValueUnset ValueKind = iota

	// ValueNull is an explicit null marker.
	ValueNull

	// ValueBool is a boolean.
	ValueBool

	// ValueInt is a signed integer of any width (tinyint through bigint).
	ValueInt

	// ValueFloat is a floating-point number (float or double).
	ValueFloat

	// ValueText is a textual value.
	ValueText

	// ValueBytes is a binary value.
	ValueBytes

	// ValueTimestamp is a point in time with millisecond precision.
	ValueTimestamp

	// ValueUUID is a UUID (uuid or timeuuid column).
	ValueUUID

	// ValueOpaque is a value cqlbridge does not recognize. It is stored
	// as-is and rejected later only if the engine rejects it.
	ValueOpaque
)

// String returns the name of the kind.
func (k ValueKind) String() string {
	switch k {
	case ValueUnset:
		return "unset"
	case ValueNull:
		return "null"
	case ValueBool:
		return "bool"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueText:
		return "text"
	case ValueBytes:
		return "bytes"
	case ValueTimestamp:
		return "timestamp"
	case ValueUUID:
		return "uuid"
	case ValueOpaque:
		return "opaque"
	default:
		return "invalid"
	}
}

// TargetType is an optional declared target type accompanying a bind call.
//
// It mirrors the loosely-typed "set a value of declared SQL type" side of
// the seam. Only the combinations documented on Coerce trigger conversions;
// all other hints are ignored.
type TargetType uint8

const (
	// TargetNone declares no target type.
	TargetNone TargetType = iota

	// TargetInteger requests a parse when the value is textual.
	TargetInteger

	// TargetFloat requests a parse when the value is textual.
	TargetFloat

	// TargetTimestamp requests a parse with TimestampLayout when the value
	// is textual.
	TargetTimestamp

	// TargetText declares a textual target. No conversion is performed;
	// it exists so callers can state intent symmetrically.
	TargetText
)

// Value is the closed tagged union stored by the bound-value store.
//
// The zero Value has kind ValueUnset. The driver form of the value is kept
// with its original Go width so adapters can hand it to the engine driver
// unchanged (gocql marshaling is width-sensitive for tinyint/float columns).
type Value struct {
	kind ValueKind
	v    any
}

// Null returns the explicit null marker.
func Null() Value {
	return Value{kind: ValueNull}
}

// Kind returns the tag of the value.
func (v Value) Kind() ValueKind {
	return v.kind
}

// IsUnset reports whether the position holding this value was never bound.
func (v Value) IsUnset() bool {
	return v.kind == ValueUnset
}

// IsNull reports whether the value is the explicit null marker.
func (v Value) IsNull() bool {
	return v.kind == ValueNull
}

// Interface returns the driver form of the value: the originally supplied
// Go value after coercion, or nil for null and unset.
func (v Value) Interface() any {
	return v.v
}

// Int returns the value as int64 when the kind is ValueInt.
func (v Value) Int() (int64, bool) {
	switch i := v.v.(type) {
	case int:
		return int64(i), true
	case int8:
		return int64(i), true
	case int16:
		return int64(i), true
	case int32:
		return int64(i), true
	case int64:
		return i, true
	default:
		return 0, false
	}
}

// Float returns the value as float64 when the kind is ValueFloat.
func (v Value) Float() (float64, bool) {
	switch f := v.v.(type) {
	case float32:
		return float64(f), true
	case float64:
		return f, true
	default:
		return 0, false
	}
}

// Text returns the value as a string when the kind is ValueText.
func (v Value) Text() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

// Bytes returns the value as a byte slice when the kind is ValueBytes.
func (v Value) Bytes() ([]byte, bool) {
	b, ok := v.v.([]byte)
	return b, ok
}

// Time returns the value as a time.Time when the kind is ValueTimestamp.
func (v Value) Time() (time.Time, bool) {
	t, ok := v.v.(time.Time)
	return t, ok
}

// Bool returns the value as a bool when the kind is ValueBool.
func (v Value) Bool() (bool, bool) {
	b, ok := v.v.(bool)
	return b, ok
}

// UUID returns the value as a uuid.UUID when the kind is ValueUUID.
func (v Value) UUID() (uuid.UUID, bool) {
	u, ok := v.v.(uuid.UUID)
	return u, ok
}

// String returns a diagnostic representation of the value.
func (v Value) String() string {
	switch v.kind {
	case ValueUnset:
		return "<unset>"
	case ValueNull:
		return "<null>"
	default:
		return fmt.Sprintf("%s(%v)", v.kind, v.v)
	}
}

// Coerce normalizes a caller-supplied value into a Value.
//
// Rules:
//   - nil stores the explicit null marker regardless of target; type hints
//     for null are intentionally ignored, the engine is untyped at the
//     binding layer.
//   - Scalar numeric, boolean and binary values pass through unchanged,
//     keeping their original Go width.
//   - time.Time is truncated to millisecond precision; nanoseconds are
//     intentionally discarded. Timezone hints supplied alongside a time
//     are documented no-ops (see PreparedStatement.SetTimeInLocation).
//   - TargetInteger and TargetFloat paired with a string parse the text
//     into the numeric type; TargetTimestamp paired with a string parses
//     with TimestampLayout. A failed parse returns a KindSyntax error
//     naming the expected format, and no value is produced.
//   - *url.URL and url.URL are coerced to their textual form.
//   - An already-coerced Value is returned unchanged, making coercion
//     idempotent.
//   - Anything else is stored as-is with kind ValueOpaque.
//
// Parameters:
//   - v: The caller-supplied value
//   - target: Optional declared target type (TargetNone when absent)
//
// Returns:
//   - Value: The canonical value to store
//   - error: A *Error with KindSyntax when a requested parse fails
func Coerce(v any, target TargetType) (Value, error) {
	if v == nil {
		return Null(), nil
	}

	if s, ok := v.(string); ok {
		switch target {
		case TargetInteger:
			i, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return Value{}, NewError(KindSyntax, "bind", "",
					fmt.Errorf("value %q is not a valid base-10 integer", s))
			}

			return Value{kind: ValueInt, v: i}, nil
		case TargetFloat:
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return Value{}, NewError(KindSyntax, "bind", "",
					fmt.Errorf("value %q is not a valid floating-point number", s))
			}

			return Value{kind: ValueFloat, v: f}, nil
		case TargetTimestamp:
			t, err := time.Parse(TimestampLayout, s)
			if err != nil {
				return Value{}, NewError(KindSyntax, "bind", "",
					fmt.Errorf("timestamp %q is invalid, requires layout %q", s, TimestampLayout))
			}

			return Value{kind: ValueTimestamp, v: t}, nil
		}
	}

	switch val := v.(type) {
	case Value:
		return val, nil
	case bool:
		return Value{kind: ValueBool, v: val}, nil
	case int, int8, int16, int32, int64:
		return Value{kind: ValueInt, v: val}, nil
	case float32, float64:
		return Value{kind: ValueFloat, v: val}, nil
	case string:
		return Value{kind: ValueText, v: val}, nil
	case []byte:
		return Value{kind: ValueBytes, v: val}, nil
	case time.Time:
		return Value{kind: ValueTimestamp, v: truncateToMillis(val)}, nil
	case *url.URL:
		if val == nil {
			return Null(), nil
		}

		return Value{kind: ValueText, v: val.String()}, nil
	case url.URL:
		return Value{kind: ValueText, v: val.String()}, nil
	case uuid.UUID:
		return Value{kind: ValueUUID, v: val}, nil
	default:
		return Value{kind: ValueOpaque, v: val}, nil
	}
}

// truncateToMillis discards sub-millisecond precision, matching the
// engine's milliseconds-since-epoch timestamp semantics.
func truncateToMillis(t time.Time) time.Time {
	return time.UnixMilli(t.UnixMilli()).In(t.Location())
}
