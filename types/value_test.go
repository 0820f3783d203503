package types

import (
	"net/url"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroValueIsUnset(t *testing.T) {
	var v Value

	assert.Equal(t, ValueUnset, v.Kind())
	assert.True(t, v.IsUnset())
	assert.False(t, v.IsNull())
	assert.Nil(t, v.Interface())
}

func TestNullMarker(t *testing.T) {
	v := Null()

	assert.Equal(t, ValueNull, v.Kind())
	assert.True(t, v.IsNull())
	assert.False(t, v.IsUnset())
	assert.Nil(t, v.Interface())
}

func TestCoerceNilIsNullRegardlessOfTarget(t *testing.T) {
	for _, target := range []TargetType{TargetNone, TargetInteger, TargetFloat, TargetTimestamp, TargetText} {
		v, err := Coerce(nil, target)
		require.NoError(t, err)
		assert.True(t, v.IsNull())
	}
}

func TestCoercePreservesGoWidth(t *testing.T) {
	tests := []struct {
		name string
		in   any
		kind ValueKind
	}{
		{"int8", int8(1), ValueInt},
		{"int16", int16(2), ValueInt},
		{"int32", int32(3), ValueInt},
		{"int64", int64(4), ValueInt},
		{"int", int(5), ValueInt},
		{"float32", float32(1.5), ValueFloat},
		{"float64", float64(2.5), ValueFloat},
		{"bool", true, ValueBool},
		{"string", "hello", ValueText},
		{"bytes", []byte{0x01}, ValueBytes},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := Coerce(tt.in, TargetNone)
			require.NoError(t, err)
			assert.Equal(t, tt.kind, v.Kind())
			// The driver form keeps the exact Go type supplied.
			assert.Equal(t, tt.in, v.Interface())
		})
	}
}

func TestCoerceParsesIntegerText(t *testing.T) {
	v, err := Coerce("12345", TargetInteger)
	require.NoError(t, err)

	assert.Equal(t, ValueInt, v.Kind())
	i, ok := v.Int()
	require.True(t, ok)
	assert.Equal(t, int64(12345), i)
}

func TestCoerceRejectsBadIntegerText(t *testing.T) {
	_, err := Coerce("12a45", TargetInteger)
	require.Error(t, err)

	assert.Equal(t, KindSyntax, KindOf(err))
	assert.Contains(t, err.Error(), "12a45")
}

func TestCoerceParsesFloatText(t *testing.T) {
	v, err := Coerce("2.75", TargetFloat)
	require.NoError(t, err)

	f, ok := v.Float()
	require.True(t, ok)
	assert.InDelta(t, 2.75, f, 1e-9)
}

func TestCoerceRejectsBadFloatText(t *testing.T) {
	_, err := Coerce("not-a-number", TargetFloat)
	require.Error(t, err)
	assert.Equal(t, KindSyntax, KindOf(err))
}

func TestCoerceParsesTimestampText(t *testing.T) {
	v, err := Coerce("2026-08-26 10:30:00+0000", TargetTimestamp)
	require.NoError(t, err)

	assert.Equal(t, ValueTimestamp, v.Kind())
	ts, ok := v.Time()
	require.True(t, ok)
	assert.Equal(t, 2026, ts.Year())
	assert.Equal(t, time.August, ts.Month())
}

func TestCoerceRejectsBadTimestampText(t *testing.T) {
	_, err := Coerce("yesterday", TargetTimestamp)
	require.Error(t, err)

	assert.Equal(t, KindSyntax, KindOf(err))
	// The message names the expected layout.
	assert.Contains(t, err.Error(), TimestampLayout)
}

func TestCoerceIgnoresTargetForNonText(t *testing.T) {
	// A non-textual value with a parse target passes through unchanged.
	v, err := Coerce(int64(7), TargetInteger)
	require.NoError(t, err)

	i, ok := v.Int()
	require.True(t, ok)
	assert.Equal(t, int64(7), i)
}

func TestCoerceTargetTextIsPassThrough(t *testing.T) {
	v, err := Coerce("plain", TargetText)
	require.NoError(t, err)

	s, ok := v.Text()
	require.True(t, ok)
	assert.Equal(t, "plain", s)
}

func TestCoerceTruncatesTimeToMillis(t *testing.T) {
	in := time.Date(2026, time.August, 26, 10, 30, 0, 123_456_789, time.UTC)

	v, err := Coerce(in, TargetNone)
	require.NoError(t, err)

	ts, ok := v.Time()
	require.True(t, ok)
	assert.Equal(t, 123_000_000, ts.Nanosecond())
	assert.Equal(t, in.UnixMilli(), ts.UnixMilli())
}

func TestCoerceURL(t *testing.T) {
	u, err := url.Parse("https://example.com/path?q=1")
	require.NoError(t, err)

	v, err := Coerce(u, TargetNone)
	require.NoError(t, err)

	s, ok := v.Text()
	require.True(t, ok)
	assert.Equal(t, "https://example.com/path?q=1", s)

	v, err = Coerce(*u, TargetNone)
	require.NoError(t, err)
	assert.Equal(t, ValueText, v.Kind())
}

func TestCoerceNilURLIsNull(t *testing.T) {
	var u *url.URL

	v, err := Coerce(u, TargetNone)
	require.NoError(t, err)
	assert.True(t, v.IsNull())
}

func TestCoerceUUID(t *testing.T) {
	id := uuid.New()

	v, err := Coerce(id, TargetNone)
	require.NoError(t, err)

	assert.Equal(t, ValueUUID, v.Kind())
	got, ok := v.UUID()
	require.True(t, ok)
	assert.Equal(t, id, got)
}

func TestCoerceIsIdempotent(t *testing.T) {
	first, err := Coerce("12345", TargetInteger)
	require.NoError(t, err)

	second, err := Coerce(first, TargetInteger)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCoerceUnknownTypeIsOpaque(t *testing.T) {
	type custom struct{ X int }

	v, err := Coerce(custom{X: 1}, TargetNone)
	require.NoError(t, err)

	assert.Equal(t, ValueOpaque, v.Kind())
	assert.Equal(t, custom{X: 1}, v.Interface())
}

func TestValueString(t *testing.T) {
	var unset Value
	assert.Equal(t, "<unset>", unset.String())
	assert.Equal(t, "<null>", Null().String())

	v, err := Coerce("hi", TargetNone)
	require.NoError(t, err)
	assert.Equal(t, `text(hi)`, v.String())
}
