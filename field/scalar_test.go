package field_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitycast/field"
)

func TestIntCoerce(t *testing.T) {
	t.Parallel()

	acc := field.Int(field.WithDefault(7))

	cases := []struct {
		name string
		raw  any
		want any
	}{
		{"int", 12, 12},
		{"int64", int64(12), 12},
		{"float truncates", 12.9, 12},
		{"numeric string", "12", 12},
		{"float style string", "12.0", 12},
		{"empty string", "", 7},
		{"nil", nil, 7},
		{"garbage string", "abc", 7},
		{"wrong type", []int{1}, 7},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := acc.Coerce(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestIntRequired(t *testing.T) {
	t.Parallel()

	acc := field.Int()
	assert.False(t, acc.HasDefault())

	_, err := acc.Default()
	require.ErrorIs(t, err, field.ErrMissingDefault)

	_, err = acc.Coerce("not a number")
	require.ErrorIs(t, err, field.ErrMissingDefault)

	got, err := acc.Coerce("41")
	require.NoError(t, err)
	assert.Equal(t, 41, got)
}

func TestIntDefaultPrecedence(t *testing.T) {
	t.Parallel()

	t.Run("factory wins over literal", func(t *testing.T) {
		t.Parallel()

		acc := field.Int(field.WithDefault(1), field.WithFactory(func() any { return 2 }))
		got, err := acc.Default()
		require.NoError(t, err)
		assert.Equal(t, 2, got)
	})

	t.Run("mismatched literal is discarded", func(t *testing.T) {
		t.Parallel()

		acc := field.Int(field.WithDefault("12"))
		assert.False(t, acc.HasDefault())
	})

	t.Run("float literal truncates", func(t *testing.T) {
		t.Parallel()

		acc := field.Int(field.WithDefault(3.9))
		got, err := acc.Default()
		require.NoError(t, err)
		assert.Equal(t, 3, got)
	})
}

func TestFloatCoerce(t *testing.T) {
	t.Parallel()

	acc := field.Float(field.WithDefault(1.5))

	cases := []struct {
		name string
		raw  any
		want any
	}{
		{"float", 2.5, 2.5},
		{"int widens", 3, 3.0},
		{"numeric string", "4.25", 4.25},
		{"empty string", "", 1.5},
		{"nil", nil, 1.5},
		{"garbage string", "abc", 1.5},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := acc.Coerce(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestBoolIntCoerce(t *testing.T) {
	t.Parallel()

	acc := field.BoolInt(field.WithDefault(true))

	cases := []struct {
		name string
		raw  any
		want any
	}{
		{"true", true, 1},
		{"false", false, 0},
		{"non-zero int", 5, 1},
		{"zero int", 0, 0},
		{"nil falls back", nil, 1},
		{"string falls back", "yes", 1},
		{"integral float", 1.0, 1},
		{"zero float", 0.0, 0},
		{"fractional float falls back", 0.5, 1},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, err := acc.Coerce(tc.raw)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStringCoerce(t *testing.T) {
	t.Parallel()

	acc := field.String(field.WithDefault("fallback"))

	got, err := acc.Coerce("hello")
	require.NoError(t, err)
	assert.Equal(t, "hello", got)

	// empty string is a concrete value, not a missing one
	got, err = acc.Coerce("")
	require.NoError(t, err)
	assert.Equal(t, "", got)

	got, err = acc.Coerce([]byte("bytes"))
	require.NoError(t, err)
	assert.Equal(t, "bytes", got)

	got, err = acc.Coerce(nil)
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)

	got, err = acc.Coerce(42)
	require.NoError(t, err)
	assert.Equal(t, "fallback", got)
}
