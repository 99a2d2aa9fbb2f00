package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitycast/entity"
	"entitycast/field"
)

func TestObjectCoerce(t *testing.T) {
	t.Parallel()

	tag := newTagType(t)
	acc := field.Object(tag)

	t.Run("mapping constructs the nested entity", func(t *testing.T) {
		t.Parallel()

		v, err := acc.Coerce(map[string]any{"value": "red"})
		require.NoError(t, err)
		assert.Equal(t, "red", v.(*entity.Entity).MustGet("value"))
	})

	t.Run("matching instance is kept", func(t *testing.T) {
		t.Parallel()

		e, err := tag.Empty()
		require.NoError(t, err)

		v, err := acc.Coerce(e)
		require.NoError(t, err)
		assert.Same(t, e, v)
	})

	t.Run("falsy input defaults to an empty instance", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []any{nil, false, "", map[string]any{}} {
			v, err := acc.Coerce(raw)
			require.NoError(t, err)
			require.True(t, tag.Instance(v))
			assert.Equal(t, "", v.(*entity.Entity).MustGet("value"))
		}
	})

	t.Run("truthy wrong shape errors", func(t *testing.T) {
		t.Parallel()

		_, err := acc.Coerce("just a string")
		require.Error(t, err)
		assert.True(t, field.IsInvalidCompositeValueError(err))
	})

	t.Run("optional attribute swallows wrong shapes", func(t *testing.T) {
		t.Parallel()

		opt := field.Object(tag, field.AsOptional())
		v, err := opt.Coerce("just a string")
		require.NoError(t, err)
		assert.True(t, tag.Instance(v))
	})
}

func TestObjectDefaults(t *testing.T) {
	t.Parallel()

	customer := newCustomerType(t)

	t.Run("required nested type means no safe default", func(t *testing.T) {
		t.Parallel()

		acc := field.Object(customer)
		assert.False(t, acc.HasDefault())
		_, err := acc.Default()
		require.ErrorIs(t, err, field.ErrMissingDefault)
	})

	t.Run("optional defaults to nil", func(t *testing.T) {
		t.Parallel()

		acc := field.Object(customer, field.AsOptional())
		v, err := acc.Default()
		require.NoError(t, err)
		assert.Nil(t, v)
	})

	t.Run("literal instance default", func(t *testing.T) {
		t.Parallel()

		def, err := entity.Import(customer, map[string]any{"name": "walk-in"})
		require.NoError(t, err)

		acc := field.Object(customer, field.WithDefault(def))
		v, err := acc.Default()
		require.NoError(t, err)
		assert.Same(t, def, v)
	})
}

func TestObjectListCoerce(t *testing.T) {
	t.Parallel()

	tag := newTagType(t)
	acc := field.ObjectList(tag)

	t.Run("mixed items, wrong shapes skipped", func(t *testing.T) {
		t.Parallel()

		existing, err := tag.FromMapping(map[string]any{"value": "blue"})
		require.NoError(t, err)

		v, err := acc.Coerce([]any{
			map[string]any{"value": "red"},
			existing,
			"garbage",
			42,
		})
		require.NoError(t, err)

		items := v.([]any)
		require.Len(t, items, 2)
		assert.Equal(t, "red", items[0].(*entity.Entity).MustGet("value"))
		assert.Same(t, existing, items[1])
	})

	t.Run("non-list defaults to empty", func(t *testing.T) {
		t.Parallel()

		v, err := acc.Coerce("nope")
		require.NoError(t, err)
		assert.Empty(t, v.([]any))
	})
}

func TestObjectMapCoerce(t *testing.T) {
	t.Parallel()

	tag := newTagType(t)
	acc := field.ObjectMap(tag)

	t.Run("values constructed or kept, wrong shapes skipped", func(t *testing.T) {
		t.Parallel()

		existing, err := tag.FromMapping(map[string]any{"value": "blue"})
		require.NoError(t, err)

		v, err := acc.Coerce(map[string]any{
			"a": map[string]any{"value": "red"},
			"b": existing,
			"c": "garbage",
		})
		require.NoError(t, err)

		m := v.(map[string]any)
		require.Len(t, m, 2)
		assert.Equal(t, "red", m["a"].(*entity.Entity).MustGet("value"))
		assert.Same(t, existing, m["b"])
		assert.NotContains(t, m, "c")
	})

	t.Run("non-mapping defaults to empty", func(t *testing.T) {
		t.Parallel()

		v, err := acc.Coerce([]any{"x"})
		require.NoError(t, err)
		assert.Empty(t, v.(map[string]any))
	})
}

func TestStringWrapperCoerce(t *testing.T) {
	t.Parallel()

	tag := newTagType(t)
	acc := field.StringWrapper(tag)

	t.Run("bare string is wrapped", func(t *testing.T) {
		t.Parallel()

		v, err := acc.Coerce("parent-1")
		require.NoError(t, err)
		assert.Equal(t, "parent-1", v.(*entity.Entity).MustGet("value"))
	})

	t.Run("number is rendered and wrapped", func(t *testing.T) {
		t.Parallel()

		v, err := acc.Coerce(42)
		require.NoError(t, err)
		assert.Equal(t, "42", v.(*entity.Entity).MustGet("value"))
	})

	t.Run("mapping expands as constructor input", func(t *testing.T) {
		t.Parallel()

		v, err := acc.Coerce(map[string]any{"value": "from-map"})
		require.NoError(t, err)
		assert.Equal(t, "from-map", v.(*entity.Entity).MustGet("value"))
	})

	t.Run("instance is kept", func(t *testing.T) {
		t.Parallel()

		e, err := tag.Empty()
		require.NoError(t, err)

		v, err := acc.Coerce(e)
		require.NoError(t, err)
		assert.Same(t, e, v)
	})

	t.Run("nil and false default to an empty instance", func(t *testing.T) {
		t.Parallel()

		for _, raw := range []any{nil, false} {
			v, err := acc.Coerce(raw)
			require.NoError(t, err)
			assert.Equal(t, "", v.(*entity.Entity).MustGet("value"))
		}
	})

	t.Run("target without a value attribute discards the text", func(t *testing.T) {
		t.Parallel()

		bare, err := entity.NewType("Bare",
			entity.Attr("other", field.String(field.WithDefault("x"))),
		)
		require.NoError(t, err)

		v, err := field.StringWrapper(bare).Coerce("ignored")
		require.NoError(t, err)
		assert.Equal(t, "x", v.(*entity.Entity).MustGet("other"))
	})
}
