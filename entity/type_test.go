package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"entitycast/entity"
	"entitycast/field"
)

func newCustomerType(t *testing.T) *entity.Type {
	t.Helper()

	typ, err := entity.NewType("Customer",
		entity.Attr("name", field.String()),
		entity.Attr("vip", field.BoolInt(field.WithDefault(false))),
	)
	require.NoError(t, err)

	return typ
}

func newTagType(t *testing.T) *entity.Type {
	t.Helper()

	typ, err := entity.NewType("Tag",
		entity.Attr("value", field.String(field.WithDefault(""))),
	)
	require.NoError(t, err)

	return typ
}

func TestNewType(t *testing.T) {
	t.Parallel()

	t.Run("duplicate attribute name", func(t *testing.T) {
		t.Parallel()

		_, err := entity.NewType("Order",
			entity.Attr("id", field.Int()),
			entity.Attr("id", field.Int()),
		)
		require.ErrorIs(t, err, entity.ErrDuplicateAttribute)
	})

	t.Run("nil accessor", func(t *testing.T) {
		t.Parallel()

		_, err := entity.NewType("Order", entity.Attr("id", nil))
		require.ErrorIs(t, err, entity.ErrNilAccessor)
	})

	t.Run("empty attribute name", func(t *testing.T) {
		t.Parallel()

		_, err := entity.NewType("Order", entity.Attr("", field.Int()))
		require.Error(t, err)
	})

	t.Run("declaration order is kept", func(t *testing.T) {
		t.Parallel()

		typ := newCustomerType(t)
		attrs := typ.Attrs()
		require.Len(t, attrs, 2)
		assert.Equal(t, "name", attrs[0].Name)
		assert.Equal(t, "vip", attrs[1].Name)
	})
}

func TestRequiredAttrs(t *testing.T) {
	t.Parallel()

	customer := newCustomerType(t)
	assert.Equal(t, []string{"name"}, customer.RequiredAttrs())
	assert.True(t, customer.HasRequired())

	tag := newTagType(t)
	assert.Empty(t, tag.RequiredAttrs())
	assert.False(t, tag.HasRequired())
}

func TestRequiredTransitive(t *testing.T) {
	t.Parallel()

	customer := newCustomerType(t)

	// a nested type with required attributes makes the object attribute
	// itself required, unless declared optional or given a default
	order, err := entity.NewType("Order",
		entity.Attr("customer", field.Object(customer)),
		entity.Attr("note", field.String(field.WithDefault(""))),
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"customer"}, order.RequiredAttrs())

	relaxed, err := entity.NewType("Order",
		entity.Attr("customer", field.Object(customer, field.AsOptional())),
	)
	require.NoError(t, err)

	assert.Empty(t, relaxed.RequiredAttrs())
}

func TestTypeBlueprint(t *testing.T) {
	t.Parallel()

	tag := newTagType(t)
	other := newTagType(t)

	e, err := tag.Empty()
	require.NoError(t, err)

	assert.True(t, tag.Instance(e))
	assert.False(t, other.Instance(e), "instances are bound to their exact type")
	assert.False(t, tag.Instance("tag"))

	v, err := tag.FromMapping(map[string]any{"value": "red"})
	require.NoError(t, err)
	assert.Equal(t, "red", v.(*entity.Entity).MustGet("value"))
}
