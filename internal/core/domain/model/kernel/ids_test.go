package kernel_test

import (
	"testing"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderID(t *testing.T) {
	t.Run("valid UUID string round-trips through create", func(t *testing.T) {
		raw := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

		id, err := kernel.OrderIDFromString(raw)

		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
	})

	t.Run("generated identifier is accepted by create", func(t *testing.T) {
		id := kernel.NewOrderID()

		parsed, err := kernel.OrderIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
		require.NoError(t, id.Validate())
	})

	t.Run("empty string fails with required error", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("")

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Equal(t, errs.CategoryValidation, errs.CategoryOf(err))
	})

	t.Run("malformed string fails with validation error", func(t *testing.T) {
		_, err := kernel.OrderIDFromString("not-a-uuid")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, errs.CategoryValidation, errs.CategoryOf(err))
	})

	t.Run("equality is by value", func(t *testing.T) {
		raw := kernel.NewOrderID().String()
		first, _ := kernel.OrderIDFromString(raw)
		second, _ := kernel.OrderIDFromString(raw)

		assert.True(t, first.IsEqual(second))
		assert.False(t, first.IsEqual(kernel.NewOrderID()))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.OrderID
		require.Error(t, id.Validate())
	})
}

func TestCustomerID(t *testing.T) {
	t.Run("generate and create agree", func(t *testing.T) {
		id := kernel.NewCustomerID()

		parsed, err := kernel.CustomerIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("invalid input fails fast", func(t *testing.T) {
		_, err := kernel.CustomerIDFromString("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = kernel.CustomerIDFromString("42")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestProductID(t *testing.T) {
	t.Run("generate and create agree", func(t *testing.T) {
		id := kernel.NewProductID()

		parsed, err := kernel.ProductIDFromString(id.String())

		require.NoError(t, err)
		assert.True(t, id.IsEqual(parsed))
	})

	t.Run("invalid input fails fast", func(t *testing.T) {
		_, err := kernel.ProductIDFromString("")
		require.ErrorIs(t, err, errs.ErrValueIsRequired)

		_, err = kernel.ProductIDFromString("{broken}")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
