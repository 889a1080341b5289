package guard_test

import (
	"errors"
	"testing"

	"ordering/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errOrderNotConstructed = errors.New("Order must be created via NewOrder")

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes with any error argument", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errOrderNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the given error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errOrderNotConstructed)

		assert.Equal(t, errOrderNotConstructed, err)
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(nil)

		require.ErrorIs(t, err, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", err.Error())
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type quantity struct {
		value int
		guard guard.ConstructorGuard
	}

	newQuantity := func(value int) (quantity, error) {
		if value < 1 {
			return quantity{}, errors.New("quantity must be positive")
		}
		return quantity{value: value, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed object validates", func(t *testing.T) {
		q, err := newQuantity(3)

		require.NoError(t, err)
		require.NoError(t, q.guard.Validate(nil))
		assert.Equal(t, 3, q.value)
	})

	t.Run("object that bypassed the constructor is rejected", func(t *testing.T) {
		var q quantity

		require.Error(t, q.guard.Validate(nil))
	})

	t.Run("rejected construction leaves a zero value behind", func(t *testing.T) {
		q, err := newQuantity(0)

		require.Error(t, err)
		require.Error(t, q.guard.Validate(nil))
	})

	t.Run("copies keep the constructed state", func(t *testing.T) {
		q, err := newQuantity(3)
		require.NoError(t, err)

		copied := q

		require.NoError(t, copied.guard.Validate(nil))
	})
}
