package array

import (
	"testing"

	"github.com/gostonefire/hashytables/crt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creates an array of zero values", func(t *testing.T) {
		// Execute
		arr, err := New[string](5)

		// Check
		require.NoError(t, err, "create array")
		assert.Equal(t, 5, arr.Len(), "correct length")
		for i := 0; i < arr.Len(); i++ {
			item, err := arr.Get(i)
			assert.NoErrorf(t, err, "get slot #%d", i)
			assert.Emptyf(t, item, "slot #%d holds zero value", i)
		}
	})

	t.Run("allows an empty array", func(t *testing.T) {
		// Execute
		arr, err := New[int](0)

		// Check
		require.NoError(t, err, "create array")
		assert.Zero(t, arr.Len(), "zero length")
	})

	t.Run("rejects negative length", func(t *testing.T) {
		// Execute
		_, err := New[int](-1)

		// Check
		assert.Error(t, err, "negative length rejected")
	})
}

func TestArray_GetSet(t *testing.T) {
	t.Run("stores and returns items", func(t *testing.T) {
		// Prepare
		arr, err := New[int](3)
		require.NoError(t, err, "create array")

		// Execute
		assert.NoError(t, arr.Set(0, 10), "set slot 0")
		assert.NoError(t, arr.Set(2, 30), "set slot 2")

		// Check
		v, err := arr.Get(0)
		assert.NoError(t, err, "get slot 0")
		assert.Equal(t, 10, v, "slot 0 value")
		v, err = arr.Get(1)
		assert.NoError(t, err, "get slot 1")
		assert.Equal(t, 0, v, "slot 1 untouched")
		v, err = arr.Get(2)
		assert.NoError(t, err, "get slot 2")
		assert.Equal(t, 30, v, "slot 2 value")
	})

	t.Run("fails outside bounds", func(t *testing.T) {
		// Prepare
		arr, err := New[int](3)
		require.NoError(t, err, "create array")

		for _, index := range []int{-1, 3, 100} {
			// Execute
			_, errGet := arr.Get(index)
			errSet := arr.Set(index, 1)

			// Check
			assert.ErrorIsf(t, errGet, crt.IndexOutOfBounds{}, "get at %d out of bounds", index)
			assert.ErrorIsf(t, errSet, crt.IndexOutOfBounds{}, "set at %d out of bounds", index)
		}
		assert.Equal(t, 3, arr.Len(), "length unchanged")
	})
}

func TestArray_All(t *testing.T) {
	t.Run("iterates in index order and stops early", func(t *testing.T) {
		// Prepare
		arr, err := New[string](4)
		require.NoError(t, err, "create array")
		for i, s := range []string{"a", "b", "c", "d"} {
			require.NoError(t, arr.Set(i, s), "set slot")
		}

		// Execute
		var seen []string
		for i, s := range arr.All() {
			if i == 3 {
				break
			}
			seen = append(seen, s)
		}

		// Check
		assert.Equal(t, []string{"a", "b", "c"}, seen, "items in order up to break")
	})
}
