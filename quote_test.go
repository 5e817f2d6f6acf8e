package quotes_test

import (
	"testing"

	"github.com/fwojciec/quotes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestCompact(t *testing.T) {
	t.Parallel()

	t.Run("keeps all values when none are nil", func(t *testing.T) {
		t.Parallel()

		result := quotes.Compact([]*string{ptr("A"), ptr("B"), ptr("C")})

		assert.Equal(t, []string{"A", "B", "C"}, result)
	})

	t.Run("drops nil values and preserves order", func(t *testing.T) {
		t.Parallel()

		result := quotes.Compact([]*string{ptr("A"), nil, ptr("C"), nil, ptr("E")})

		assert.Equal(t, []string{"A", "C", "E"}, result)
	})

	t.Run("keeps empty strings", func(t *testing.T) {
		t.Parallel()

		result := quotes.Compact([]*string{ptr(""), nil})

		assert.Equal(t, []string{""}, result)
	})

	t.Run("returns empty non-nil slice when all values are nil", func(t *testing.T) {
		t.Parallel()

		result := quotes.Compact([]*string{nil, nil})

		require.NotNil(t, result)
		assert.Empty(t, result)
	})

	t.Run("returns empty non-nil slice for no input", func(t *testing.T) {
		t.Parallel()

		result := quotes.Compact(nil)

		require.NotNil(t, result)
		assert.Empty(t, result)
	})
}

func TestSelector_Validate(t *testing.T) {
	t.Parallel()

	t.Run("default selector is valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, quotes.DefaultSelector.Validate())
	})

	t.Run("requires container", func(t *testing.T) {
		t.Parallel()

		err := quotes.Selector{Text: ".b-qt"}.Validate()

		require.Error(t, err)
		assert.Equal(t, quotes.EINVALID, quotes.ErrorCode(err))
		assert.Contains(t, quotes.ErrorMessage(err), "container")
	})

	t.Run("requires text", func(t *testing.T) {
		t.Parallel()

		err := quotes.Selector{Container: ".grid-item"}.Validate()

		require.Error(t, err)
		assert.Equal(t, quotes.EINVALID, quotes.ErrorCode(err))
		assert.Contains(t, quotes.ErrorMessage(err), "text")
	})
}
