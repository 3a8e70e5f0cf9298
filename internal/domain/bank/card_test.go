package bank

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCard(t *testing.T) {
	t.Run("creates active card expiring in five years", func(t *testing.T) {
		card, err := NewCard(1, "ES00000000000000000001", CardTypeDebit)
		require.NoError(t, err)
		require.NotNil(t, card)

		assert.Equal(t, int64(1), card.HolderID)
		assert.Equal(t, "ES00000000000000000001", card.AccountNumber)
		assert.Equal(t, CardTypeDebit, card.Type)
		assert.True(t, card.Active)
		assert.Empty(t, card.Number)
		assert.True(t, card.ExpirationDate.Equal(card.CreatedAt.AddDate(5, 0, 0)))
	})

	t.Run("fails without holder", func(t *testing.T) {
		_, err := NewCard(0, "ES00000000000000000001", CardTypeDebit)
		require.Error(t, err)
	})

	t.Run("fails without account number", func(t *testing.T) {
		_, err := NewCard(1, "", CardTypeCredit)
		require.Error(t, err)
	})

	t.Run("fails with unknown type", func(t *testing.T) {
		_, err := NewCard(1, "ES00000000000000000001", CardType("prepaid"))
		require.Error(t, err)
	})
}

func TestCardIsExpired(t *testing.T) {
	card, err := NewCard(1, "ES00000000000000000001", CardTypeCredit)
	require.NoError(t, err)

	assert.False(t, card.IsExpired(card.CreatedAt))
	assert.False(t, card.IsExpired(card.ExpirationDate))
	assert.True(t, card.IsExpired(card.ExpirationDate.Add(time.Second)))
}
