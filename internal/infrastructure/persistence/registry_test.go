package persistence

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/gerSanzag/mibanco/internal/domain/bank"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry(t *testing.T) {
	ctx := context.Background()

	t.Run("in-memory registry serves all entity types", func(t *testing.T) {
		registry := NewRegistry(RegistryConfig{})

		client, err := bank.NewClient("Maria", "Lopez", "11111111A", "")
		require.NoError(t, err)
		client, err = registry.Clients.Create(ctx, client, bank.ClientCreated)
		require.NoError(t, err)
		assert.Equal(t, int64(1), client.ID)

		account, err := bank.NewAccount(client.ID, bank.AccountTypeSavings, decimal.Zero)
		require.NoError(t, err)
		account, err = registry.Accounts.Create(ctx, account, bank.AccountCreated)
		require.NoError(t, err)
		assert.Len(t, account.Number, len(bank.AccountNumberPrefix)+bank.AccountNumberDigits)

		card, err := bank.NewCard(client.ID, account.Number, bank.CardTypeDebit)
		require.NoError(t, err)
		card, err = registry.Cards.Create(ctx, card, bank.CardCreated)
		require.NoError(t, err)
		assert.Len(t, card.Number, bank.CardNumberDigits)

		tx, err := bank.NewTransaction(account.Number, "", bank.TransactionDeposit, decimal.NewFromInt(10), "")
		require.NoError(t, err)
		tx, err = registry.Transactions.Create(ctx, tx, bank.TransactionCreated)
		require.NoError(t, err)
		assert.Equal(t, int64(1), tx.ID)
	})

	t.Run("current user fans out to every audit trail", func(t *testing.T) {
		registry := NewRegistry(RegistryConfig{})
		registry.SetCurrentUser("operator")

		client, err := bank.NewClient("Maria", "Lopez", "11111111A", "")
		require.NoError(t, err)
		client, err = registry.Clients.Create(ctx, client, bank.ClientCreated)
		require.NoError(t, err)

		history, err := registry.Clients.Audit().History(client.ID)
		require.NoError(t, err)
		require.Len(t, history, 1)
		assert.Equal(t, "operator", history[0].User)
	})

	t.Run("FlushAll writes one snapshot per populated store", func(t *testing.T) {
		dir := t.TempDir()
		registry := NewRegistry(RegistryConfig{DataDir: dir, FlushThreshold: 100})

		client, err := bank.NewClient("Maria", "Lopez", "11111111A", "")
		require.NoError(t, err)
		client, err = registry.Clients.Create(ctx, client, bank.ClientCreated)
		require.NoError(t, err)

		account, err := bank.NewAccount(client.ID, bank.AccountTypeSavings, decimal.Zero)
		require.NoError(t, err)
		_, err = registry.Accounts.Create(ctx, account, bank.AccountCreated)
		require.NoError(t, err)

		require.NoError(t, registry.FlushAll(ctx))

		_, err = os.Stat(filepath.Join(dir, "clients.json"))
		require.NoError(t, err)
		_, err = os.Stat(filepath.Join(dir, "accounts.json"))
		require.NoError(t, err)

		// Empty stores write nothing
		_, err = os.Stat(filepath.Join(dir, "cards.json"))
		assert.True(t, os.IsNotExist(err))

		// A fresh registry over the same directory sees the data
		reopened := NewRegistry(RegistryConfig{DataDir: dir})
		found, err := reopened.Clients.FindByID(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, "11111111A", found.DNI)
	})
}
