package bank

import (
	"errors"
	"testing"

	"github.com/gerSanzag/mibanco/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAccount(t *testing.T) {
	t.Run("creates active account with opening balance", func(t *testing.T) {
		account, err := NewAccount(1, AccountTypeSavings, decimal.NewFromInt(100))
		require.NoError(t, err)
		require.NotNil(t, account)

		assert.Equal(t, int64(1), account.HolderID)
		assert.Equal(t, AccountTypeSavings, account.Type)
		assert.True(t, account.Active)
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(100)))
		assert.True(t, account.InitialBalance.Equal(decimal.NewFromInt(100)))
		assert.Empty(t, account.Number)
	})

	t.Run("allows zero opening balance", func(t *testing.T) {
		account, err := NewAccount(1, AccountTypeChecking, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, account.Balance.IsZero())
	})

	t.Run("fails without holder", func(t *testing.T) {
		_, err := NewAccount(0, AccountTypeSavings, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("fails with unknown type", func(t *testing.T) {
		_, err := NewAccount(1, AccountType("offshore"), decimal.Zero)
		require.Error(t, err)
	})

	t.Run("fails with negative opening balance", func(t *testing.T) {
		_, err := NewAccount(1, AccountTypeSavings, decimal.NewFromInt(-1))
		require.Error(t, err)
	})
}

func TestAccountTypeIsValid(t *testing.T) {
	assert.True(t, AccountTypeSavings.IsValid())
	assert.True(t, AccountTypeChecking.IsValid())
	assert.True(t, AccountTypeFixedTerm.IsValid())
	assert.False(t, AccountType("").IsValid())
	assert.False(t, AccountType("offshore").IsValid())
}

func TestAccountCredit(t *testing.T) {
	account, err := NewAccount(1, AccountTypeSavings, decimal.NewFromInt(100))
	require.NoError(t, err)

	t.Run("adds the amount", func(t *testing.T) {
		require.NoError(t, account.Credit(decimal.NewFromInt(50)))
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(150)))
	})

	t.Run("rejects zero amount", func(t *testing.T) {
		err := account.Credit(decimal.Zero)
		assert.True(t, errors.Is(err, shared.ErrInvalidAmount))
	})

	t.Run("rejects negative amount", func(t *testing.T) {
		err := account.Credit(decimal.NewFromInt(-5))
		assert.True(t, errors.Is(err, shared.ErrInvalidAmount))
	})
}

func TestAccountDebit(t *testing.T) {
	account, err := NewAccount(1, AccountTypeSavings, decimal.NewFromInt(100))
	require.NoError(t, err)

	t.Run("subtracts the amount", func(t *testing.T) {
		require.NoError(t, account.Debit(decimal.NewFromInt(30)))
		assert.True(t, account.Balance.Equal(decimal.NewFromInt(70)))
	})

	t.Run("allows debiting the full balance", func(t *testing.T) {
		require.NoError(t, account.Debit(decimal.NewFromInt(70)))
		assert.True(t, account.Balance.IsZero())
	})

	t.Run("rejects overdraft", func(t *testing.T) {
		err := account.Debit(decimal.NewFromInt(1))
		assert.True(t, errors.Is(err, shared.ErrInsufficientBalance))
		assert.True(t, account.Balance.IsZero())
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		err := account.Debit(decimal.Zero)
		assert.True(t, errors.Is(err, shared.ErrInvalidAmount))
	})
}

func TestAccountActivation(t *testing.T) {
	account, err := NewAccount(1, AccountTypeSavings, decimal.Zero)
	require.NoError(t, err)

	account.Deactivate()
	assert.False(t, account.Active)
	account.Activate()
	assert.True(t, account.Active)
}
