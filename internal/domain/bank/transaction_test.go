package bank

import (
	"errors"
	"testing"

	"github.com/gerSanzag/mibanco/internal/domain/shared"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTransaction(t *testing.T) {
	t.Run("creates transaction with valid inputs", func(t *testing.T) {
		tx, err := NewTransaction("ES1", "ES2", TransactionTransferOut, decimal.NewFromInt(25), "rent")
		require.NoError(t, err)
		require.NotNil(t, tx)

		assert.Equal(t, "ES1", tx.SourceAccount)
		assert.Equal(t, "ES2", tx.DestinationAccount)
		assert.Equal(t, TransactionTransferOut, tx.Kind)
		assert.True(t, tx.Amount.Equal(decimal.NewFromInt(25)))
		assert.Equal(t, "rent", tx.Description)
		assert.Zero(t, tx.ID)
		assert.False(t, tx.Timestamp.IsZero())
	})

	t.Run("fails without source account", func(t *testing.T) {
		_, err := NewTransaction("", "", TransactionDeposit, decimal.NewFromInt(10), "")
		require.Error(t, err)
	})

	t.Run("fails with unknown kind", func(t *testing.T) {
		_, err := NewTransaction("ES1", "", TransactionKind("donation"), decimal.NewFromInt(10), "")
		require.Error(t, err)
	})

	t.Run("fails with non-positive amount", func(t *testing.T) {
		_, err := NewTransaction("ES1", "", TransactionDeposit, decimal.Zero, "")
		assert.True(t, errors.Is(err, shared.ErrInvalidAmount))
	})
}

func TestTransactionKindInverse(t *testing.T) {
	assert.Equal(t, TransactionWithdrawal, TransactionDeposit.Inverse())
	assert.Equal(t, TransactionDeposit, TransactionWithdrawal.Inverse())
	assert.Equal(t, TransactionTransferIn, TransactionTransferOut.Inverse())
	assert.Equal(t, TransactionTransferOut, TransactionTransferIn.Inverse())

	// Kinds without a natural opposite invert to themselves
	assert.Equal(t, TransactionFee, TransactionFee.Inverse())
	assert.Equal(t, TransactionInterest, TransactionInterest.Inverse())
}

func TestTransactionReversed(t *testing.T) {
	t.Run("swaps accounts and inverts the kind", func(t *testing.T) {
		tx, err := NewTransaction("ES1", "ES2", TransactionTransferOut, decimal.NewFromInt(40), "rent")
		require.NoError(t, err)

		rev, err := tx.Reversed()
		require.NoError(t, err)
		assert.Equal(t, "ES2", rev.SourceAccount)
		assert.Equal(t, "ES1", rev.DestinationAccount)
		assert.Equal(t, TransactionTransferIn, rev.Kind)
		assert.True(t, rev.Amount.Equal(tx.Amount))
		assert.Equal(t, ReversalPrefix+"rent", rev.Description)
	})

	t.Run("single-account movement keeps its source", func(t *testing.T) {
		tx, err := NewTransaction("ES1", "", TransactionDeposit, decimal.NewFromInt(40), "cash")
		require.NoError(t, err)

		rev, err := tx.Reversed()
		require.NoError(t, err)
		assert.Equal(t, "ES1", rev.SourceAccount)
		assert.Empty(t, rev.DestinationAccount)
		assert.Equal(t, TransactionWithdrawal, rev.Kind)
	})

	t.Run("reversing twice restores the original kind", func(t *testing.T) {
		tx, err := NewTransaction("ES1", "ES2", TransactionTransferOut, decimal.NewFromInt(40), "rent")
		require.NoError(t, err)

		rev, err := tx.Reversed()
		require.NoError(t, err)
		again, err := rev.Reversed()
		require.NoError(t, err)

		assert.Equal(t, tx.Kind, again.Kind)
		assert.Equal(t, tx.SourceAccount, again.SourceAccount)
		assert.Equal(t, tx.DestinationAccount, again.DestinationAccount)
		assert.Equal(t, ReversalPrefix+ReversalPrefix+"rent", again.Description)
	})
}
