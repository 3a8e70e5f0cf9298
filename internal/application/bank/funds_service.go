package bank

import (
	"context"
	"fmt"

	"github.com/gerSanzag/mibanco/internal/domain/bank"
	"github.com/gerSanzag/mibanco/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// FundsService orchestrates deposits, withdrawals, transfers and reversals
// against the account and transaction stores under per-account advisory
// locking. Operations against the same account are serialized; operations
// against different accounts run fully concurrently.
type FundsService struct {
	accounts     bank.AccountRepository
	transactions bank.TransactionRepository
	locks        *AccountLocks
	logger       *zap.Logger
}

// NewFundsService creates a new FundsService
func NewFundsService(
	accounts bank.AccountRepository,
	transactions bank.TransactionRepository,
	locks *AccountLocks,
	logger *zap.Logger,
) *FundsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FundsService{
		accounts:     accounts,
		transactions: transactions,
		locks:        locks,
		logger:       logger,
	}
}

// Deposit credits the account and records a deposit transaction.
// Inactive accounts are reactivated before the credit.
func (s *FundsService) Deposit(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*bank.Transaction, error) {
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	if !s.locks.TryAcquire(accountNumber) {
		return nil, shared.ErrAccountBusy
	}
	defer s.locks.Release(accountNumber)

	account, err := s.accounts.FindByID(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if !account.Active {
		account.Activate()
	}
	if err := account.Credit(amount); err != nil {
		return nil, err
	}
	if _, err := s.accounts.Update(ctx, account, bank.AccountDeposited); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	return s.record(ctx, accountNumber, "", bank.TransactionDeposit, amount, description)
}

// Withdraw debits the account and records a withdrawal transaction.
// Rejected when the amount is not positive or exceeds the balance.
// Inactive accounts are reactivated before the balance check.
func (s *FundsService) Withdraw(ctx context.Context, accountNumber string, amount decimal.Decimal, description string) (*bank.Transaction, error) {
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	if !s.locks.TryAcquire(accountNumber) {
		return nil, shared.ErrAccountBusy
	}
	defer s.locks.Release(accountNumber)

	account, err := s.accounts.FindByID(ctx, accountNumber)
	if err != nil {
		return nil, err
	}
	if !account.Active {
		account.Activate()
	}
	if err := account.Debit(amount); err != nil {
		return nil, err
	}
	if _, err := s.accounts.Update(ctx, account, bank.AccountWithdrawn); err != nil {
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	return s.record(ctx, accountNumber, "", bank.TransactionWithdrawal, amount, description)
}

// Transfer moves funds between two accounts. Both locks must be available
// up front; holding them for the whole operation keeps the two legs
// consistent. If the credit leg fails after the debit succeeded, the debit
// is compensated before returning, so no money is left in limbo.
//
// Two transactions record the movement, one per leg; the transfer-out side
// is returned.
func (s *FundsService) Transfer(ctx context.Context, source, destination string, amount decimal.Decimal, description string) (*bank.Transaction, error) {
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	if source == destination {
		return nil, shared.NewDomainError("INVALID_INPUT", "Cannot transfer to the same account")
	}
	if !s.locks.TryAcquire(source) {
		return nil, shared.ErrAccountBusy
	}
	defer s.locks.Release(source)
	if !s.locks.TryAcquire(destination) {
		return nil, shared.ErrAccountBusy
	}
	defer s.locks.Release(destination)

	srcAccount, err := s.accounts.FindByID(ctx, source)
	if err != nil {
		return nil, err
	}
	dstAccount, err := s.accounts.FindByID(ctx, destination)
	if err != nil {
		return nil, err
	}

	if !srcAccount.Active {
		srcAccount.Activate()
	}
	if err := srcAccount.Debit(amount); err != nil {
		return nil, err
	}
	if _, err := s.accounts.Update(ctx, srcAccount, bank.AccountTransferred); err != nil {
		return nil, fmt.Errorf("failed to save source account: %w", err)
	}

	if !dstAccount.Active {
		dstAccount.Activate()
	}
	if err := s.creditDestination(ctx, dstAccount, amount); err != nil {
		s.compensateDebit(ctx, source, amount)
		return nil, err
	}

	if description == "" {
		description = "Transfer"
	}
	if _, err := s.record(ctx, destination, source, bank.TransactionTransferIn, amount,
		fmt.Sprintf("%s - received from account %s", description, source)); err != nil {
		s.logger.Error("transfer-in transaction not recorded",
			zap.String("source", source),
			zap.String("destination", destination),
			zap.Error(err),
		)
	}
	return s.record(ctx, source, destination, bank.TransactionTransferOut, amount,
		fmt.Sprintf("%s - sent to account %s", description, destination))
}

// Reverse records the compensating transaction for an existing one: inverse
// kind, swapped accounts, marked description. It does not touch balances;
// the paired operation it reverses is assumed to have moved them already.
func (s *FundsService) Reverse(ctx context.Context, transactionID int64) (*bank.Transaction, error) {
	original, err := s.transactions.FindByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	reversal, err := original.Reversed()
	if err != nil {
		return nil, err
	}
	created, err := s.transactions.Create(ctx, reversal, bank.TransactionReversed)
	if err != nil {
		return nil, fmt.Errorf("failed to record reversal: %w", err)
	}
	return created, nil
}

// Transaction returns a transaction by identifier
func (s *FundsService) Transaction(ctx context.Context, id int64) (*bank.Transaction, error) {
	return s.transactions.FindByID(ctx, id)
}

// AccountTransactions returns every transaction referencing the account as
// source or destination, in creation order.
func (s *FundsService) AccountTransactions(ctx context.Context, accountNumber string) ([]bank.Transaction, error) {
	return s.transactions.FindAllBy(ctx, func(t bank.Transaction) bool {
		return t.SourceAccount == accountNumber || t.DestinationAccount == accountNumber
	})
}

// record creates the transaction entry for a completed fund movement
func (s *FundsService) record(ctx context.Context, source, destination string, kind bank.TransactionKind, amount decimal.Decimal, description string) (*bank.Transaction, error) {
	tx, err := bank.NewTransaction(source, destination, kind, amount, description)
	if err != nil {
		return nil, err
	}
	created, err := s.transactions.Create(ctx, tx, bank.TransactionCreated)
	if err != nil {
		return nil, fmt.Errorf("failed to record transaction: %w", err)
	}
	return created, nil
}

// creditDestination applies the credit leg of a transfer
func (s *FundsService) creditDestination(ctx context.Context, account *bank.Account, amount decimal.Decimal) error {
	if err := account.Credit(amount); err != nil {
		return err
	}
	if _, err := s.accounts.Update(ctx, account, bank.AccountTransferred); err != nil {
		return fmt.Errorf("failed to save destination account: %w", err)
	}
	return nil
}

// compensateDebit restores the source balance after a failed credit leg.
// The source lock is still held, so the reload-credit-save sequence cannot
// race another movement on the same account.
func (s *FundsService) compensateDebit(ctx context.Context, source string, amount decimal.Decimal) {
	account, err := s.accounts.FindByID(ctx, source)
	if err == nil {
		if err = account.Credit(amount); err == nil {
			_, err = s.accounts.Update(ctx, account, bank.AccountTransferred)
		}
	}
	if err != nil {
		s.logger.Error("transfer compensation failed, source debited without credit",
			zap.String("source", source),
			zap.String("amount", amount.String()),
			zap.Error(err),
		)
	}
}
