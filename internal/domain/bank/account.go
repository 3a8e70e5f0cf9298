package bank

import (
	"time"

	"github.com/gerSanzag/mibanco/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// AccountType classifies bank accounts
type AccountType string

const (
	AccountTypeSavings   AccountType = "savings"
	AccountTypeChecking  AccountType = "checking"
	AccountTypeFixedTerm AccountType = "fixed_term"
)

// IsValid checks whether the account type is one of the known values
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeChecking, AccountTypeFixedTerm:
		return true
	}
	return false
}

// AccountNumberPrefix is the fixed prefix of generated account numbers
const AccountNumberPrefix = "ES"

// AccountNumberDigits is the width of the digit sequence following the prefix
const AccountNumberDigits = 20

// Account is a bank account owned by a client. The account number doubles
// as its identifier; it is generated (or kept, when the caller supplied an
// unused one) by the account store's identifier strategy.
//
// Balances are mutated only through the fund-movement service, which goes
// through the store's update path so every change is audited.
type Account struct {
	Number         string          `json:"number"`
	HolderID       int64           `json:"holder_id"`
	Type           AccountType     `json:"type"`
	CreatedAt      time.Time       `json:"created_at"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Balance        decimal.Decimal `json:"balance"`
	Active         bool            `json:"active"`
}

// NewAccount creates a new active account for a client with an opening balance.
// The opening balance must not be negative.
func NewAccount(holderID int64, accountType AccountType, initialBalance decimal.Decimal) (*Account, error) {
	if holderID == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Account holder is required")
	}
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown account type: "+string(accountType))
	}
	if initialBalance.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Opening balance cannot be negative")
	}
	return &Account{
		HolderID:       holderID,
		Type:           accountType,
		CreatedAt:      time.Now(),
		InitialBalance: initialBalance,
		Balance:        initialBalance,
		Active:         true,
	}, nil
}

// Activate marks the account as active
func (a *Account) Activate() {
	a.Active = true
}

// Deactivate marks the account as inactive
func (a *Account) Deactivate() {
	a.Active = false
}

// Credit adds a positive amount to the balance
func (a *Account) Credit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	return nil
}

// Debit subtracts a positive amount from the balance.
// Returns ErrInsufficientBalance when the balance would go negative.
func (a *Account) Debit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	if a.Balance.LessThan(amount) {
		return shared.ErrInsufficientBalance
	}
	a.Balance = a.Balance.Sub(amount)
	return nil
}
