package bank

import (
	"time"

	"github.com/gerSanzag/mibanco/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TransactionKind classifies fund movements
type TransactionKind string

const (
	TransactionDeposit     TransactionKind = "deposit"
	TransactionWithdrawal  TransactionKind = "withdrawal"
	TransactionTransferOut TransactionKind = "transfer_out"
	TransactionTransferIn  TransactionKind = "transfer_in"
	TransactionFee         TransactionKind = "fee"
	TransactionInterest    TransactionKind = "interest"
)

// IsValid checks whether the kind is one of the known values
func (k TransactionKind) IsValid() bool {
	switch k {
	case TransactionDeposit, TransactionWithdrawal,
		TransactionTransferOut, TransactionTransferIn,
		TransactionFee, TransactionInterest:
		return true
	}
	return false
}

// kindInversion maps each transaction kind to its opposite for reversals.
// Kinds without a natural opposite map to themselves.
var kindInversion = map[TransactionKind]TransactionKind{
	TransactionDeposit:     TransactionWithdrawal,
	TransactionWithdrawal:  TransactionDeposit,
	TransactionTransferOut: TransactionTransferIn,
	TransactionTransferIn:  TransactionTransferOut,
}

// Inverse returns the opposite kind for reversal purposes
func (k TransactionKind) Inverse() TransactionKind {
	if inv, ok := kindInversion[k]; ok {
		return inv
	}
	return k
}

// ReversalPrefix marks the description of a reversal transaction
const ReversalPrefix = "REVERSAL: "

// Transaction records a single fund movement. Transactions are created
// through the transaction store and never mutated afterwards; a reversal is
// a new transaction with the inverse kind and swapped accounts, linked to
// the original only through its description.
type Transaction struct {
	ID                 int64           `json:"id"`
	SourceAccount      string          `json:"source_account"`
	DestinationAccount string          `json:"destination_account,omitempty"`
	Kind               TransactionKind `json:"kind"`
	Amount             decimal.Decimal `json:"amount"`
	Timestamp          time.Time       `json:"timestamp"`
	Description        string          `json:"description"`
}

// NewTransaction creates a transaction record for a fund movement.
// The numeric ID is assigned by the transaction store.
func NewTransaction(source, destination string, kind TransactionKind, amount decimal.Decimal, description string) (*Transaction, error) {
	if source == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Transaction source account is required")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown transaction kind: "+string(kind))
	}
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	return &Transaction{
		SourceAccount:      source,
		DestinationAccount: destination,
		Kind:               kind,
		Amount:             amount,
		Timestamp:          time.Now(),
		Description:        description,
	}, nil
}

// Reversed builds the compensating transaction for this one: inverse kind,
// swapped source and destination, same amount, marked description.
// A reversal of a reversal therefore restores the original kind.
func (t *Transaction) Reversed() (*Transaction, error) {
	source := t.DestinationAccount
	destination := t.SourceAccount
	if source == "" {
		// Single-account movements keep their account as the source.
		source = t.SourceAccount
		destination = ""
	}
	return NewTransaction(source, destination, t.Kind.Inverse(), t.Amount, ReversalPrefix+t.Description)
}
