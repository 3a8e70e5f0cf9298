package bank

import (
	"time"

	"github.com/gerSanzag/mibanco/internal/domain/shared"
)

// CardType classifies payment cards
type CardType string

const (
	CardTypeDebit  CardType = "debit"
	CardTypeCredit CardType = "credit"
)

// IsValid checks whether the card type is one of the known values
func (t CardType) IsValid() bool {
	return t == CardTypeDebit || t == CardTypeCredit
}

// CardNumberDigits is the width of a generated card number
const CardNumberDigits = 16

// Card is a payment card linked to an account. The 16-digit number is the
// card's identifier, generated by the card store's identifier strategy.
type Card struct {
	Number         string    `json:"number"`
	HolderID       int64     `json:"holder_id"`
	AccountNumber  string    `json:"account_number"`
	Type           CardType  `json:"type"`
	CreatedAt      time.Time `json:"created_at"`
	ExpirationDate time.Time `json:"expiration_date"`
	Active         bool      `json:"active"`
}

// NewCard creates a new active card for a client account.
// Cards expire five years after issuance.
func NewCard(holderID int64, accountNumber string, cardType CardType) (*Card, error) {
	if holderID == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "Card holder is required")
	}
	if accountNumber == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Card account number is required")
	}
	if !cardType.IsValid() {
		return nil, shared.NewDomainError("INVALID_INPUT", "Unknown card type: "+string(cardType))
	}
	now := time.Now()
	return &Card{
		HolderID:       holderID,
		AccountNumber:  accountNumber,
		Type:           cardType,
		CreatedAt:      now,
		ExpirationDate: now.AddDate(5, 0, 0),
		Active:         true,
	}, nil
}

// IsExpired reports whether the card is past its expiration date
func (c *Card) IsExpired(at time.Time) bool {
	return at.After(c.ExpirationDate)
}
