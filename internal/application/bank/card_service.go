package bank

import (
	"context"

	"github.com/gerSanzag/mibanco/internal/domain/bank"
	"github.com/gerSanzag/mibanco/internal/domain/shared"
	"go.uber.org/zap"
)

// CardService handles card issuance, lookup and cancellation
type CardService struct {
	cards    bank.CardRepository
	accounts bank.AccountRepository
	logger   *zap.Logger
}

// NewCardService creates a new CardService
func NewCardService(cards bank.CardRepository, accounts bank.AccountRepository, logger *zap.Logger) *CardService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CardService{
		cards:    cards,
		accounts: accounts,
		logger:   logger,
	}
}

// IssueCardRequest carries the fields for issuing a card
type IssueCardRequest struct {
	HolderID      int64
	AccountNumber string
	Type          bank.CardType
}

// Issue creates a new card linked to an account of the same holder
func (s *CardService) Issue(ctx context.Context, req IssueCardRequest) (*bank.Card, error) {
	account, err := s.accounts.FindByID(ctx, req.AccountNumber)
	if err != nil {
		return nil, shared.NewDomainError("ACCOUNT_NOT_FOUND", "Card account does not exist")
	}
	if account.HolderID != req.HolderID {
		return nil, shared.NewDomainError("HOLDER_MISMATCH", "Account belongs to a different client")
	}

	card, err := bank.NewCard(req.HolderID, req.AccountNumber, req.Type)
	if err != nil {
		return nil, err
	}
	created, err := s.cards.Create(ctx, card, bank.CardCreated)
	if err != nil {
		return nil, err
	}
	s.logger.Info("card issued",
		zap.String("number", masked(created.Number)),
		zap.String("account", created.AccountNumber),
	)
	return created, nil
}

// Get returns a card by number
func (s *CardService) Get(ctx context.Context, number string) (*bank.Card, error) {
	return s.cards.FindByID(ctx, number)
}

// ListByAccount returns the live cards linked to an account
func (s *CardService) ListByAccount(ctx context.Context, accountNumber string) ([]bank.Card, error) {
	return s.cards.FindAllBy(ctx, func(c bank.Card) bool {
		return c.AccountNumber == accountNumber
	})
}

// Cancel soft-deletes a card
func (s *CardService) Cancel(ctx context.Context, number string) (*bank.Card, error) {
	return s.cards.SoftDelete(ctx, number, bank.CardDeleted)
}

// Restore brings a cancelled card back
func (s *CardService) Restore(ctx context.Context, number string) (*bank.Card, error) {
	return s.cards.Restore(ctx, number, bank.CardRestored)
}

// ListDeleted returns the cancelled cards
func (s *CardService) ListDeleted(ctx context.Context) ([]bank.Card, error) {
	return s.cards.ListDeleted(ctx)
}

// masked hides all but the last four digits of a card number in log output
func masked(number string) string {
	if len(number) <= 4 {
		return number
	}
	return "************" + number[len(number)-4:]
}
