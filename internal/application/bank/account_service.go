package bank

import (
	"context"

	"github.com/gerSanzag/mibanco/internal/domain/bank"
	"github.com/gerSanzag/mibanco/internal/domain/shared"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AccountService handles account lifecycle: opening, lookup, closing and
// restoration. Balance movements are the FundsService's job.
type AccountService struct {
	accounts bank.AccountRepository
	clients  bank.ClientRepository
	logger   *zap.Logger
}

// NewAccountService creates a new AccountService
func NewAccountService(accounts bank.AccountRepository, clients bank.ClientRepository, logger *zap.Logger) *AccountService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AccountService{
		accounts: accounts,
		clients:  clients,
		logger:   logger,
	}
}

// OpenAccountRequest carries the fields for opening an account
type OpenAccountRequest struct {
	HolderID       int64
	Type           bank.AccountType
	InitialBalance decimal.Decimal
	// Number optionally requests a specific account number; it is kept when
	// unused and regenerated when already taken.
	Number string
}

// Open creates a new account for an existing client
func (s *AccountService) Open(ctx context.Context, req OpenAccountRequest) (*bank.Account, error) {
	if _, err := s.clients.FindByID(ctx, req.HolderID); err != nil {
		return nil, shared.NewDomainError("HOLDER_NOT_FOUND", "Account holder does not exist")
	}

	account, err := bank.NewAccount(req.HolderID, req.Type, req.InitialBalance)
	if err != nil {
		return nil, err
	}
	account.Number = req.Number

	created, err := s.accounts.Create(ctx, account, bank.AccountCreated)
	if err != nil {
		return nil, err
	}
	s.logger.Info("account opened",
		zap.String("number", created.Number),
		zap.Int64("holder_id", created.HolderID),
		zap.String("type", string(created.Type)),
	)
	return created, nil
}

// Get returns an account by number
func (s *AccountService) Get(ctx context.Context, number string) (*bank.Account, error) {
	return s.accounts.FindByID(ctx, number)
}

// List returns all live accounts
func (s *AccountService) List(ctx context.Context) ([]bank.Account, error) {
	return s.accounts.FindAll(ctx)
}

// ListByHolder returns the live accounts of one client
func (s *AccountService) ListByHolder(ctx context.Context, holderID int64) ([]bank.Account, error) {
	return s.accounts.FindAllBy(ctx, func(a bank.Account) bool {
		return a.HolderID == holderID
	})
}

// Close soft-deletes an account. The balance must be zero first.
func (s *AccountService) Close(ctx context.Context, number string) (*bank.Account, error) {
	account, err := s.accounts.FindByID(ctx, number)
	if err != nil {
		return nil, err
	}
	if !account.Balance.IsZero() {
		return nil, shared.ErrAccountNotEmpty
	}
	return s.accounts.SoftDelete(ctx, number, bank.AccountDeleted)
}

// Restore brings a closed account back with its balance intact
func (s *AccountService) Restore(ctx context.Context, number string) (*bank.Account, error) {
	return s.accounts.Restore(ctx, number, bank.AccountRestored)
}

// ListDeleted returns the closed accounts
func (s *AccountService) ListDeleted(ctx context.Context) ([]bank.Account, error) {
	return s.accounts.ListDeleted(ctx)
}
