package bank

import (
	"context"
	"errors"
	"time"

	"github.com/gerSanzag/mibanco/internal/domain/bank"
	"github.com/gerSanzag/mibanco/internal/domain/shared"
	"go.uber.org/zap"
)

// ClientService handles client lifecycle: registration, lookup, soft
// deletion and restoration.
type ClientService struct {
	clients  bank.ClientRepository
	accounts bank.AccountRepository
	logger   *zap.Logger
}

// NewClientService creates a new ClientService
func NewClientService(clients bank.ClientRepository, accounts bank.AccountRepository, logger *zap.Logger) *ClientService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ClientService{
		clients:  clients,
		accounts: accounts,
		logger:   logger,
	}
}

// CreateClientRequest carries the fields for registering a client
type CreateClientRequest struct {
	FirstName string
	LastName  string
	DNI       string
	Email     string
	Phone     string
	Address   string
	BirthDate *time.Time
}

// Create registers a new client. The DNI must be unique among live clients.
func (s *ClientService) Create(ctx context.Context, req CreateClientRequest) (*bank.Client, error) {
	existing, err := s.clients.FindFirst(ctx, func(c bank.Client) bool {
		return c.DNI == req.DNI
	})
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A client with this DNI already exists")
	}

	client, err := bank.NewClient(req.FirstName, req.LastName, req.DNI, req.Email)
	if err != nil {
		return nil, err
	}
	client.WithPhone(req.Phone).WithAddress(req.Address)
	if req.BirthDate != nil {
		client.WithBirthDate(*req.BirthDate)
	}

	created, err := s.clients.Create(ctx, client, bank.ClientCreated)
	if err != nil {
		return nil, err
	}
	s.logger.Info("client registered",
		zap.Int64("client_id", created.ID),
		zap.String("dni", created.DNI),
	)
	return created, nil
}

// Get returns a client by identifier
func (s *ClientService) Get(ctx context.Context, id int64) (*bank.Client, error) {
	return s.clients.FindByID(ctx, id)
}

// List returns all live clients
func (s *ClientService) List(ctx context.Context) ([]bank.Client, error) {
	return s.clients.FindAll(ctx)
}

// Delete soft-deletes a client. Refused while the client still holds live
// accounts.
func (s *ClientService) Delete(ctx context.Context, id int64) (*bank.Client, error) {
	open, err := s.accounts.FindAllBy(ctx, func(a bank.Account) bool {
		return a.HolderID == id
	})
	if err != nil {
		return nil, err
	}
	if len(open) > 0 {
		return nil, shared.NewDomainError("CLIENT_HAS_ACCOUNTS", "Client still holds open accounts")
	}
	return s.clients.SoftDelete(ctx, id, bank.ClientDeleted)
}

// Restore brings a soft-deleted client back
func (s *ClientService) Restore(ctx context.Context, id int64) (*bank.Client, error) {
	return s.clients.Restore(ctx, id, bank.ClientRestored)
}

// ListDeleted returns the soft-deleted clients
func (s *ClientService) ListDeleted(ctx context.Context) ([]bank.Client, error) {
	return s.clients.ListDeleted(ctx)
}

// Count returns the number of live clients
func (s *ClientService) Count(ctx context.Context) (int64, error) {
	return s.clients.Count(ctx)
}
