package persistence

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/gerSanzag/mibanco/internal/domain/bank"
	"go.uber.org/zap"
)

// Compile-time checks that the generic store satisfies the domain contracts
var (
	_ bank.ClientRepository      = (*Store[bank.Client, int64, bank.ClientOperation])(nil)
	_ bank.AccountRepository     = (*Store[bank.Account, string, bank.AccountOperation])(nil)
	_ bank.CardRepository        = (*Store[bank.Card, string, bank.CardOperation])(nil)
	_ bank.TransactionRepository = (*Store[bank.Transaction, int64, bank.TransactionOperation])(nil)
)

// RegistryConfig wires the repository registry
type RegistryConfig struct {
	// DataDir holds one snapshot file per entity type. Empty keeps every
	// store in-memory.
	DataDir string
	// FlushThreshold applies to every store; zero selects the default
	FlushThreshold int
	Logger         *zap.Logger
}

// Registry supplies one configured entity store per entity type. It is
// built once by the composition root and passed down; there is no global
// instance and no lazy singleton construction.
type Registry struct {
	Clients      *Store[bank.Client, int64, bank.ClientOperation]
	Accounts     *Store[bank.Account, string, bank.AccountOperation]
	Cards        *Store[bank.Card, string, bank.CardOperation]
	Transactions *Store[bank.Transaction, int64, bank.TransactionOperation]
}

// NewRegistry builds the four entity stores of the bank domain with their
// identifier strategies and backing files.
func NewRegistry(cfg RegistryConfig) *Registry {
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	if cfg.DataDir != "" {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			cfg.Logger.Error("data directory not writable, stores run in-memory",
				zap.String("dir", cfg.DataDir),
				zap.Error(err),
			)
			cfg.DataDir = ""
		}
	}
	file := func(name string) string {
		if cfg.DataDir == "" {
			return ""
		}
		return filepath.Join(cfg.DataDir, name)
	}

	return &Registry{
		Clients: NewStore[bank.Client, int64, bank.ClientOperation](Config[bank.Client, int64]{
			Path:       file("clients.json"),
			EntityName: "client",
			IdentityOf: func(c bank.Client) int64 { return c.ID },
			Strategy: NewSequence(
				func(c *bank.Client) int64 { return c.ID },
				func(c *bank.Client, id int64) { c.ID = id },
			),
			FlushThreshold: cfg.FlushThreshold,
			Logger:         cfg.Logger,
		}),
		Accounts: NewStore[bank.Account, string, bank.AccountOperation](Config[bank.Account, string]{
			Path:       file("accounts.json"),
			EntityName: "account",
			IdentityOf: func(a bank.Account) string { return a.Number },
			Strategy: NewFormattedRandom(
				bank.AccountNumberPrefix, bank.AccountNumberDigits,
				func(a *bank.Account) string { return a.Number },
				func(a *bank.Account, n string) { a.Number = n },
			),
			FlushThreshold: cfg.FlushThreshold,
			Logger:         cfg.Logger,
		}),
		Cards: NewStore[bank.Card, string, bank.CardOperation](Config[bank.Card, string]{
			Path:       file("cards.json"),
			EntityName: "card",
			IdentityOf: func(c bank.Card) string { return c.Number },
			Strategy: NewFormattedRandom(
				"", bank.CardNumberDigits,
				func(c *bank.Card) string { return c.Number },
				func(c *bank.Card, n string) { c.Number = n },
			),
			FlushThreshold: cfg.FlushThreshold,
			Logger:         cfg.Logger,
		}),
		Transactions: NewStore[bank.Transaction, int64, bank.TransactionOperation](Config[bank.Transaction, int64]{
			Path:       file("transactions.json"),
			EntityName: "transaction",
			IdentityOf: func(t bank.Transaction) int64 { return t.ID },
			Strategy: NewSequence(
				func(t *bank.Transaction) int64 { return t.ID },
				func(t *bank.Transaction, id int64) { t.ID = id },
			),
			FlushThreshold: cfg.FlushThreshold,
			Logger:         cfg.Logger,
		}),
	}
}

// SetCurrentUser attaches the user identity to the audit records of every
// store. Session-scoped, typically called after login.
func (r *Registry) SetCurrentUser(user string) {
	r.Clients.SetCurrentUser(user)
	r.Accounts.SetCurrentUser(user)
	r.Cards.SetCurrentUser(user)
	r.Transactions.SetCurrentUser(user)
}

// FlushAll forces a snapshot write on every store, collecting errors.
// Used at shutdown for durability outside the mutation threshold.
func (r *Registry) FlushAll(ctx context.Context) error {
	return errors.Join(
		r.Clients.Flush(ctx),
		r.Accounts.Flush(ctx),
		r.Cards.Flush(ctx),
		r.Transactions.Flush(ctx),
	)
}
