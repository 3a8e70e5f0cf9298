package bank

// Operation kinds recorded in the audit trail of each entity store.
// Each entity type carries its own enumeration so audit queries stay typed.

// ClientOperation is an audited operation on the client store
type ClientOperation string

const (
	ClientCreated  ClientOperation = "client_created"
	ClientUpdated  ClientOperation = "client_updated"
	ClientDeleted  ClientOperation = "client_deleted"
	ClientRestored ClientOperation = "client_restored"
)

// AccountOperation is an audited operation on the account store
type AccountOperation string

const (
	AccountCreated     AccountOperation = "account_created"
	AccountUpdated     AccountOperation = "account_updated"
	AccountDeleted     AccountOperation = "account_deleted"
	AccountRestored    AccountOperation = "account_restored"
	AccountDeposited   AccountOperation = "account_deposited"
	AccountWithdrawn   AccountOperation = "account_withdrawn"
	AccountTransferred AccountOperation = "account_transferred"
)

// CardOperation is an audited operation on the card store
type CardOperation string

const (
	CardCreated  CardOperation = "card_created"
	CardUpdated  CardOperation = "card_updated"
	CardDeleted  CardOperation = "card_deleted"
	CardRestored CardOperation = "card_restored"
)

// TransactionOperation is an audited operation on the transaction store
type TransactionOperation string

const (
	TransactionCreated  TransactionOperation = "transaction_created"
	TransactionReversed TransactionOperation = "transaction_reversed"
)
