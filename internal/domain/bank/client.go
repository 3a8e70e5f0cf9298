package bank

import (
	"strings"
	"time"

	"github.com/gerSanzag/mibanco/internal/domain/shared"
)

// Client represents a bank client (the holder of accounts and cards).
// Clients are identified by a process-wide numeric sequence.
type Client struct {
	ID        int64      `json:"id"`
	FirstName string     `json:"first_name"`
	LastName  string     `json:"last_name"`
	DNI       string     `json:"dni"`
	Email     string     `json:"email"`
	Phone     string     `json:"phone"`
	Address   string     `json:"address"`
	BirthDate *time.Time `json:"birth_date,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}

// NewClient creates a new client with the required identity fields.
// The numeric ID is assigned later by the client store.
func NewClient(firstName, lastName, dni, email string) (*Client, error) {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	dni = strings.TrimSpace(dni)
	if firstName == "" || lastName == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client name cannot be empty")
	}
	if dni == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "Client DNI cannot be empty")
	}
	return &Client{
		FirstName: firstName,
		LastName:  lastName,
		DNI:       dni,
		Email:     strings.TrimSpace(email),
		CreatedAt: time.Now(),
	}, nil
}

// FullName returns the display name of the client
func (c *Client) FullName() string {
	return c.FirstName + " " + c.LastName
}

// WithPhone sets the contact phone
func (c *Client) WithPhone(phone string) *Client {
	c.Phone = phone
	return c
}

// WithAddress sets the postal address
func (c *Client) WithAddress(address string) *Client {
	c.Address = address
	return c
}

// WithBirthDate sets the birth date
func (c *Client) WithBirthDate(date time.Time) *Client {
	c.BirthDate = &date
	return c
}
