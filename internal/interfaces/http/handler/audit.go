package handler

import (
	"strconv"
	"time"

	"github.com/gerSanzag/mibanco/internal/domain/audit"
	"github.com/gerSanzag/mibanco/internal/infrastructure/persistence"
	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the per-store audit trails
type AuditHandler struct {
	BaseHandler
	registry *persistence.Registry
}

// NewAuditHandler creates a new AuditHandler
func NewAuditHandler(registry *persistence.Registry) *AuditHandler {
	return &AuditHandler{
		registry: registry,
	}
}

// Clients lists audit records of the client store
func (h *AuditHandler) Clients(c *gin.Context) {
	queryLog(h, c, h.registry.Clients.Audit())
}

// Accounts lists audit records of the account store
func (h *AuditHandler) Accounts(c *gin.Context) {
	queryLog(h, c, h.registry.Accounts.Audit())
}

// Cards lists audit records of the card store
func (h *AuditHandler) Cards(c *gin.Context) {
	queryLog(h, c, h.registry.Cards.Audit())
}

// Transactions lists audit records of the transaction store
func (h *AuditHandler) Transactions(c *gin.Context) {
	queryLog(h, c, h.registry.Transactions.Audit())
}

// ClientHistory returns the audit history of one client
func (h *AuditHandler) ClientHistory(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}
	records, err := h.registry.Clients.Audit().History(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// AccountHistory returns the audit history of one account
func (h *AuditHandler) AccountHistory(c *gin.Context) {
	records, err := h.registry.Accounts.Audit().History(c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// CardHistory returns the audit history of one card
func (h *AuditHandler) CardHistory(c *gin.Context) {
	records, err := h.registry.Cards.Audit().History(c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// TransactionHistory returns the audit history of one transaction
func (h *AuditHandler) TransactionHistory(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}
	records, err := h.registry.Transactions.Audit().History(id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, records)
}

// queryLog applies the common audit query parameters to one store's log.
// Filters are mutually exclusive; date range wins over user, user over
// kind, and no filter lists the whole trail.
func queryLog[T any, ID comparable, K ~string](h *AuditHandler, c *gin.Context, log *audit.Log[T, ID, K]) {
	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" || toStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		if err != nil {
			h.BadRequest(c, "Invalid 'from' timestamp, want RFC 3339")
			return
		}
		to, err := time.Parse(time.RFC3339, toStr)
		if err != nil {
			h.BadRequest(c, "Invalid 'to' timestamp, want RFC 3339")
			return
		}
		records, err := log.FindByDateRange(&from, &to)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, records)
		return
	}

	if user := c.Query("user"); user != "" {
		records, err := log.FindByUser(user)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, records)
		return
	}

	if kind := c.Query("kind"); kind != "" {
		records, err := log.FindByKind(K(kind))
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, records)
		return
	}

	h.Success(c, log.Records())
}

// RegisterRoutes registers all audit trail routes
func (h *AuditHandler) RegisterRoutes(rg *gin.RouterGroup) {
	trail := rg.Group("/audit")
	{
		trail.GET("/clients", h.Clients)
		trail.GET("/clients/:id", h.ClientHistory)
		trail.GET("/accounts", h.Accounts)
		trail.GET("/accounts/:number", h.AccountHistory)
		trail.GET("/cards", h.Cards)
		trail.GET("/cards/:number", h.CardHistory)
		trail.GET("/transactions", h.Transactions)
		trail.GET("/transactions/:id", h.TransactionHistory)
	}
}
