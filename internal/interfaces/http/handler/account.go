package handler

import (
	"strconv"

	bankapp "github.com/gerSanzag/mibanco/internal/application/bank"
	"github.com/gerSanzag/mibanco/internal/domain/bank"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AccountHandler handles account-related API endpoints
type AccountHandler struct {
	BaseHandler
	accountService *bankapp.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *bankapp.AccountService) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
	}
}

// OpenAccountRequest represents a request to open an account
type OpenAccountRequest struct {
	HolderID       int64           `json:"holder_id" binding:"required"`
	Type           string          `json:"type" binding:"required,oneof=savings checking fixed_term"`
	InitialBalance decimal.Decimal `json:"initial_balance"`
	Number         string          `json:"number" binding:"omitempty,acctnumber"`
}

// Open creates a new account for an existing client
func (h *AccountHandler) Open(c *gin.Context) {
	var req OpenAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.Open(c.Request.Context(), bankapp.OpenAccountRequest{
		HolderID:       req.HolderID,
		Type:           bank.AccountType(req.Type),
		InitialBalance: req.InitialBalance,
		Number:         req.Number,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, account)
}

// Get returns one account by number
func (h *AccountHandler) Get(c *gin.Context) {
	account, err := h.accountService.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// List returns all live accounts, optionally filtered by holder
func (h *AccountHandler) List(c *gin.Context) {
	ctx := c.Request.Context()
	if holder := c.Query("holder_id"); holder != "" {
		holderID, err := strconv.ParseInt(holder, 10, 64)
		if err != nil {
			h.BadRequest(c, "Invalid holder ID")
			return
		}
		accounts, err := h.accountService.ListByHolder(ctx, holderID)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Success(c, accounts)
		return
	}

	accounts, err := h.accountService.List(ctx)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, accounts)
}

// Close soft-deletes an account with zero balance
func (h *AccountHandler) Close(c *gin.Context) {
	account, err := h.accountService.Close(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// Restore brings a closed account back
func (h *AccountHandler) Restore(c *gin.Context) {
	account, err := h.accountService.Restore(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, account)
}

// ListDeleted returns the closed accounts
func (h *AccountHandler) ListDeleted(c *gin.Context) {
	accounts, err := h.accountService.ListDeleted(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, accounts)
}

// RegisterRoutes registers all account routes
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.List)
		accounts.POST("", h.Open)
		accounts.GET("/deleted", h.ListDeleted)
		accounts.GET("/:number", h.Get)
		accounts.DELETE("/:number", h.Close)
		accounts.POST("/:number/restore", h.Restore)
	}
}
