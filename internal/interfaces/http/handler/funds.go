package handler

import (
	bankapp "github.com/gerSanzag/mibanco/internal/application/bank"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// FundsHandler handles fund movement endpoints
type FundsHandler struct {
	BaseHandler
	fundsService *bankapp.FundsService
}

// NewFundsHandler creates a new FundsHandler
func NewFundsHandler(fundsService *bankapp.FundsService) *FundsHandler {
	return &FundsHandler{
		fundsService: fundsService,
	}
}

// MovementRequest represents a deposit or withdrawal request
type MovementRequest struct {
	AccountNumber string          `json:"account_number" binding:"required,acctnumber"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Description   string          `json:"description" binding:"max=200"`
}

// TransferRequest represents a transfer between two accounts
type TransferRequest struct {
	SourceAccount      string          `json:"source_account" binding:"required,acctnumber"`
	DestinationAccount string          `json:"destination_account" binding:"required,acctnumber,nefield=SourceAccount"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	Description        string          `json:"description" binding:"max=200"`
}

// Deposit credits an account
func (h *FundsHandler) Deposit(c *gin.Context) {
	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	tx, err := h.fundsService.Deposit(c.Request.Context(), req.AccountNumber, req.Amount, req.Description)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tx)
}

// Withdraw debits an account
func (h *FundsHandler) Withdraw(c *gin.Context) {
	var req MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	tx, err := h.fundsService.Withdraw(c.Request.Context(), req.AccountNumber, req.Amount, req.Description)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tx)
}

// Transfer moves funds between two accounts
func (h *FundsHandler) Transfer(c *gin.Context) {
	var req TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}
	tx, err := h.fundsService.Transfer(c.Request.Context(), req.SourceAccount, req.DestinationAccount, req.Amount, req.Description)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tx)
}

// Reverse records the inverse of an existing transaction
func (h *FundsHandler) Reverse(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}
	tx, err := h.fundsService.Reverse(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, tx)
}

// GetTransaction returns one transaction by id
func (h *FundsHandler) GetTransaction(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid transaction ID")
		return
	}
	tx, err := h.fundsService.Transaction(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, tx)
}

// AccountTransactions returns the transactions touching one account
func (h *FundsHandler) AccountTransactions(c *gin.Context) {
	txs, err := h.fundsService.AccountTransactions(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, txs)
}

// RegisterRoutes registers all fund movement routes
func (h *FundsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	funds := rg.Group("/funds")
	{
		funds.POST("/deposit", h.Deposit)
		funds.POST("/withdraw", h.Withdraw)
		funds.POST("/transfer", h.Transfer)
	}

	transactions := rg.Group("/transactions")
	{
		transactions.GET("/:id", h.GetTransaction)
		transactions.POST("/:id/reverse", h.Reverse)
	}

	rg.GET("/accounts/:number/transactions", h.AccountTransactions)
}
