package handler

import (
	bankapp "github.com/gerSanzag/mibanco/internal/application/bank"
	"github.com/gerSanzag/mibanco/internal/domain/bank"
	"github.com/gin-gonic/gin"
)

// CardHandler handles card-related API endpoints
type CardHandler struct {
	BaseHandler
	cardService *bankapp.CardService
}

// NewCardHandler creates a new CardHandler
func NewCardHandler(cardService *bankapp.CardService) *CardHandler {
	return &CardHandler{
		cardService: cardService,
	}
}

// IssueCardRequest represents a request to issue a card
type IssueCardRequest struct {
	HolderID      int64  `json:"holder_id" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required,acctnumber"`
	Type          string `json:"type" binding:"required,oneof=debit credit"`
}

// Issue creates a new card linked to an account
func (h *CardHandler) Issue(c *gin.Context) {
	var req IssueCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	card, err := h.cardService.Issue(c.Request.Context(), bankapp.IssueCardRequest{
		HolderID:      req.HolderID,
		AccountNumber: req.AccountNumber,
		Type:          bank.CardType(req.Type),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, card)
}

// Get returns one card by number
func (h *CardHandler) Get(c *gin.Context) {
	card, err := h.cardService.Get(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// ListByAccount returns the live cards of one account
func (h *CardHandler) ListByAccount(c *gin.Context) {
	cards, err := h.cardService.ListByAccount(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cards)
}

// Cancel soft-deletes a card
func (h *CardHandler) Cancel(c *gin.Context) {
	card, err := h.cardService.Cancel(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// Restore brings a cancelled card back
func (h *CardHandler) Restore(c *gin.Context) {
	card, err := h.cardService.Restore(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, card)
}

// ListDeleted returns the cancelled cards
func (h *CardHandler) ListDeleted(c *gin.Context) {
	cards, err := h.cardService.ListDeleted(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, cards)
}

// RegisterRoutes registers all card routes
func (h *CardHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cards := rg.Group("/cards")
	{
		cards.POST("", h.Issue)
		cards.GET("/deleted", h.ListDeleted)
		cards.GET("/:number", h.Get)
		cards.DELETE("/:number", h.Cancel)
		cards.POST("/:number/restore", h.Restore)
	}

	rg.GET("/accounts/:number/cards", h.ListByAccount)
}
