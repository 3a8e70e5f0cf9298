package handler

import (
	"strconv"
	"time"

	bankapp "github.com/gerSanzag/mibanco/internal/application/bank"
	"github.com/gin-gonic/gin"
)

// ClientHandler handles client-related API endpoints
type ClientHandler struct {
	BaseHandler
	clientService *bankapp.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService *bankapp.ClientService) *ClientHandler {
	return &ClientHandler{
		clientService: clientService,
	}
}

// CreateClientRequest represents a request to register a client
type CreateClientRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	DNI       string `json:"dni" binding:"required,min=1,max=20"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"max=30"`
	Address   string `json:"address" binding:"max=200"`
	BirthDate string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
}

// Create registers a new client
func (h *ClientHandler) Create(c *gin.Context) {
	var req CreateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	appReq := bankapp.CreateClientRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		DNI:       req.DNI,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}
	if req.BirthDate != "" {
		// format already validated by the binding tag
		birthDate, _ := time.Parse("2006-01-02", req.BirthDate)
		appReq.BirthDate = &birthDate
	}

	client, err := h.clientService.Create(c.Request.Context(), appReq)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, client)
}

// Get returns one client by id
func (h *ClientHandler) Get(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}
	client, err := h.clientService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, client)
}

// List returns all live clients
func (h *ClientHandler) List(c *gin.Context) {
	clients, err := h.clientService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, clients)
}

// Delete soft-deletes a client without live accounts
func (h *ClientHandler) Delete(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}
	client, err := h.clientService.Delete(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, client)
}

// Restore brings a soft-deleted client back
func (h *ClientHandler) Restore(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		h.BadRequest(c, "Invalid client ID")
		return
	}
	client, err := h.clientService.Restore(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, client)
}

// ListDeleted returns the soft-deleted clients
func (h *ClientHandler) ListDeleted(c *gin.Context) {
	clients, err := h.clientService.ListDeleted(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, clients)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// RegisterRoutes registers all client routes
func (h *ClientHandler) RegisterRoutes(rg *gin.RouterGroup) {
	clients := rg.Group("/clients")
	{
		clients.GET("", h.List)
		clients.POST("", h.Create)
		clients.GET("/deleted", h.ListDeleted)
		clients.GET("/:id", h.Get)
		clients.DELETE("/:id", h.Delete)
		clients.POST("/:id/restore", h.Restore)
	}
}
