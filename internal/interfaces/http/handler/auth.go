package handler

import (
	"net/http"
	"time"

	"github.com/gerSanzag/mibanco/internal/infrastructure/auth"
	"github.com/gerSanzag/mibanco/internal/interfaces/http/dto"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	BaseHandler
	jwtService  *auth.JWTService
	credentials *auth.Credentials
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(jwtService *auth.JWTService, credentials *auth.Credentials) *AuthHandler {
	return &AuthHandler{
		jwtService:  jwtService,
		credentials: credentials,
	}
}

// LoginRequest represents a login request
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the issued token
type LoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Username  string    `json:"username"`
}

// Login validates the credentials and issues a JWT
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	if err := h.credentials.Check(req.Username, req.Password); err != nil {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse("UNAUTHORIZED", "Invalid username or password"))
		return
	}

	token, expiresAt, err := h.jwtService.GenerateToken(req.Username)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		Username:  req.Username,
	})
}

// RegisterRoutes registers the authentication routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sessions := rg.Group("/auth")
	{
		sessions.POST("/login", h.Login)
	}
}
