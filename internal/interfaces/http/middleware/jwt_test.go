package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gerSanzag/mibanco/internal/infrastructure/auth"
	"github.com/gerSanzag/mibanco/internal/infrastructure/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine(jwtService *auth.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(JWTAuth(jwtService))
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/api/v1/clients", func(c *gin.Context) {
		c.String(http.StatusOK, GetJWTUsername(c))
	})
	return engine
}

func testJWTService() *auth.JWTService {
	return auth.NewJWTService(config.JWTConfig{
		Secret:          "test-secret",
		TokenExpiration: time.Hour,
	})
}

func TestJWTAuth(t *testing.T) {
	jwtService := testJWTService()
	engine := newTestEngine(jwtService)

	t.Run("skip paths pass without a token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("protected paths reject a missing header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("protected paths reject a malformed header", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
		req.Header.Set(AuthHeaderKey, "Basic abc")
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("protected paths reject an invalid token", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+"garbage")
		engine.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("valid token passes and exposes the username", func(t *testing.T) {
		token, _, err := jwtService.GenerateToken("admin")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "admin", rec.Body.String())
	})
}

type recordedUser struct {
	user string
}

func (r *recordedUser) SetCurrentUser(user string) { r.user = user }

func TestAuditUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	jwtService := testJWTService()
	recorder := &recordedUser{}

	engine := gin.New()
	engine.Use(JWTAuth(jwtService))
	engine.Use(AuditUser(recorder))
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	engine.GET("/api/v1/clients", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("propagates the authenticated username", func(t *testing.T) {
		token, _, err := jwtService.GenerateToken("operator")
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/clients", nil)
		req.Header.Set(AuthHeaderKey, BearerPrefix+token)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, "operator", recorder.user)
	})

	t.Run("leaves the identity alone on unauthenticated paths", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		engine.ServeHTTP(rec, req)

		assert.Equal(t, "operator", recorder.user)
	})
}

func TestSetupValidator(t *testing.T) {
	require.NoError(t, SetupValidator())

	gin.SetMode(gin.TestMode)
	engine := gin.New()

	type payload struct {
		Account string `json:"account" binding:"required,acctnumber"`
		Card    string `json:"card" binding:"omitempty,cardnumber"`
	}
	engine.POST("/", func(c *gin.Context) {
		var p payload
		if err := c.ShouldBindJSON(&p); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		c.Status(http.StatusOK)
	})

	post := func(body string) int {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		engine.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusOK, post(`{"account":"ES00000000000000000001"}`))
	assert.Equal(t, http.StatusOK, post(`{"account":"ES00000000000000000001","card":"1234567890123456"}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"account":"XX00000000000000000001"}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"account":"ES123"}`))
	assert.Equal(t, http.StatusBadRequest, post(`{"account":"ES00000000000000000001","card":"123"}`))
}
