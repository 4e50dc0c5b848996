package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bschool-portal/config"
)

func init() {
	gin.SetMode(gin.TestMode)
	config.JwtKey = []byte("test-secret")
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(config.JwtKey)
	require.NoError(t, err)
	return token
}

func validToken(t *testing.T) string {
	return signToken(t, jwt.MapClaims{
		"admin_id": "admin-1",
		"exp":      time.Now().Add(time.Hour).Unix(),
	})
}

func TestAuthMiddlewareRejectsMissingToken(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "error")
}

func TestAuthMiddlewareRedirectsHTMLClients(t *testing.T) {
	r := gin.New()
	r.GET("/admin", AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Accept", "text/html")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login", w.Header().Get("Location"))
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	expired := signToken(t, jwt.MapClaims{
		"admin_id": "admin-1",
		"exp":      time.Now().Add(-time.Hour).Unix(),
	})

	r := gin.New()
	r.GET("/admin", AuthMiddleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: expired})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionAdminIDFromBearerHeader(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/admin", nil)
	c.Request.Header.Set("Authorization", "Bearer "+validToken(t))

	adminID, ok := sessionAdminID(c)
	assert.True(t, ok)
	assert.Equal(t, "admin-1", adminID)
}

func TestSessionAdminIDRejectsBadHeaderFormat(t *testing.T) {
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/admin", nil)
	c.Request.Header.Set("Authorization", validToken(t))

	_, ok := sessionAdminID(c)
	assert.False(t, ok)
}

func TestRedirectIfAuthenticatedSendsSessionToAdmin(t *testing.T) {
	r := gin.New()
	r.GET("/admin/login", RedirectIfAuthenticated(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	req.AddCookie(&http.Cookie{Name: "auth_token", Value: validToken(t)})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin", w.Header().Get("Location"))
}

func TestRedirectIfAuthenticatedLetsVisitorsThrough(t *testing.T) {
	r := gin.New()
	r.GET("/admin/login", RedirectIfAuthenticated(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/login", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
