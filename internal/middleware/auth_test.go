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

	"gstbook/internal/config"
)

var testJWT = config.JWTConfig{Secret: "test-secret", Issuer: "gstbook"}

func signToken(t *testing.T, claims Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testJWT.Secret))
	require.NoError(t, err)
	return signed
}

func authRouter() (*gin.Engine, *Claims) {
	gin.SetMode(gin.TestMode)
	seen := &Claims{}
	r := gin.New()
	r.Use(AuthMiddleware(testJWT))
	r.GET("/probe", func(c *gin.Context) {
		seen.GSTIN, _ = GetGSTIN(c)
		seen.LegalName = GetLegalName(c)
		seen.NotifyEmail = GetNotifyEmail(c)
		c.Status(http.StatusOK)
	})
	return r, seen
}

func TestAuthMiddlewareValidToken(t *testing.T) {
	r, seen := authRouter()

	token := signToken(t, Claims{
		GSTIN:       "29ABCDE1234F1Z5",
		LegalName:   "Acme Traders",
		NotifyEmail: "accounts@acme.example",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testJWT.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "29ABCDE1234F1Z5", seen.GSTIN)
	assert.Equal(t, "Acme Traders", seen.LegalName)
	assert.Equal(t, "accounts@acme.example", seen.NotifyEmail)
}

func TestAuthMiddlewareMissingHeader(t *testing.T) {
	r, _ := authRouter()

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsExpiredToken(t *testing.T) {
	r, _ := authRouter()

	token := signToken(t, Claims{
		GSTIN: "29ABCDE1234F1Z5",
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testJWT.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddlewareRejectsTokenWithoutGSTIN(t *testing.T) {
	r, _ := authRouter()

	token := signToken(t, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    testJWT.Issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
