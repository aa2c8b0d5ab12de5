package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"gstbook/internal/config"
	"gstbook/internal/domain"
)

const (
	ContextKeyGSTIN       = "gstin"
	ContextKeyLegalName   = "legal_name"
	ContextKeyTradeName   = "trade_name"
	ContextKeyNotifyEmail = "notify_email"
)

// Claims are the registration claims carried by tokens from the identity
// provider. Each token is scoped to exactly one GSTIN.
type Claims struct {
	GSTIN       string `json:"gstin"`
	LegalName   string `json:"legal_name"`
	TradeName   string `json:"trade_name"`
	NotifyEmail string `json:"notify_email"`
	jwt.RegisteredClaims
}

// AuthMiddleware returns Gin middleware that validates JWT tokens and
// injects the registration context.
func AuthMiddleware(cfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "missing or invalid authorization header"},
			})
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(cfg.Secret), nil
		}, jwt.WithIssuer(cfg.Issuer))
		if err != nil || !token.Valid || claims.GSTIN == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   gin.H{"code": "UNAUTHORIZED", "message": "invalid or expired token"},
			})
			return
		}

		c.Set(ContextKeyGSTIN, claims.GSTIN)
		c.Set(ContextKeyLegalName, claims.LegalName)
		c.Set(ContextKeyTradeName, claims.TradeName)
		c.Set(ContextKeyNotifyEmail, claims.NotifyEmail)
		c.Next()
	}
}

// GetGSTIN extracts the authenticated GSTIN from the Gin context.
func GetGSTIN(c *gin.Context) (string, error) {
	val, exists := c.Get(ContextKeyGSTIN)
	if !exists {
		return "", domain.ErrUnauthorized
	}
	return val.(string), nil
}

// GetLegalName extracts the registered legal name from the Gin context.
func GetLegalName(c *gin.Context) string {
	val, exists := c.Get(ContextKeyLegalName)
	if !exists {
		return ""
	}
	return val.(string)
}

// GetTradeName extracts the registered trade name from the Gin context.
func GetTradeName(c *gin.Context) string {
	val, exists := c.Get(ContextKeyTradeName)
	if !exists {
		return ""
	}
	return val.(string)
}

// GetNotifyEmail extracts the acknowledgement email from the Gin context.
func GetNotifyEmail(c *gin.Context) string {
	val, exists := c.Get(ContextKeyNotifyEmail)
	if !exists {
		return ""
	}
	return val.(string)
}
