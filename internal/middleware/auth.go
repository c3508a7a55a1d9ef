package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/worklens/worklens/internal/utils"
)

const (
	ContextEmployeeID = "employee_id"
	ContextEmail      = "email"
	ContextIsAdmin    = "is_admin"

	// AdminKeyHeader carries the static management API key.
	AdminKeyHeader = "X-API-Key"
)

// EmployeeAuth requires a valid employee JWT.
func EmployeeAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := parseBearer(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing token"})
			c.Abort()
			return
		}
		c.Set(ContextEmployeeID, claims.EmployeeID)
		c.Set(ContextEmail, claims.Email)
		c.Next()
	}
}

// AdminKey requires the static management API key.
func AdminKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(AdminKeyHeader)
		if key == "" || key != apiKey {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing admin API key"})
			c.Abort()
			return
		}
		c.Set(ContextIsAdmin, true)
		c.Next()
	}
}

// AdminOrEmployee accepts either the admin API key or an employee JWT.
// Handlers can distinguish the two through IsAdmin/GetEmployeeID.
func AdminOrEmployee(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if key := c.GetHeader(AdminKeyHeader); key != "" && key == apiKey {
			c.Set(ContextIsAdmin, true)
			c.Next()
			return
		}
		if claims, ok := parseBearer(c); ok {
			c.Set(ContextEmployeeID, claims.EmployeeID)
			c.Set(ContextEmail, claims.Email)
			c.Next()
			return
		}
		c.JSON(http.StatusUnauthorized, gin.H{"error": "admin API key or employee token required"})
		c.Abort()
	}
}

func parseBearer(c *gin.Context) (*utils.Claims, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return nil, false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}
	claims, err := utils.ParseToken(parts[1])
	if err != nil {
		return nil, false
	}
	return claims, true
}

// GetEmployeeID returns the authenticated employee id, or "" for admin-key
// requests.
func GetEmployeeID(c *gin.Context) string {
	if id, exists := c.Get(ContextEmployeeID); exists {
		return id.(string)
	}
	return ""
}

// GetEmail returns the authenticated employee email.
func GetEmail(c *gin.Context) string {
	if email, exists := c.Get(ContextEmail); exists {
		return email.(string)
	}
	return ""
}

// IsAdmin reports whether the request authenticated with the admin API key.
func IsAdmin(c *gin.Context) bool {
	if v, exists := c.Get(ContextIsAdmin); exists {
		return v.(bool)
	}
	return false
}
