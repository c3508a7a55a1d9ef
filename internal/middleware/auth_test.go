package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/worklens/worklens/internal/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
	utils.SetJWTSecret("test-secret-for-middleware-testing")
}

func employeeRouter() *gin.Engine {
	router := gin.New()
	router.Use(EmployeeAuth())
	router.GET("/protected", func(c *gin.Context) {
		c.JSON(200, gin.H{"employee_id": GetEmployeeID(c), "email": GetEmail(c)})
	})
	return router
}

func TestEmployeeAuth_NoHeader(t *testing.T) {
	router := employeeRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestEmployeeAuth_InvalidFormat(t *testing.T) {
	router := employeeRouter()

	testCases := []string{
		"InvalidToken",
		"Basic token123",
		"Bearer",
	}

	for _, authHeader := range testCases {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/protected", nil)
		req.Header.Set("Authorization", authHeader)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: expected status %d, got %d", authHeader, http.StatusUnauthorized, w.Code)
		}
	}
}

func TestEmployeeAuth_InvalidToken(t *testing.T) {
	router := employeeRouter()

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer invalid.jwt.token")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected status %d, got %d", http.StatusUnauthorized, w.Code)
	}
}

func TestEmployeeAuth_ValidToken(t *testing.T) {
	token, _ := utils.GenerateToken("emp-1", "ada@example.com", 24)

	router := gin.New()
	router.Use(EmployeeAuth())
	router.GET("/protected", func(c *gin.Context) {
		if GetEmployeeID(c) != "emp-1" {
			t.Errorf("employee id = %q, expected emp-1", GetEmployeeID(c))
		}
		if GetEmail(c) != "ada@example.com" {
			t.Errorf("email = %q, expected ada@example.com", GetEmail(c))
		}
		if IsAdmin(c) {
			t.Error("employee token must not grant admin")
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}
}

func TestAdminKey(t *testing.T) {
	router := gin.New()
	router.Use(AdminKey("secret-key"))
	router.GET("/admin", func(c *gin.Context) {
		if !IsAdmin(c) {
			t.Error("admin key should mark the request as admin")
		}
		c.JSON(200, gin.H{"status": "ok"})
	})

	tests := []struct {
		name     string
		key      string
		wantCode int
	}{
		{"valid key", "secret-key", http.StatusOK},
		{"wrong key", "wrong", http.StatusUnauthorized},
		{"missing key", "", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			req, _ := http.NewRequest("GET", "/admin", nil)
			if tt.key != "" {
				req.Header.Set(AdminKeyHeader, tt.key)
			}
			router.ServeHTTP(w, req)

			if w.Code != tt.wantCode {
				t.Errorf("expected status %d, got %d", tt.wantCode, w.Code)
			}
		})
	}
}

func TestAdminOrEmployee(t *testing.T) {
	token, _ := utils.GenerateToken("emp-1", "ada@example.com", 24)

	router := gin.New()
	router.Use(AdminOrEmployee("secret-key"))
	router.GET("/shared", func(c *gin.Context) {
		c.JSON(200, gin.H{"admin": IsAdmin(c), "employee_id": GetEmployeeID(c)})
	})

	// Admin key path.
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", "/shared", nil)
	req.Header.Set(AdminKeyHeader, "secret-key")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("admin key: expected 200, got %d", w.Code)
	}

	// Employee token path.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/shared", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("employee token: expected 200, got %d", w.Code)
	}

	// Neither.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/shared", nil)
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no credentials: expected 401, got %d", w.Code)
	}

	// Wrong admin key does not fall through to an unauthenticated pass.
	w = httptest.NewRecorder()
	req, _ = http.NewRequest("GET", "/shared", nil)
	req.Header.Set(AdminKeyHeader, "wrong")
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong key: expected 401, got %d", w.Code)
	}
}
