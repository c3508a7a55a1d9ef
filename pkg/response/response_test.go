package response

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performRequest(handler gin.HandlerFunc) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request, _ = http.NewRequest("GET", "/test", nil)
	handler(c)
	// Outside the engine, gin defers WriteHeader until a body write;
	// flush it so status-only handlers reach the recorder.
	c.Writer.WriteHeaderNow()
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) Response {
	t.Helper()
	var resp Response
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	return resp
}

func TestSuccess(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Success(c, map[string]string{"name": "test"})
	})

	if w.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	resp := parseResponse(t, w)
	if resp.Code != 0 {
		t.Errorf("expected code 0, got %d", resp.Code)
	}
	if resp.Message != "ok" {
		t.Errorf("expected message 'ok', got %q", resp.Message)
	}
}

func TestCreated(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Created(c, map[string]string{"id": "abc"})
	})

	if w.Code != http.StatusCreated {
		t.Errorf("expected status %d, got %d", http.StatusCreated, w.Code)
	}
}

func TestNoContent(t *testing.T) {
	w := performRequest(NoContent)

	if w.Code != http.StatusNoContent {
		t.Errorf("expected status %d, got %d", http.StatusNoContent, w.Code)
	}
	if w.Body.Len() != 0 {
		t.Errorf("204 response should have no body, got %q", w.Body.String())
	}
}

func TestError_AppError(t *testing.T) {
	tests := []struct {
		name       string
		err        *AppError
		wantStatus int
	}{
		{"validation", NewValidation("bad input"), http.StatusBadRequest},
		{"not found", NewNotFound("missing"), http.StatusNotFound},
		{"conflict", NewConflict("already done"), http.StatusConflict},
		{"unauthorized", NewUnauthorized("who are you"), http.StatusUnauthorized},
		{"forbidden", NewForbidden("not yours"), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := performRequest(func(c *gin.Context) {
				Error(c, tt.err)
			})

			if w.Code != tt.wantStatus {
				t.Errorf("expected status %d, got %d", tt.wantStatus, w.Code)
			}
			resp := parseResponse(t, w)
			if resp.Message != tt.err.Message {
				t.Errorf("message = %q, expected %q", resp.Message, tt.err.Message)
			}
		})
	}
}

func TestError_OpaqueForUnknownErrors(t *testing.T) {
	w := performRequest(func(c *gin.Context) {
		Error(c, errors.New("dsn=user:password@host connection refused"))
	})

	if w.Code != http.StatusInternalServerError {
		t.Errorf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	resp := parseResponse(t, w)
	if resp.Message != "internal server error" {
		t.Errorf("infrastructure details must not leak, got %q", resp.Message)
	}
}

func TestError_WrappedAppError(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), NewNotFound("employee not found"))

	w := performRequest(func(c *gin.Context) {
		Error(c, wrapped)
	})

	if w.Code != http.StatusNotFound {
		t.Errorf("wrapped AppError should keep its status, got %d", w.Code)
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(NewNotFound("x")) {
		t.Error("IsNotFound should match a not-found AppError")
	}
	if IsNotFound(NewValidation("x")) {
		t.Error("IsNotFound should not match a validation error")
	}
	if IsNotFound(errors.New("x")) {
		t.Error("IsNotFound should not match plain errors")
	}
}
