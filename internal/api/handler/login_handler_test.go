package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/authbase/person-api/internal/core/domain"
)

func TestLoginHandler_Success(t *testing.T) {
	stub := &stubPersonService{
		authenticateFn: func(ctx context.Context, login, password string) (string, error) {
			if login != "ivan" || password != "password1" {
				t.Fatalf("unexpected args: %s %s", login, password)
			}
			return "token123", nil
		},
	}
	h := NewLoginHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/login", `{"login":"ivan","password":"password1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestLoginHandler_BadPassword(t *testing.T) {
	stub := &stubPersonService{
		authenticateFn: func(ctx context.Context, login, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	h := NewLoginHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"login":"ivan","password":"wrong"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginHandler_UnknownLogin(t *testing.T) {
	stub := &stubPersonService{
		authenticateFn: func(ctx context.Context, login, password string) (string, error) {
			return "", domain.ErrPersonNotFound
		},
	}
	h := NewLoginHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"login":"ghost","password":"password1"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrPersonNotFound) {
		t.Fatalf("expected ErrPersonNotFound, got %v", err)
	}
}

func TestLoginHandler_Throttled(t *testing.T) {
	stub := &stubPersonService{
		authenticateFn: func(ctx context.Context, login, password string) (string, error) {
			return "", domain.ErrTooManyAttempts
		},
	}
	h := NewLoginHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{"login":"ivan","password":"password1"}`)
	if err := h.Login(c); !errors.Is(err, domain.ErrTooManyAttempts) {
		t.Fatalf("expected ErrTooManyAttempts, got %v", err)
	}
}

func TestLoginHandler_InvalidPayload(t *testing.T) {
	stub := &stubPersonService{
		authenticateFn: func(ctx context.Context, login, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewLoginHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/login", "{")
	err := h.Login(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestLoginHandler_MissingFields(t *testing.T) {
	stub := &stubPersonService{
		authenticateFn: func(ctx context.Context, login, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	h := NewLoginHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/login", `{}`)
	err := h.Login(c)

	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(ve.Fields) != 2 {
		t.Fatalf("expected login and password violations, got %v", ve.Fields)
	}
}
