package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/authbase/person-api/internal/core/domain"
)

func TestCallerLogin(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/person/", "")
	withCaller(c)

	login, err := callerLogin(c)
	if err != nil {
		t.Fatalf("callerLogin: %v", err)
	}
	if login != "admin" {
		t.Fatalf("expected login %q, got %q", "admin", login)
	}
}

func TestCallerLogin_Missing(t *testing.T) {
	c, _ := newTestContext(t, http.MethodGet, "/person/", "")

	_, err := callerLogin(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestPersonHandler_Delete_NoIdentity(t *testing.T) {
	stub := &stubPersonService{
		deleteFn: func(ctx context.Context, id int64) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	h := NewPersonHandler(stub)

	c, _ := newTestContext(t, http.MethodDelete, "/person/8", "")
	c.SetParamNames("id")
	c.SetParamValues("8")

	err := h.Delete(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestPersonHandler_Create_NoIdentity(t *testing.T) {
	stub := &stubPersonService{
		createFn: func(ctx context.Context, login, password string) (*domain.Person, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewPersonHandler(stub)

	c, _ := newTestContext(t, http.MethodPost, "/person/", `{"login":"maria","password":"password1"}`)
	err := h.Create(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}
