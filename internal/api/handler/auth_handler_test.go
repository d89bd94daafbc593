package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-api/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password, role string) (*domain.Identity, error)
	loginFn    func(ctx context.Context, email, password string) (string, error)
	revokeFn   func(ctx context.Context, token string) error
}

func (s *stubAuthService) Register(ctx context.Context, email, password, role string) (*domain.Identity, error) {
	return s.registerFn(ctx, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (string, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Validate(context.Context, string) (*domain.Principal, error) {
	panic("not used")
}

func (s *stubAuthService) Revoke(ctx context.Context, token string) error {
	return s.revokeFn(ctx, token)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func formRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	return req
}

func TestAuthHandler_Register_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, role string) (*domain.Identity, error) {
			if email != "alice@example.com" || role != "admin" {
				t.Fatalf("unexpected args: %s %s", email, role)
			}
			return &domain.Identity{Email: email, Role: domain.Role(role)}, nil
		},
	}
	handler := NewAuthHandler(stub, false)

	form := url.Values{
		"email":    {"alice@example.com"},
		"password": {"SecurePassword123!"},
		"role":     {"admin"},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest("/register", form), rec)

	if err := handler.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["success"] != true || resp["message"] != "created" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAuthHandler_Register_Duplicate(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, role string) (*domain.Identity, error) {
			return nil, domain.ErrDuplicateIdentity
		},
	}
	handler := NewAuthHandler(stub, false)

	form := url.Values{
		"email":    {"bob@example.com"},
		"password": {"SecurePassword123!"},
		"role":     {"read"},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest("/register", form), rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}

	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["success"] != false {
		t.Fatalf("duplicate must be distinguishable from success: %+v", resp)
	}
}

func TestAuthHandler_Register_InvalidRole(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password, role string) (*domain.Identity, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	handler := NewAuthHandler(stub, false)

	form := url.Values{
		"email":    {"bob@example.com"},
		"password": {"SecurePassword123!"},
		"role":     {"superuser"},
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(formRequest("/register", form), rec)

	_ = handler.Register(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			if email != "alice@example.com" || password != "SecurePassword123!" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return "token123", nil
		},
	}
	handler := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.SetBasicAuth("alice@example.com", "SecurePassword123!")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_LegacyFailure(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.SetBasicAuth("nonexistent@example.com", "wrongpassword")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	// Legacy contract: bad credentials still answer 201, with an empty token.
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(rec.Body.Bytes(), &resp)
	if resp["token"] != "" {
		t.Fatalf("expected empty token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_StrictFailure(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			return "", domain.ErrInvalidCredentials
		},
	}
	handler := NewAuthHandler(stub, true)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.SetBasicAuth("nonexistent@example.com", "wrongpassword")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 in strict mode, got %d", rec.Code)
	}
}

func TestAuthHandler_Login_MissingBasicAuth(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (string, error) {
			t.Fatalf("should not be called")
			return "", nil
		},
	}
	handler := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected legacy 201, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		revokeFn: func(ctx context.Context, token string) error {
			if token != "tok-123" {
				t.Fatalf("unexpected token: %s", token)
			}
			return nil
		},
	}
	handler := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("accessToken", "tok-123")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Logout_MissingToken(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		revokeFn: func(ctx context.Context, token string) error {
			t.Fatalf("should not be called")
			return nil
		},
	}
	handler := NewAuthHandler(stub, false)

	req := httptest.NewRequest(http.MethodPost, "/logout", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := handler.Logout(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
