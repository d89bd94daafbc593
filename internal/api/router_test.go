package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
	"github.com/staffdesk/employee-api/internal/core/service"
	"github.com/staffdesk/employee-api/internal/infrastructure/db/memory"
)

// syncDispatcher processes audit entries inline so tests stay deterministic.
type syncDispatcher struct {
	service ports.AuditService
}

func (d *syncDispatcher) Enqueue(entry domain.AuditEntry) {
	_ = d.service.Process(context.Background(), entry)
}

func newTestServer(t *testing.T) (*echo.Echo, *memory.AuditRepository) {
	t.Helper()

	log := zerolog.Nop()
	identities := memory.NewIdentityRepository()
	employees := memory.NewEmployeeRepository()
	auditRepo := memory.NewAuditRepository()
	denylist := memory.NewTokenDenylist()

	authService := service.NewAuthService(identities, denylist, "test-secret", 0, log)
	guard := service.NewGuardService(authService)
	auditService := service.NewAuditService(auditRepo, log)
	employeeService := service.NewEmployeeService(employees, &syncDispatcher{service: auditService}, log)

	return NewRouter(Dependencies{
		AuthService:     authService,
		Guard:           guard,
		EmployeeService: employeeService,
		StrictLogin:     false,
		Log:             log,
	}), auditRepo
}

func doForm(e *echo.Echo, method, path, token string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if token != "" {
		req.Header.Set("accessToken", token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func doGet(e *echo.Echo, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("accessToken", token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, email, password string) string {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.SetBasicAuth(email, password)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("login returned %d", rec.Code)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid login response: %v", err)
	}
	return resp["token"]
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid json body %q: %v", rec.Body.String(), err)
	}
	return body
}

// TestServer_EndToEnd walks the whole surface against real services over the
// in-memory stores. The router is built once because the Prometheus middleware
// registers its collectors globally.
func TestServer_EndToEnd(t *testing.T) {
	e, auditRepo := newTestServer(t)

	registerForm := func(email, password, role string) url.Values {
		return url.Values{"email": {email}, "password": {password}, "role": {role}}
	}

	// --- Registration ---

	rec := doForm(e, http.MethodPost, "/register", "", registerForm("admin@example.com", "SecurePassword123!", "admin"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin register returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doForm(e, http.MethodPost, "/register", "", registerForm("admin@example.com", "OtherPassword123!", "admin"))
	if rec.Code != http.StatusConflict {
		t.Fatalf("duplicate register returned %d", rec.Code)
	}

	rec = doForm(e, http.MethodPost, "/register", "", registerForm("viewer@example.com", "SecurePassword123!", "read"))
	if rec.Code != http.StatusCreated {
		t.Fatalf("viewer register returned %d", rec.Code)
	}

	// --- Login ---

	// Legacy contract: wrong password answers 201 with an empty token.
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.SetBasicAuth("admin@example.com", "wrongpassword")
	badRec := httptest.NewRecorder()
	e.ServeHTTP(badRec, req)
	if badRec.Code != http.StatusCreated {
		t.Fatalf("failed login returned %d", badRec.Code)
	}
	if body := decodeBody(t, badRec); body["token"] != "" {
		t.Fatalf("failed login leaked a token: %v", body["token"])
	}

	adminToken := login(t, e, "admin@example.com", "SecurePassword123!")
	if adminToken == "" {
		t.Fatalf("expected non-empty admin token")
	}
	viewerToken := login(t, e, "viewer@example.com", "SecurePassword123!")

	employeeForm := url.Values{
		"firstname": {"John"},
		"lastname":  {"Doe"},
		"email":     {"j@x.com"},
	}

	// --- Authorization boundaries ---

	rec = doForm(e, http.MethodPost, "/employees", "", employeeForm)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("create without token returned %d", rec.Code)
	}

	rec = doForm(e, http.MethodPost, "/employees", "not-a-real-token", employeeForm)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("create with garbage token returned %d", rec.Code)
	}

	rec = doForm(e, http.MethodPost, "/employees", viewerToken, employeeForm)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("create with read-only token returned %d", rec.Code)
	}

	// --- Create, then extract the id the way legacy clients do ---

	rec = doForm(e, http.MethodPost, "/employees", adminToken, employeeForm)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create returned %d: %s", rec.Code, rec.Body.String())
	}
	createBody := decodeBody(t, rec)
	message, _ := createBody["message"].(string)
	parts := strings.Split(message, "=")
	id := parts[len(parts)-1]
	if id == "" {
		t.Fatalf("could not extract id from message %q", message)
	}
	if createBody["id"] != id {
		t.Fatalf("structured id %v disagrees with message id %s", createBody["id"], id)
	}

	// Read role may read what it cannot write.
	rec = doGet(e, "/employees/"+id, viewerToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("viewer get returned %d", rec.Code)
	}

	// --- Update, then verify via get ---

	rec = doForm(e, http.MethodPut, "/employees", adminToken, url.Values{
		"id":        {id},
		"firstname": {"John Updated"},
		"lastname":  {"Doe Updated"},
		"email":     {"u@x.com"},
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("update returned %d: %s", rec.Code, rec.Body.String())
	}

	rec = doGet(e, "/employees/"+id, adminToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("get returned %d", rec.Code)
	}
	got := decodeBody(t, rec)
	if got["first_name"] != "John Updated" || got["last_name"] != "Doe Updated" || got["email"] != "u@x.com" {
		t.Fatalf("get did not reflect update: %+v", got)
	}

	rec = doGet(e, "/employees/does-not-exist", adminToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("nonexistent get returned %d", rec.Code)
	}

	// --- List ---

	rec = doGet(e, "/employees?page=1&limit=10", viewerToken)
	if rec.Code != http.StatusOK {
		t.Fatalf("list returned %d", rec.Code)
	}
	var listBody struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &listBody); err != nil {
		t.Fatalf("invalid list body: %v", err)
	}
	if len(listBody.Data) != 1 || listBody.Data[0]["id"] != id {
		t.Fatalf("unexpected list contents: %+v", listBody.Data)
	}

	// --- Delete ---

	req = httptest.NewRequest(http.MethodDelete, "/employees/"+id, nil)
	req.Header.Set("accessToken", viewerToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("viewer delete returned %d", rec.Code)
	}

	req = httptest.NewRequest(http.MethodDelete, "/employees/"+id, nil)
	req.Header.Set("accessToken", adminToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("admin delete returned %d", rec.Code)
	}

	rec = doGet(e, "/employees/"+id, adminToken)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("get after delete returned %d", rec.Code)
	}

	// --- Audit trail: create, update, delete in order for this employee ---

	entries := auditRepo.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 audit entries, got %d", len(entries))
	}
	wantActions := []domain.AuditAction{
		domain.AuditEmployeeCreated,
		domain.AuditEmployeeUpdated,
		domain.AuditEmployeeDeleted,
	}
	for i, want := range wantActions {
		if entries[i].Action != want || entries[i].EmployeeID != id {
			t.Fatalf("audit entry %d = %+v, want action %s", i, entries[i], want)
		}
	}
	if entries[0].Actor != "admin@example.com" {
		t.Fatalf("audit actor = %q", entries[0].Actor)
	}

	// --- Logout revokes the token for subsequent calls ---

	req = httptest.NewRequest(http.MethodPost, "/logout", nil)
	req.Header.Set("accessToken", adminToken)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("logout returned %d", rec.Code)
	}

	rec = doForm(e, http.MethodPost, "/employees", adminToken, employeeForm)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("create with revoked token returned %d", rec.Code)
	}

	// A fresh login still works after revocation.
	freshToken := login(t, e, "admin@example.com", "SecurePassword123!")
	if freshToken == "" || freshToken == adminToken {
		t.Fatalf("expected a fresh token after logout")
	}

	// --- Health probes stay open ---

	rec = doGet(e, "/health", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("liveness returned %d", rec.Code)
	}
	rec = doGet(e, "/health/ready", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("readiness returned %d", rec.Code)
	}
}
