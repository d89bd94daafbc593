package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-api/internal/api/metrics"
	"github.com/staffdesk/employee-api/internal/api/middleware"
	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

// AuthHandler exposes the legacy registration/login/logout endpoints.
type AuthHandler struct {
	authService ports.AuthService
	// strictLogin switches /login failures from the legacy 201 + empty
	// token to a proper 401.
	strictLogin bool
}

func NewAuthHandler(authService ports.AuthService, strictLogin bool) *AuthHandler {
	return &AuthHandler{authService: authService, strictLogin: strictLogin}
}

type registerRequest struct {
	Email    string `form:"email"    json:"email"    validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=8"`
	Role     string `form:"role"     json:"role"     validate:"required,oneof=read write admin"`
}

// legacyResponse is the wire shape older clients expect from /register and
// the employee mutations.
type legacyResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Register creates a new identity.
//
// @Summary      Register a new identity
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        email     formData  string  true  "Unique email"
// @Param        password  formData  string  true  "Password (min 8 chars)"
// @Param        role      formData  string  true  "Role: read, write or admin"
// @Success      201  {object}  legacyResponse
// @Failure      400  {object}  legacyResponse
// @Failure      409  {object}  legacyResponse
// @Router       /register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, legacyResponse{Success: false, Message: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
		return c.JSON(http.StatusBadRequest, legacyResponse{Success: false, Message: err.Error()})
	}

	_, err := h.authService.Register(c.Request().Context(), req.Email, req.Password, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrDuplicateIdentity):
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
			return c.JSON(http.StatusConflict, legacyResponse{Success: false, Message: "user already exists"})
		case errors.Is(err, domain.ErrValidation):
			metrics.RegistrationsTotal.WithLabelValues("invalid").Inc()
			return c.JSON(http.StatusBadRequest, legacyResponse{Success: false, Message: "invalid input"})
		}
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, legacyResponse{Success: true, Message: "created"})
}

// Login authenticates via basic auth and returns a bearer token.
//
// Legacy behavior: older clients expect 201 with an empty token on bad
// credentials; strict mode replaces that with a 401.
//
// @Summary      Login
// @Tags         auth
// @Produce      json
// @Security     BasicAuth
// @Success      201  {object}  loginResponse
// @Failure      401  {object}  map[string]string
// @Router       /login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	email, password, ok := c.Request().BasicAuth()
	if !ok {
		return h.loginFailure(c)
	}

	token, err := h.authService.Login(c.Request().Context(), email, password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			return h.loginFailure(c)
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, loginResponse{Token: token})
}

func (h *AuthHandler) loginFailure(c echo.Context) error {
	metrics.LoginsTotal.WithLabelValues("failure").Inc()
	if h.strictLogin {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	return c.JSON(http.StatusCreated, loginResponse{Token: ""})
}

// Logout revokes the presented token for the remainder of its lifetime.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Param        accessToken  header    string  true  "Bearer token"
// @Success      200  {object}  legacyResponse
// @Failure      401  {object}  map[string]string
// @Router       /logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := c.Request().Header.Get(middleware.HeaderAccessToken)
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}

	if err := h.authService.Revoke(c.Request().Context(), token); err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return err
	}

	return c.JSON(http.StatusOK, legacyResponse{Success: true, Message: "logged out"})
}
