package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/staffdesk/employee-api/internal/api/metrics"
	"github.com/staffdesk/employee-api/internal/core/domain"
	"github.com/staffdesk/employee-api/internal/core/ports"
)

// EmployeeHandler handles HTTP requests for the employee registry.
type EmployeeHandler struct {
	service ports.EmployeeService
}

func NewEmployeeHandler(service ports.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// Create handles POST /employees.
//
// @Summary      Create an employee
// @Tags         employees
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        accessToken  header    string  true  "Bearer token"
// @Param        firstname    formData  string  true  "First name"
// @Param        lastname     formData  string  true  "Last name"
// @Param        email        formData  string  true  "Email"
// @Success      201  {object}  createEmployeeResponse
// @Failure      400  {object}  map[string]string
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /employees [post]
func (h *EmployeeHandler) Create(c echo.Context) error {
	var req createEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	id, err := h.service.Create(c.Request().Context(), ports.EmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Actor:     principal.Email,
	})
	if err != nil {
		return err
	}

	metrics.EmployeesMutatedTotal.WithLabelValues("created").Inc()
	return c.JSON(http.StatusCreated, createEmployeeResponse{
		Success: true,
		Message: "employee created with id=" + id,
		ID:      id,
	})
}

// Update handles PUT /employees — a full-record replace keyed by the id
// carried in the form body.
//
// @Summary      Update an employee
// @Tags         employees
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        accessToken  header    string  true  "Bearer token"
// @Param        id           formData  string  true  "Employee id"
// @Param        firstname    formData  string  true  "First name"
// @Param        lastname     formData  string  true  "Last name"
// @Param        email        formData  string  true  "Email"
// @Success      201  {object}  legacyResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employees [put]
func (h *EmployeeHandler) Update(c echo.Context) error {
	var req updateEmployeeRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	err = h.service.Update(c.Request().Context(), req.ID, ports.EmployeeInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Actor:     principal.Email,
	})
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "employee not found")
		}
		return err
	}

	metrics.EmployeesMutatedTotal.WithLabelValues("updated").Inc()
	return c.JSON(http.StatusCreated, legacyResponse{Success: true, Message: "updated"})
}

// Get handles GET /employees/:id.
//
// @Summary      Get an employee by id
// @Tags         employees
// @Produce      json
// @Param        accessToken  header  string  true  "Bearer token"
// @Param        id           path    string  true  "Employee id"
// @Success      200  {object}  employeeResponse
// @Failure      401  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employees/{id} [get]
func (h *EmployeeHandler) Get(c echo.Context) error {
	view, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "employee not found")
		}
		return err
	}

	return c.JSON(http.StatusOK, employeeResponse{
		ID:        view.ID,
		FirstName: view.FirstName,
		LastName:  view.LastName,
		Email:     view.Email,
	})
}

// Delete handles DELETE /employees/:id.
//
// @Summary      Delete an employee
// @Tags         employees
// @Produce      json
// @Param        accessToken  header  string  true  "Bearer token"
// @Param        id           path    string  true  "Employee id"
// @Success      200  {object}  legacyResponse
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /employees/{id} [delete]
func (h *EmployeeHandler) Delete(c echo.Context) error {
	principal, err := ctxPrincipal(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), principal.Email); err != nil {
		if errors.Is(err, domain.ErrEmployeeNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "employee not found")
		}
		return err
	}

	metrics.EmployeesMutatedTotal.WithLabelValues("deleted").Inc()
	return c.JSON(http.StatusOK, legacyResponse{Success: true, Message: "deleted"})
}

// List handles GET /employees.
//
// @Summary      List employees
// @Tags         employees
// @Produce      json
// @Param        accessToken  header  string  true   "Bearer token"
// @Param        page         query   int     false  "Page (1-based)"
// @Param        limit        query   int     false  "Page size (max 100)"
// @Param        search       query   string  false  "Partial match on names or email"
// @Success      200  {object}  listEmployeesResponse
// @Failure      401  {object}  map[string]string
// @Router       /employees [get]
func (h *EmployeeHandler) List(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.List(c.Request().Context(), ports.ListEmployeesInput{
		Search: c.QueryParam("search"),
		Page:   page,
		Limit:  limit,
	})
	if err != nil {
		return err
	}

	data := make([]employeeSummaryResponse, 0, len(result.Items))
	for _, item := range result.Items {
		data = append(data, employeeSummaryResponse{
			ID:        item.ID,
			FirstName: item.FirstName,
			LastName:  item.LastName,
			Email:     item.Email,
			CreatedAt: item.CreatedAt,
			UpdatedAt: item.UpdatedAt,
		})
	}

	return c.JSON(http.StatusOK, listEmployeesResponse{
		Data: data,
		Pagination: paginationResponse{
			Total:      result.Total,
			Page:       result.Page,
			Limit:      result.Limit,
			TotalPages: result.TotalPages,
		},
	})
}
