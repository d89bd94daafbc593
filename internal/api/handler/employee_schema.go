package handler

import "time"

// Form field names (firstname, lastname) follow the legacy wire contract;
// response JSON uses the snake_case names newer clients read.

type createEmployeeRequest struct {
	FirstName string `form:"firstname" json:"firstname" validate:"required"`
	LastName  string `form:"lastname"  json:"lastname"  validate:"required"`
	Email     string `form:"email"     json:"email"     validate:"required,email"`
}

type updateEmployeeRequest struct {
	ID        string `form:"id"        json:"id"        validate:"required"`
	FirstName string `form:"firstname" json:"firstname" validate:"required"`
	LastName  string `form:"lastname"  json:"lastname"  validate:"required"`
	Email     string `form:"email"     json:"email"     validate:"required,email"`
}

// createEmployeeResponse carries the structured id plus the legacy message
// string older clients parse by splitting on "=".
type createEmployeeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id"`
}

type employeeResponse struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type employeeSummaryResponse struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type paginationResponse struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

type listEmployeesResponse struct {
	Data       []employeeSummaryResponse `json:"data"`
	Pagination paginationResponse        `json:"pagination"`
}
