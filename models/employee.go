package models

import (
	"errors"
	"regexp"
	"strings"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)

type Employee struct {
	EmployeeID string `json:"employee_id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Department string `json:"department"`
}

type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	FullName   string `json:"full_name" binding:"required"`
	Email      string `json:"email" binding:"required"`
	Department string `json:"department" binding:"required"`
}

// Validate normalizes the request in place (trimming, lower-casing the
// email) and reports the first field that fails validation.
func (r *CreateEmployeeRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	if r.EmployeeID == "" {
		return errors.New("Employee ID is required")
	}

	r.FullName = strings.TrimSpace(r.FullName)
	if r.FullName == "" {
		return errors.New("Full name is required")
	}

	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if !emailPattern.MatchString(r.Email) {
		return errors.New("Invalid email format")
	}

	r.Department = strings.TrimSpace(r.Department)
	if r.Department == "" {
		return errors.New("Department is required")
	}

	return nil
}
