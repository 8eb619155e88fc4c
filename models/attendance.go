package models

import (
	"errors"
	"strings"
	"time"
)

const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

type AttendanceRecord struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type MarkAttendanceRequest struct {
	EmployeeID string `json:"employee_id" binding:"required"`
	Date       string `json:"date" binding:"required"`
	Status     string `json:"status" binding:"required,oneof=Present Absent"`
}

// Validate normalizes the request in place and reports the first field
// that fails validation. The date is canonicalized to YYYY-MM-DD.
func (r *MarkAttendanceRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	if r.EmployeeID == "" {
		return errors.New("Employee ID is required")
	}

	date, err := ParseDate(r.Date)
	if err != nil {
		return err
	}
	r.Date = date

	return nil
}

// ParseDate validates an ISO calendar date and returns its canonical
// YYYY-MM-DD form.
func ParseDate(value string) (string, error) {
	parsed, err := time.Parse("2006-01-02", strings.TrimSpace(value))
	if err != nil {
		return "", errors.New("Invalid date format. Use YYYY-MM-DD")
	}
	return parsed.Format("2006-01-02"), nil
}
