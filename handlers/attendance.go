package handlers

import (
	"database/sql"
	"fmt"
	"net/http"
	"strings"

	"hrms_lite_backend/models"

	"github.com/gin-gonic/gin"
)

type AttendanceHandler struct {
	db *sql.DB
}

func NewAttendanceHandler(db *sql.DB) *AttendanceHandler {
	return &AttendanceHandler{db: db}
}

// ListAttendance handles retrieving attendance records, optionally filtered
// by the owning employee's external identifier and/or a calendar date
func (h *AttendanceHandler) ListAttendance(c *gin.Context) {
	query := `
        SELECT e.employee_id, a.date, a.status
        FROM attendance a
        JOIN employees e ON e.id = a.employee_id
    `
	params := []interface{}{}
	conditions := []string{}

	if employeeID := c.Query("employee_id"); employeeID != "" {
		params = append(params, employeeID)
		conditions = append(conditions, fmt.Sprintf("e.employee_id = $%d", len(params)))
	}

	if dateParam := c.Query("date"); dateParam != "" {
		date, err := models.ParseDate(dateParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		params = append(params, date)
		conditions = append(conditions, fmt.Sprintf("a.date = $%d", len(params)))
	}

	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.id"

	rows, err := h.db.Query(query, params...)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch attendance records"})
		return
	}
	defer rows.Close()

	records := []models.AttendanceRecord{}
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(&record.EmployeeID, &record.Date, &record.Status); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan attendance"})
			return
		}
		records = append(records, record)
	}

	c.JSON(http.StatusOK, records)
}

// MarkAttendance creates the attendance record for (employee, date), or
// overwrites its status when one already exists
func (h *AttendanceHandler) MarkAttendance(c *gin.Context) {
	var req models.MarkAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	if err := req.Validate(); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		return
	}

	tx, err := h.db.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	var employeeRef int
	err = tx.QueryRow(`
        SELECT id FROM employees
        WHERE employee_id = $1
    `, req.EmployeeID).Scan(&employeeRef)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Employee '%s' not found", req.EmployeeID),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify employee"})
		return
	}

	// Check if attendance already exists for this employee and date
	var existingAttendance bool
	err = tx.QueryRow(`
        SELECT EXISTS (
            SELECT 1 FROM attendance
            WHERE employee_id = $1 AND date = $2
        )
    `, employeeRef, req.Date).Scan(&existingAttendance)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing attendance"})
		return
	}

	if existingAttendance {
		_, err = tx.Exec(`
            UPDATE attendance
            SET status = $1
            WHERE employee_id = $2 AND date = $3
        `, req.Status, employeeRef, req.Date)
	} else {
		_, err = tx.Exec(`
            INSERT INTO attendance (employee_id, date, status)
            VALUES ($1, $2, $3)
        `, employeeRef, req.Date, req.Status)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark attendance"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark attendance"})
		return
	}

	c.JSON(http.StatusCreated, models.AttendanceRecord{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		Status:     req.Status,
	})
}
