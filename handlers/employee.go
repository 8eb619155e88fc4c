package handlers

import (
	"database/sql"
	"fmt"
	"net/http"

	"hrms_lite_backend/models"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	db *sql.DB
}

func NewEmployeeHandler(db *sql.DB) *EmployeeHandler {
	return &EmployeeHandler{db: db}
}

// ListEmployees handles retrieving all employees
func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	rows, err := h.db.Query(`
        SELECT employee_id, full_name, email, department
        FROM employees
    `)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employees"})
		return
	}
	defer rows.Close()

	employees := []models.Employee{}
	for rows.Next() {
		var employee models.Employee
		if err := rows.Scan(
			&employee.EmployeeID,
			&employee.FullName,
			&employee.Email,
			&employee.Department,
		); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to scan employee"})
			return
		}
		employees = append(employees, employee)
	}

	c.JSON(http.StatusOK, employees)
}

// CreateEmployee handles the creation of a new employee
func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req models.CreateEmployeeRequest
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

	// Check duplicate employee_id
	var existingByID bool
	err = tx.QueryRow(`
        SELECT EXISTS (
            SELECT 1 FROM employees
            WHERE employee_id = $1
        )
    `, req.EmployeeID).Scan(&existingByID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing employee"})
		return
	}

	if existingByID {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("Employee with ID '%s' already exists", req.EmployeeID),
		})
		return
	}

	// Check duplicate email
	var existingByEmail bool
	err = tx.QueryRow(`
        SELECT EXISTS (
            SELECT 1 FROM employees
            WHERE email = $1
        )
    `, req.Email).Scan(&existingByEmail)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check existing email"})
		return
	}

	if existingByEmail {
		c.JSON(http.StatusConflict, gin.H{
			"error": fmt.Sprintf("Email '%s' is already registered", req.Email),
		})
		return
	}

	_, err = tx.Exec(`
        INSERT INTO employees (employee_id, full_name, email, department)
        VALUES ($1, $2, $3, $4)
    `, req.EmployeeID, req.FullName, req.Email, req.Department)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		return
	}

	c.JSON(http.StatusCreated, models.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	})
}

// GetEmployee handles retrieving a single employee by its external identifier
func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	employeeID := c.Param("employee_id")

	var employee models.Employee
	err := h.db.QueryRow(`
        SELECT employee_id, full_name, email, department
        FROM employees
        WHERE employee_id = $1
    `, employeeID).Scan(
		&employee.EmployeeID,
		&employee.FullName,
		&employee.Email,
		&employee.Department,
	)

	if err == sql.ErrNoRows {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Employee '%s' not found", employeeID),
		})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch employee"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

// DeleteEmployee handles deleting an employee; its attendance records are
// removed by the foreign key cascade
func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	employeeID := c.Param("employee_id")

	tx, err := h.db.Begin()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to start transaction"})
		return
	}
	defer tx.Rollback()

	result, err := tx.Exec(`
        DELETE FROM employees
        WHERE employee_id = $1
    `, employeeID)

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to verify deletion"})
		return
	}

	if rowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("Employee '%s' not found", employeeID),
		})
		return
	}

	if err := tx.Commit(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete employee"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Employee '%s' deleted successfully", employeeID),
	})
}
