package db

import (
	"database/sql"
	"fmt"
)

// SeedData populates the database with a few development records
func SeedData(db *sql.DB) error {
	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}

	employees := []struct {
		employeeID string
		fullName   string
		email      string
		department string
	}{
		{"E001", "Ann Lee", "ann@example.com", "Engineering"},
		{"E002", "Ben Cole", "ben@example.com", "Finance"},
	}

	for _, e := range employees {
		_, err = tx.Exec(
			"INSERT INTO employees (employee_id, full_name, email, department) VALUES ($1, $2, $3, $4) ON CONFLICT DO NOTHING",
			e.employeeID, e.fullName, e.email, e.department,
		)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("error seeding employees: %w", err)
		}
	}

	_, err = tx.Exec(`
        INSERT INTO attendance (employee_id, date, status)
        SELECT id, '2024-01-01', 'Present' FROM employees WHERE employee_id = 'E001'
        ON CONFLICT DO NOTHING
    `)
	if err != nil {
		tx.Rollback()
		return fmt.Errorf("error seeding attendance: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}
