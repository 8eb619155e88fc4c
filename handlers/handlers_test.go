package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"hrms_lite_backend/routes"

	"github.com/gin-gonic/gin"
	_ "modernc.org/sqlite"
)

// SQLite equivalent of the production schema; the handlers stick to the SQL
// subset both drivers accept, so tests run against a real database without
// a Postgres instance.
const testSchema = `
CREATE TABLE employees (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_id TEXT UNIQUE NOT NULL,
    full_name TEXT NOT NULL,
    email TEXT UNIQUE NOT NULL,
    department TEXT NOT NULL
);

CREATE TABLE attendance (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    employee_id INTEGER NOT NULL,
    date TEXT NOT NULL,
    status TEXT NOT NULL,
    FOREIGN KEY (employee_id) REFERENCES employees(id) ON DELETE CASCADE,
    UNIQUE(employee_id, date)
);
`

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	path := filepath.Join(t.TempDir(), "hrms.db")
	database, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	database.SetMaxOpenConns(1)
	t.Cleanup(func() { database.Close() })

	if _, err := database.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}
	if _, err := database.Exec(testSchema); err != nil {
		t.Fatalf("failed to create test schema: %v", err)
	}

	r := gin.New()
	routes.SetupRoutes(r, database)
	return r
}

func performRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func createTestEmployee(t *testing.T, r http.Handler, employeeID, fullName, email, department string) {
	t.Helper()

	w := performRequest(t, r, http.MethodPost, "/employees", map[string]string{
		"employee_id": employeeID,
		"full_name":   fullName,
		"email":       email,
		"department":  department,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to create employee %s: status %d, body %s", employeeID, w.Code, w.Body.String())
	}
}

func markTestAttendance(t *testing.T, r http.Handler, employeeID, date, status string) {
	t.Helper()

	w := performRequest(t, r, http.MethodPost, "/attendance", map[string]string{
		"employee_id": employeeID,
		"date":        date,
		"status":      status,
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("failed to mark attendance for %s: status %d, body %s", employeeID, w.Code, w.Body.String())
	}
}
