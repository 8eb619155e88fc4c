package routes

import (
	"database/sql"

	"hrms_lite_backend/handlers"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(r *gin.Engine, db *sql.DB) {
	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(db)
	attendanceHandler := handlers.NewAttendanceHandler(db)

	r.GET("/", healthHandler.Root)
	r.GET("/health", healthHandler.HealthCheck)

	// Employee routes
	r.GET("/employees", employeeHandler.ListEmployees)
	r.POST("/employees", employeeHandler.CreateEmployee)
	r.GET("/employees/:employee_id", employeeHandler.GetEmployee)
	r.DELETE("/employees/:employee_id", employeeHandler.DeleteEmployee)

	// Attendance routes
	r.GET("/attendance", attendanceHandler.ListAttendance)
	r.POST("/attendance", attendanceHandler.MarkAttendance)
}
