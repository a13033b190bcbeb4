package main

import (
	"fmt"
	"net/http"

	"github.com/gajihub/payroll-backend-go/internal/config"
	appHTTP "github.com/gajihub/payroll-backend-go/internal/handler/http"
	"github.com/gajihub/payroll-backend-go/internal/pkg/database"
	"github.com/gajihub/payroll-backend-go/internal/pkg/jwt"
	"github.com/gajihub/payroll-backend-go/internal/repository/postgresql"
	employeeService "github.com/gajihub/payroll-backend-go/internal/service/employee"
	payrollService "github.com/gajihub/payroll-backend-go/internal/service/payroll"
	simulationService "github.com/gajihub/payroll-backend-go/internal/service/simulation"
	statutoryService "github.com/gajihub/payroll-backend-go/internal/service/statutory"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	payrollRunRepo := postgresql.NewPayrollRunRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	calculator := statutoryService.NewCalculator()
	simulationSvc := simulationService.NewService(calculator)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollSvc := payrollService.NewPayrollService(payrollRunRepo, employeeRepo, calculator)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)
	statutoryHandler := appHTTP.NewStatutoryHandler(calculator)
	simulationHandler := appHTTP.NewSimulationHandler(simulationSvc)

	router := appHTTP.NewRouter(
		jwtService,
		employeeHandler,
		payrollHandler,
		statutoryHandler,
		simulationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
