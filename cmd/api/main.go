package main

import (
	"fmt"
	"net/http"

	"github.com/nominalabs/nomina-backend-go/internal/config"
	appHTTP "github.com/nominalabs/nomina-backend-go/internal/handler/http"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/database"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/jwt"
	"github.com/nominalabs/nomina-backend-go/internal/repository/postgresql"
	authService "github.com/nominalabs/nomina-backend-go/internal/service/auth"
	employeeService "github.com/nominalabs/nomina-backend-go/internal/service/employee"
	holidayService "github.com/nominalabs/nomina-backend-go/internal/service/holiday"
	payrollService "github.com/nominalabs/nomina-backend-go/internal/service/payroll"
	scheduleService "github.com/nominalabs/nomina-backend-go/internal/service/schedule"
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

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)
	assignmentRepo := postgresql.NewShiftAssignmentRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	formulasRepo := postgresql.NewFormulasRepository(db)
	runRepo := postgresql.NewRunRepository(db)
	breakdownRepo := postgresql.NewBreakdownRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	scheduleSvc := scheduleService.NewScheduleService(scheduleRepo, assignmentRepo, employeeRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo)
	payrollSvc := payrollService.NewPayrollService(
		db,
		formulasRepo,
		runRepo,
		breakdownRepo,
		employeeRepo,
		scheduleRepo,
		assignmentRepo,
		holidayRepo,
	)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	payrollHandler := appHTTP.NewPayrollHandler(payrollSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.Env,
		authHandler,
		employeeHandler,
		scheduleHandler,
		holidayHandler,
		payrollHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
