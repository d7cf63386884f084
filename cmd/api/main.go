package main

import (
	"fmt"
	"net/http"

	"github.com/sanadhr/backoffice-go/internal/config"
	appHTTP "github.com/sanadhr/backoffice-go/internal/handler/http"
	"github.com/sanadhr/backoffice-go/internal/pkg/database"
	"github.com/sanadhr/backoffice-go/internal/pkg/jwt"
	"github.com/sanadhr/backoffice-go/internal/repository/postgresql"
	accessService "github.com/sanadhr/backoffice-go/internal/service/access"
	authService "github.com/sanadhr/backoffice-go/internal/service/auth"
	employeeService "github.com/sanadhr/backoffice-go/internal/service/employee"
	timesheetService "github.com/sanadhr/backoffice-go/internal/service/timesheet"
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
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	lineRepo := postgresql.NewLineRepository(db)
	summaryRepo := postgresql.NewSummaryRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	auth := authService.NewAuthService(userRepo, jwtService)
	employees := employeeService.NewEmployeeService(employeeRepo)
	timesheets := timesheetService.NewTimesheetService(txManager, lineRepo, summaryRepo, employeeRepo)
	access := accessService.NewAccessService(userRepo)

	router := appHTTP.NewRouter(
		jwtService,
		appHTTP.NewAuthHandler(auth, jwtService),
		appHTTP.NewEmployeeHandler(employees),
		appHTTP.NewTimesheetHandler(timesheets),
		appHTTP.NewAccessHandler(access),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
