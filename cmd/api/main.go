package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/expenseflow/expense-backend-go/internal/config"
	appHTTP "github.com/expenseflow/expense-backend-go/internal/handler/http"
	"github.com/expenseflow/expense-backend-go/internal/pkg/database"
	"github.com/expenseflow/expense-backend-go/internal/pkg/jwt"
	"github.com/expenseflow/expense-backend-go/internal/pkg/storage"
	"github.com/expenseflow/expense-backend-go/internal/repository/postgresql"
	authService "github.com/expenseflow/expense-backend-go/internal/service/auth"
	dashboardService "github.com/expenseflow/expense-backend-go/internal/service/dashboard"
	employeeService "github.com/expenseflow/expense-backend-go/internal/service/employee"
	expenseService "github.com/expenseflow/expense-backend-go/internal/service/expense"
	"github.com/expenseflow/expense-backend-go/internal/service/file"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	employeeRepo := postgresql.NewEmployeeRepository(db)
	expenseRepo := postgresql.NewExpenseRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileService := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(db, employeeRepo, jwtService, refreshTokenRepo)
	expenseSvc := expenseService.NewExpenseService(expenseRepo, fileService)
	dashboardSvc := dashboardService.NewDashboardService(expenseRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	expenseHandler := appHTTP.NewExpenseHandler(expenseSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)

	router := appHTTP.NewRouter(
		jwtService,
		cfg.App.AllowedOrigins,
		authHandler,
		expenseHandler,
		dashboardHandler,
		employeeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
