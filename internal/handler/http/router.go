package http

import (
	"log/slog"
	"os"

	"github.com/expenseflow/expense-backend-go/internal/domain/employee"
	"github.com/expenseflow/expense-backend-go/internal/handler/http/middleware"
	"github.com/expenseflow/expense-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	allowedOrigins []string,
	authHandler AuthHandler,
	expenseHandler ExpenseHandler,
	dashboardHandler DashboardHandler,
	employeeHandler EmployeeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "expenseflow"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/expenses", func(r chi.Router) {
				r.Post("/", expenseHandler.Submit)
				r.Get("/categories", expenseHandler.ListCategories)
				r.Get("/{id}", expenseHandler.Get)
				r.Get("/{id}/receipt", expenseHandler.DownloadReceipt)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionExpenseApprove))
					r.Post("/{id}/approve", expenseHandler.Approve)
					r.Post("/{id}/reject", expenseHandler.Reject)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/employee", dashboardHandler.Employee)

				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionDashboardViewAll))
					r.Get("/manager", dashboardHandler.Manager)
				})
			})

			r.Route("/employees", func(r chi.Router) {
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(employee.PermissionEmployeeViewManagers))
					r.Get("/managers", employeeHandler.ListManagers)
				})
			})
		})
	})
	return r
}
