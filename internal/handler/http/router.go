package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/nominalabs/nomina-backend-go/internal/handler/http/middleware"
	"github.com/nominalabs/nomina-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	env string,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	scheduleHandler ScheduleHandler,
	holidayHandler HolidayHandler,
	payrollHandler PayrollHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "nomina-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
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

			r.Get("/auth/me", authHandler.Profile)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.GetByID)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Delete)
				})
			})

			r.Route("/schedules", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)
				r.Get("/{id}", scheduleHandler.GetByID)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", scheduleHandler.Create)
					r.Put("/{id}", scheduleHandler.Update)
					r.Delete("/{id}", scheduleHandler.Delete)
				})
			})

			r.Route("/assignments", func(r chi.Router) {
				r.Get("/", scheduleHandler.ListAssignments)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", scheduleHandler.Assign)
					r.Delete("/{id}", scheduleHandler.DeleteAssignment)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", holidayHandler.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", holidayHandler.Create)
					r.Delete("/{id}", holidayHandler.Delete)
				})
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Get("/formulas", payrollHandler.GetFormulas)
				r.Get("/runs", payrollHandler.ListRuns)
				r.Get("/runs/{id}", payrollHandler.GetRun)
				r.Get("/breakdowns", payrollHandler.ListBreakdowns)
				r.Get("/breakdowns/{id}", payrollHandler.GetBreakdown)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/formulas", payrollHandler.UpdateFormulas)
					r.Post("/runs", payrollHandler.RunPayroll)
					r.Post("/breakdowns/{id}/deliver", payrollHandler.DeliverBreakdown)
					r.Post("/breakdowns/{id}/correct", payrollHandler.CorrectBreakdown)
				})
			})
		})
	})
	return r
}
