package http

import (
	"log/slog"
	"os"

	"github.com/gajihub/payroll-backend-go/internal/handler/http/middleware"
	"github.com/gajihub/payroll-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	jwtService jwt.Service,
	employeeHandler EmployeeHandler,
	payrollHandler PayrollHandler,
	statutoryHandler StatutoryHandler,
	simulationHandler SimulationHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "payroll-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Stateless calculators, no tenant data involved
		r.Route("/calculator", func(r chi.Router) {
			r.Post("/salary-breakdown", statutoryHandler.SalaryBreakdown)
			r.Post("/retirement-projection", simulationHandler.RetirementProjection)
			r.Post("/eis-benefits", simulationHandler.EisBenefits)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Post("/", employeeHandler.Create)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", employeeHandler.Get)
					r.Put("/", employeeHandler.Update)
					r.Delete("/", employeeHandler.Delete)
				})
			})

			r.Route("/payroll-runs", func(r chi.Router) {
				r.Get("/", payrollHandler.ListRuns)
				r.Post("/", payrollHandler.RunPayroll)
				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", payrollHandler.GetRun)
					r.Post("/recompute", payrollHandler.RecomputeRun)
					r.Post("/finalize", payrollHandler.FinalizeRun)
					r.Get("/export", payrollHandler.ExportRun)
				})
			})
		})
	})

	return r
}
