package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shramsetu/rozgar-backend-go/internal/config"
	"github.com/shramsetu/rozgar-backend-go/internal/handler/http/middleware"
	"github.com/shramsetu/rozgar-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Attendance AttendanceHandler
	Project    ProjectHandler
	Worker     WorkerHandler
	Payment    PaymentHandler
	Report     ReportHandler
	Profile    ProfileHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "rozgar-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition"},
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

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/me", h.Profile.Me)

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", h.Worker.List)
				r.Post("/", h.Worker.Register)
				r.Get("/{workerID}", h.Worker.Get)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", h.Project.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Project.Create)
				})

				r.Route("/{projectID}", func(r chi.Router) {
					r.Get("/", h.Project.Get)

					r.Route("/workers", func(r chi.Router) {
						r.Get("/", h.Worker.ListAssigned)
						r.Post("/", h.Worker.Assign)
						r.Delete("/{workerID}", h.Worker.Unassign)
					})

					r.Route("/attendance", func(r chi.Router) {
						r.Get("/", h.Attendance.RangeSummary)
						r.Get("/daily", h.Attendance.DailyRoster)
					})

					r.Route("/payments", func(r chi.Router) {
						r.Get("/", h.Payment.List)
						r.Get("/projection", h.Payment.Projection)

						// Admin only
						r.Group(func(r chi.Router) {
							r.Use(middleware.AdminOnly)
							r.Post("/generate", h.Payment.Generate)
						})
					})

					r.Get("/muster-roll.xlsx", h.Report.MusterRollExcel)
					r.Get("/muster-roll.pdf", h.Report.MusterRollPDF)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/", h.Attendance.Mark)
				r.Patch("/{recordID}", h.Attendance.Edit)
			})
		})
	})
	return r
}
