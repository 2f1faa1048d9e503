package http

import (
	"log/slog"
	"os"

	"github.com/RomanBrocki/ponto-online-go/internal/handler/http/middleware"
	"github.com/RomanBrocki/ponto-online-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(jwtService jwt.Service, frontendURL string, authHandler AuthHandler, punchHandler PunchHandler, reportHandler ReportHandler, userHandler UserHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "ponto-online"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/punches", func(r chi.Router) {
				r.Post("/", punchHandler.RecordStage)
				r.Get("/today", punchHandler.GetToday)

				r.Route("/my", func(r chi.Router) {
					r.Get("/", punchHandler.ListMyMonth)
					r.Get("/months", punchHandler.MyAvailableMonths)
				})

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", punchHandler.ListMonth)
					r.Get("/months", punchHandler.AvailableMonths)
					r.Put("/{id}", punchHandler.Update)
					r.Delete("/{id}", punchHandler.Delete)
				})
			})

			r.Route("/users", func(r chi.Router) {
				r.Put("/password", userHandler.ChangePassword)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/employees", userHandler.ListEmployees)
				})
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/my", reportHandler.MyMonthlyReport)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", reportHandler.MonthlyReport)
					r.Get("/pdf", reportHandler.MonthlyReportPDF)
				})
			})
		})
	})
	return r
}
