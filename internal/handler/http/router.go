package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/cmlabs-hris/hris-insights-go/internal/config"
	"github.com/cmlabs-hris/hris-insights-go/internal/domain/user"
	"github.com/cmlabs-hris/hris-insights-go/internal/handler/http/middleware"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const appName = "hris-insights"

// Version is overridden at build time with -ldflags.
var Version = "v1.0.0"

// NewLogger builds the JSON logger shared by the request logger and the rest
// of the process. Unknown LOG_LEVEL values fall back to info.
func NewLogger(cfg config.AppConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}

	logFormat := httplog.SchemaECS.Concise(cfg.Env != "production")
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", appName),
		slog.String("version", Version),
		slog.String("env", cfg.Env),
	)
}

func NewRouter(cfg config.AppConfig, logger *slog.Logger, JWTService jwt.Service, analyticsHandler AnalyticsHandler) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
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

	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired)

			r.Route("/analytics", func(r chi.Router) {
				r.Use(middleware.RequirePermission(user.PermissionAnalyticsView))

				r.Get("/anomalies", analyticsHandler.DetectAnomalies)
				r.Post("/generate-feedback", analyticsHandler.GenerateFeedback)
				r.Get("/summary", analyticsHandler.GetSummary)
				r.Get("/goal-performance", analyticsHandler.GetGoalPerformance)
				r.Get("/leave-trends", analyticsHandler.GetLeaveTrends)
				r.Post("/generate-summary", analyticsHandler.GenerateReportSummary)

				// Admin and HR only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequirePermission(user.PermissionAnalyticsPredictAttrition))
					r.Post("/predict-attrition/{employeeId}", analyticsHandler.PredictAttrition)
				})
			})
		})
	})
	return r
}
