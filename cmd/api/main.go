package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/hris-insights-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hris-insights-go/internal/handler/http"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/ai"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/clock"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/cron"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-insights-go/internal/pkg/jwt"
	"github.com/cmlabs-hris/hris-insights-go/internal/repository/postgresql"
	analyticsService "github.com/cmlabs-hris/hris-insights-go/internal/service/analytics"
	employeeService "github.com/cmlabs-hris/hris-insights-go/internal/service/employee"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logger := appHTTP.NewLogger(cfg.App)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	balanceRepo := postgresql.NewLeaveBalanceRepository(db)
	goalRepo := postgresql.NewGoalRepository(db)
	reviewRepo := postgresql.NewReviewRepository(db)

	completer := ai.NewCompleter(cfg.AI)
	if !ai.IsConfigured(completer) {
		slog.Info("AI_API_KEY not set, analytics will use heuristic scoring only")
	}
	clk := clock.System()

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	empService := employeeService.NewEmployeeService(employeeRepo)
	anomalyService := analyticsService.NewAnomalyService(
		attendanceRepo,
		leaveRepo,
		balanceRepo,
		goalRepo,
		employeeRepo,
		completer,
		cfg.Analytics,
		clk,
	)
	attritionService := analyticsService.NewAttritionService(leaveRepo, goalRepo, completer, cfg.Analytics, clk)
	feedbackService := analyticsService.NewFeedbackService(completer)
	insightsService := analyticsService.NewInsightsService(employeeRepo, goalRepo, leaveRepo, reviewRepo, clk)

	analyticsHandler := appHTTP.NewAnalyticsHandler(
		empService,
		anomalyService,
		attritionService,
		feedbackService,
		insightsService,
	)
	router := appHTTP.NewRouter(cfg.App, logger, JWTService, analyticsHandler)

	scheduler := cron.NewScheduler()
	// A scan may wait on the completer and then fall back, so give it room for both
	jobs := cron.NewAnalyticsJobs(anomalyService, cfg.Analytics.ScanInterval, 2*cfg.AI.Timeout+time.Minute)
	if err := jobs.RegisterJobs(scheduler); err != nil {
		return fmt.Errorf("error registering cron jobs: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		slog.Info("Server running", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
		slog.Info("Shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	slog.Info("Server stopped")
	return nil
}
