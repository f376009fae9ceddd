package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	_ "time/tzdata"

	"household-budget/internal/config"
	"household-budget/internal/database"
	"household-budget/internal/handlers"
	"household-budget/internal/middleware"
	"household-budget/internal/repositories"
	"household-budget/internal/services"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.App)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
}

func newLogger(app config.AppConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: app.SlogLevel()}
	if app.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

func run(cfg *config.Config, logger *slog.Logger) error {
	db, err := database.Initialize(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	store := repositories.NewStore(db.DB)
	metrics := services.NewPrometheusMetrics()
	location := cfg.App.Location

	categoryService := services.NewCategoryService(store.Categories(), logger)
	budgetService := services.NewBudgetService(store.Budgets(), metrics, logger)
	monthlyBudgetService := services.NewMonthlyBudgetService(store.MonthlyBudgets(), store.Categories(), metrics, logger)
	expenseService := services.NewExpenseService(store.Expenses(), location, nil, metrics, logger)
	exportService := services.NewExportService(store.Expenses(), metrics, logger)
	summaryService := services.NewSummaryService(store.Budgets(), store.MonthlyBudgets(), store.Expenses(), location, nil, metrics, logger)
	reconciliationService := services.NewReconciliationService(store, nil, metrics, logger)

	if cfg.App.SeedOnStartup {
		seeder := services.NewSeeder(categoryService, monthlyBudgetService, summaryService, metrics, logger)
		if _, err := seeder.Seed(); err != nil {
			return err
		}
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.HTTPErrorHandler = middleware.CustomHTTPErrorHandler
	e.Validator = handlers.NewValidator()

	rateLimiter := middleware.NewRateLimiter(float64(cfg.Server.RateLimitPerSecond), cfg.Server.RateLimitBurst)
	stopCleanup := make(chan struct{})
	defer close(stopCleanup)
	go rateLimiter.RunCleanup(stopCleanup)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(logger))
	e.Use(middleware.PanicRecovery())
	e.Use(middleware.SecurityHeaders())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.Server.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, middleware.TraceIDHeader},
	}))
	e.Use(rateLimiter.Middleware())

	routes := handlers.Handlers{
		Health:         handlers.NewHealthCheckHandler(db.DB),
		Budget:         handlers.NewBudgetHandler(budgetService),
		MonthlyBudget:  handlers.NewMonthlyBudgetHandler(monthlyBudgetService),
		Expense:        handlers.NewExpenseHandler(expenseService, exportService),
		Category:       handlers.NewCategoryHandler(categoryService),
		Summary:        handlers.NewSummaryHandler(summaryService),
		Reconciliation: handlers.NewReconciliationHandler(reconciliationService),
	}
	if cfg.IsDevelopment() {
		routes.Dev = handlers.NewDevHandler(expenseService, services.NewSampleExpenseGenerator(0))
	}
	handlers.RegisterRoutes(e, cfg.Server.APIPrefix, routes)

	srv := &http.Server{
		Addr:              cfg.Address(),
		Handler:           e,
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		MaxHeaderBytes:    1 << 16,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("starting household-budget server",
			"addr", srv.Addr,
			"env", cfg.App.Environment,
			"timezone", cfg.App.Timezone,
			"db_driver", cfg.Database.Driver,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
		logger.Info("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Info("server stopped gracefully")
	return nil
}
