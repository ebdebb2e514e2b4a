package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/fkhayef/pipsplit/docs"
	"github.com/fkhayef/pipsplit/internal/config"
	"github.com/fkhayef/pipsplit/internal/currency"
	"github.com/fkhayef/pipsplit/internal/expense"
	expensesplit "github.com/fkhayef/pipsplit/internal/expense/split"
	"github.com/fkhayef/pipsplit/internal/settlement"
	"github.com/fkhayef/pipsplit/pkg/logger"
	mw "github.com/fkhayef/pipsplit/pkg/middleware"
)

// @title        PipSplit API
// @version      1.0
// @description  Expense allocation and least-transfers settlement.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	// Currency rules are resolved per request, never held globally
	currencies := currency.NewISOProvider(cfg.DefaultCurrency, cfg.CurrencyDecimals)
	if _, err := currencies.Rules(""); err != nil {
		zl.Fatal("invalid default currency", zap.String("currency", cfg.DefaultCurrency), zap.Error(err))
	}

	// Split Strategy Factory (Factory Pattern)
	splitFactory := expensesplit.NewSplitStrategyFactory()

	// Expense allocation feature (with split factory injected)
	expenseService := expense.NewService(splitFactory, currencies)
	expenseHandler := expense.NewHandler(expenseService)

	// Settlement feature
	settlementService := settlement.NewService(currencies)
	settlementHandler := settlement.NewHandler(settlementService)

	currencyHandler := currency.NewHandler(currencies)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(mw.RequestLogger(zl))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/expenses", expenseHandler.Routes())
		r.Mount("/settlements", settlementHandler.Routes())
		r.Mount("/currencies", currencyHandler.Routes())
	})

	// Start server
	port := cfg.Port
	if port == "" {
		port = "8080"
	}

	zl.Info("server starting",
		zap.String("port", port),
		zap.String("default_currency", currencies.DefaultCode()),
	)
	if err := http.ListenAndServe(":"+port, r); err != nil {
		zl.Fatal("server failed", zap.Error(err))
	}
}
