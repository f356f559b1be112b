package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/frahmantamala/finance-tracker/internal/budget"
	"github.com/frahmantamala/finance-tracker/internal/category"
	"github.com/frahmantamala/finance-tracker/internal/dashboard"
	"github.com/frahmantamala/finance-tracker/internal/transaction"
	"github.com/frahmantamala/finance-tracker/internal/transport/middleware"
	"github.com/frahmantamala/finance-tracker/internal/transport/swagger"
	"github.com/go-chi/chi"
)

// RegisterAllRoutes wires middleware and every API route onto the router.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	transactionHandler *transaction.Handler,
	budgetHandler *budget.Handler,
	categoryHandler *category.Handler,
	dashboardHandler *dashboard.Handler,
	logger *slog.Logger,
	allowedOrigins string,
) {
	healthHandler := NewHealthHandler(db)

	// Apply global middleware
	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	// Serve OpenAPI spec at root (outside API prefix)
	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	// Swagger UI route at root
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api", func(r chi.Router) {
		// Health check routes
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/transactions", func(tr chi.Router) {
			tr.Get("/", transactionHandler.ListTransactions)
			tr.Post("/", transactionHandler.CreateTransaction)
			tr.Put("/{id}", transactionHandler.UpdateTransaction)
			tr.Delete("/{id}", transactionHandler.DeleteTransaction)
		})

		r.Route("/budgets", func(br chi.Router) {
			br.Get("/", budgetHandler.GetBudget)
			br.Post("/", budgetHandler.UpsertBudget)
		})

		r.Route("/dashboard", func(dr chi.Router) {
			dr.Get("/stats", dashboardHandler.GetStats)
			dr.Get("/budget-comparison", dashboardHandler.GetBudgetComparison)
			dr.Get("/insights", dashboardHandler.GetInsights)
		})

		r.Get("/categories", categoryHandler.GetCategories)
	})
}
