// Package routes wires repositories, services and handlers onto the Fiber
// app.
package routes

import (
	"crebito/internal/handlers"
	"crebito/internal/repositories"
	"crebito/internal/services/ledger"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	accountRepo := repositories.NewAccountRepository(db)
	ledgerService := ledger.NewService(accountRepo, repositories.CacheService, nil)
	transactionHandler := handlers.NewTransactionHandler(ledgerService)

	app.Get("/health", handlers.HealthCheck)

	accounts := app.Group("/accounts")
	accounts.Post("/:id/transactions", transactionHandler.SubmitTransaction)
	accounts.Get("/:id/statement", transactionHandler.GetStatement)
}
