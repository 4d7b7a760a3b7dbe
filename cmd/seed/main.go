// Command seed provisions the fixed account set. It is idempotent: rows
// that already exist keep their balance and history.
package main

import (
	"log"

	"crebito/internal/config"
	"crebito/internal/models"
	"crebito/internal/repositories"
)

// The provisioned accounts and their credit limits, in minor units.
var accounts = []models.Account{
	{ID: 1, Balance: 0, CreditLimit: 100000},
	{ID: 2, Balance: 0, CreditLimit: 80000},
	{ID: 3, Balance: 0, CreditLimit: 1000000},
	{ID: 4, Balance: 0, CreditLimit: 10000000},
	{ID: 5, Balance: 0, CreditLimit: 500000},
}

func main() {
	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				log.Printf("Failed to get database instance: %v", err)
				return
			}
			if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close database connection: %v", err)
			}
		}
	}()

	if err := repositories.SeedAccounts(accounts); err != nil {
		log.Fatalf("Failed to seed accounts: %v", err)
	}
	log.Printf("Provisioned %d accounts", len(accounts))
}
