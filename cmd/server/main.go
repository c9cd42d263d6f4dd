package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/api-sage/bank-records-api/internal/adapter/http/controller"
	"github.com/api-sage/bank-records-api/internal/adapter/http/router"
	"github.com/api-sage/bank-records-api/internal/adapter/repository/memory"
	"github.com/api-sage/bank-records-api/internal/adapter/repository/postgres"
	"github.com/api-sage/bank-records-api/internal/adapter/repository/repo_interfaces"
	"github.com/api-sage/bank-records-api/internal/config"
	"github.com/api-sage/bank-records-api/internal/usecase/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	var bankRepo repo_interfaces.BankRepository

	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Println("using in-memory record store")
		bankRepo = memory.NewBankRepository()
	default:
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		db, err := postgres.Open(ctx, cfg.DatabaseDSN)
		if err != nil {
			cancel()
			log.Fatalf("open database: %v", err)
		}
		if err := postgres.RunMigrations(ctx, db, cfg.MigrationsDir); err != nil {
			cancel()
			log.Fatalf("run migrations: %v", err)
		}
		cancel()
		defer db.Close()
		bankRepo = postgres.NewBankRepository(db)
	}

	bankService := services.NewBankService(bankRepo)
	bankController := controller.NewBankController(bankService)
	mux := router.New(bankController)

	addr := ":" + cfg.HTTPPort
	log.Printf("bank records api listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatalf("http server: %v", err)
	}
}
