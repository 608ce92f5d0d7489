package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/trazai/lojista-service/internal/app/background"
	"github.com/trazai/lojista-service/internal/config"
	httpdelivery "github.com/trazai/lojista-service/internal/delivery/http"
	"github.com/trazai/lojista-service/internal/delivery/http/handlers"
	"github.com/trazai/lojista-service/internal/infrastructure/kafka"
	"github.com/trazai/lojista-service/internal/infrastructure/metrics"
	"github.com/trazai/lojista-service/internal/infrastructure/migrate"
	"github.com/trazai/lojista-service/internal/infrastructure/notifier"
	"github.com/trazai/lojista-service/internal/infrastructure/postgres"
	"github.com/trazai/lojista-service/internal/infrastructure/postgres/repository"
	"github.com/trazai/lojista-service/internal/usecase"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.StoreDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.StoreDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Init repos
	storeRepo := repository.NewDefaultStoreRepository(db)
	orderRepo := repository.NewDefaultOrderRepository(db)

	// Store lifecycle events
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	storeEventPublisher := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.Topic)

	// Admin notification channel
	adminNotifier := notifier.NewWebhookNotifier(cfg.AdminWebhook.URL)

	// Sweep metrics
	commissionMetrics := metrics.NewCommissionMetrics()

	// Init usecases
	storeUC := usecase.NewDefaultStoreUsecase(storeRepo)
	orderUC := usecase.NewDefaultOrderUsecase(orderRepo)
	commissionUC := usecase.NewDefaultCommissionUsecase(
		orderRepo,
		storeRepo,
		adminNotifier,
		storeEventPublisher,
		commissionMetrics,
		cfg.CommissionPolicy.WarnAfterDays,
		cfg.CommissionPolicy.BlockAfterDays,
		logger,
	)

	// Commission policy scheduler
	scheduler := background.NewCommissionScheduler(commissionUC, cfg.CommissionPolicy.SweepInterval, logger)
	go scheduler.Start(context.Background())

	// HTTP server
	storeHandler := handlers.NewStoreHandler(storeUC)
	orderHandler := handlers.NewOrderHandler(orderUC)
	commissionHandler := handlers.NewCommissionHandler(commissionUC, scheduler)

	router := httpdelivery.NewRouter(storeUC, storeHandler, orderHandler, commissionHandler)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("HTTP server started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
