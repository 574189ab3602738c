package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"alertmon/internal/config"
	"alertmon/internal/database"
	"alertmon/internal/engine"
	"alertmon/internal/events"
	"alertmon/internal/handlers"
	"alertmon/internal/ingest"
	"alertmon/internal/metrics"
	"alertmon/internal/notify"
	"alertmon/internal/repository"
	"alertmon/internal/rules"
	"alertmon/internal/server"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database connection
	db, err := database.NewConnection(cfg.Db)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	fmt.Printf("Connected to database: %s:%d/%s\n",
		cfg.Db.Host, cfg.Db.Port, cfg.Db.Database)

	m := metrics.NewMetrics()

	// Rules
	ruleList, err := cfg.BuildRules()
	if err != nil {
		log.Fatalf("Failed to build rules: %v", err)
	}
	ruleStore := rules.NewStore(ruleList...)
	log.Printf("Loaded %d alert rules", len(ruleList))

	// Repositories
	alertRepo := repository.NewPostgresAlertRepository(db)
	healthChecker := repository.NewPostgresHealthChecker(db)

	// Notifications
	var notifier engine.Notifier
	if cfg.Slack.Enabled {
		sender, err := notify.NewSlackSender(cfg.Slack)
		if err != nil {
			log.Fatalf("Failed to initialize Slack: %v", err)
		}
		breaker := notify.NewCircuitBreaker(cfg.Slack.CircuitBreaker, m)
		notifier = notify.NewNotifier(sender, breaker, cfg.Slack)
	}

	// Event bus
	publisher := events.NewKafkaPublisher(cfg.Kafka.Brokers, cfg.Kafka.EventsTopic)
	defer publisher.Close()

	// Engine
	eng := engine.New(engine.Options{
		SimilarityThreshold: cfg.Engine.SimilarityThreshold,
		SweepInterval:       cfg.Engine.SweepInterval,
		ResolvedRetention:   cfg.Engine.ResolvedRetention,
		PendingCeiling:      cfg.Engine.PendingCeiling,
	}, alertRepo, ruleStore, notifier, publisher, m)

	if err := eng.Restore(); err != nil {
		log.Fatalf("Failed to restore engine state: %v", err)
	}
	eng.Start()
	defer eng.Stop()

	// Tracing
	tracer, closeTracer, err := ingest.InitTracer("alertmon", cfg.Tracing.CollectorEndpoint)
	if err != nil {
		log.Fatalf("Failed to initialize Jaeger tracer: %v", err)
	}
	defer closeTracer()

	// Sample ingestion
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := ingest.NewConsumer(cfg.Kafka.Brokers, cfg.Kafka.SamplesTopic, cfg.Kafka.GroupID,
		eng, ruleStore, tracer)
	defer consumer.Close()

	go func() {
		if err := consumer.Run(ctx); err != nil {
			log.Printf("Sample consumer stopped: %v", err)
		}
	}()

	go func() {
		sigs := make(chan os.Signal, 1)
		signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
		<-sigs
		log.Println("Received termination signal, shutting down...")
		cancel()
		os.Exit(0)
	}()

	// Initialize handlers
	alertHandler := handlers.NewAlertHandler(eng)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	// Initialize and start server
	srv := server.New(alertHandler, healthHandler, cfg.Http.Port)

	if err := srv.Start(); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
