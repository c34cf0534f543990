package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/nicholasjackson/env"
	"github.com/paklog/product-catalog/internal/domain"
	"github.com/paklog/product-catalog/internal/events"
	"github.com/paklog/product-catalog/internal/repository"
	"github.com/paklog/product-catalog/internal/service"
	httpTransport "github.com/paklog/product-catalog/internal/transport/http"
	websocketTransport "github.com/paklog/product-catalog/internal/transport/websocket"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Environment variables
var (
	bindAddress = env.String("BIND_ADDRESS", false,
		":9090", "Bind address for the server")
	logLevel = env.String("LOG_LEVEL", false,
		"debug", "Log output level for the server [debug, info, trace]")
	mongoURI = env.String("MONGO_URI", false,
		"", "MongoDB connection string; uses the in-memory repository when empty")
	mongoDatabase = env.String("MONGO_DATABASE", false,
		"product_catalog", "MongoDB database name")
	eventWorkers = env.Int("EVENT_WORKERS", false,
		4, "Number of event publishing workers")
	eventQueueSize = env.Int("EVENT_QUEUE_SIZE", false,
		64, "Capacity of the event batch queue")
)

func main() {
	env.Parse()

	// Initialize the logger
	logger := hclog.New(&hclog.LoggerOptions{
		Name:  "product-catalog",
		Level: hclog.LevelFromString(*logLevel),
	})

	// Create a standard logger for the HTTP server
	standardLogger := logger.StandardLogger(&hclog.StandardLoggerOptions{InferLevels: true})

	// Choose the repository implementation
	repo := repository.NewMemoryProductRepository()
	if *mongoURI != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		client, err := mongo.Connect(ctx, options.Client().ApplyURI(*mongoURI))
		cancel()
		if err != nil {
			logger.Error("Failed to connect to MongoDB", "error", err)
			os.Exit(1)
		}
		defer func() {
			disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer disconnectCancel()
			client.Disconnect(disconnectCtx)
		}()

		repo = repository.NewMongoProductRepository(
			client.Database(*mongoDatabase),
			logger.Named("mongo-repository"),
		)
		logger.Info("Using MongoDB repository", "database", *mongoDatabase)
	} else {
		logger.Info("Using in-memory repository")
	}

	// The bus fans published events out to websocket subscribers; the log
	// publisher records every event for operational visibility.
	bus := events.NewBus(logger.Named("event-bus"))
	publisher := events.NewMultiPublisher(
		events.NewLogPublisher(logger.Named("event-publisher")),
		events.NewBusPublisher(bus),
	)

	processor := events.NewProcessor(
		publisher,
		logger.Named("event-processor"),
		*eventWorkers,
		*eventQueueSize,
	)

	ps := service.NewProductService(
		repo,
		processor,
		logger.Named("product-service"),
	)

	validation := domain.NewValidation()

	ph := httpTransport.NewProductHandler(ps, validation, logger.Named("http-handler"))
	wsh := websocketTransport.NewHandler(logger.Named("websocket-handler"), bus)

	router := httpTransport.NewRouter(ph, logger, wsh)

	server := &http.Server{
		Addr:         *bindAddress,
		Handler:      router,
		ErrorLog:     standardLogger,
		IdleTimeout:  120 * time.Second,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	// Start the server in a new goroutine
	go func() {
		logger.Info("Starting server", "bind_address", *bindAddress)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Error starting server", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt)
	<-sigChan
	logger.Info("Shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	server.Shutdown(shutdownCtx)

	// Stop accepting new work, then wait for in-flight event publications
	if err := ps.Close(); err != nil {
		logger.Error("Error closing product service", "error", err)
	}
}
