package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/gw-currency-converter/internal/facades"
	"github.com/sbilibin2017/gw-currency-converter/internal/forms"
	"github.com/sbilibin2017/gw-currency-converter/internal/handlers"
	"github.com/sbilibin2017/gw-currency-converter/internal/logger"
	"github.com/sbilibin2017/gw-currency-converter/internal/middlewares"
	"github.com/sbilibin2017/gw-currency-converter/internal/repositories"
	"github.com/sbilibin2017/gw-currency-converter/internal/services"
	"github.com/sbilibin2017/gw-currency-converter/internal/store"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title gw-currency-converter API
// @version 1.0.0
// @description Gateway for currency conversion backed by an external exchange-rate provider
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		apiURL, apiKey, apiTimeout,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		conversionTTL, currenciesTTL,
		kafkaAddr, kafkaTopic,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		apiURL, apiKey, apiTimeout,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		conversionTTL, currenciesTTL,
		kafkaAddr, kafkaTopic,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, provider, Redis, cache, and Kafka configuration. The
// provider base URL and API key are required; startup fails without them.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	apiURL, apiKey string, apiTimeout time.Duration,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	conversionTTL, currenciesTTL time.Duration,
	kafkaAddr, kafkaTopic string,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// Rate provider config
	apiURL = getEnv("CURRENCY_API_URL", "")
	apiKey = getEnv("CURRENCY_API_KEY", "")
	if apiURL == "" {
		err = errors.New("CURRENCY_API_URL is required")
		return
	}
	if apiKey == "" {
		err = errors.New("CURRENCY_API_KEY is required")
		return
	}
	var apiTimeoutSecond int
	if apiTimeoutSecond, err = strconv.Atoi(getEnv("CURRENCY_API_TIMEOUT_SECOND", "10")); err != nil {
		return
	}
	apiTimeout = time.Duration(apiTimeoutSecond) * time.Second

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	if redisPoolSize, err = strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10")); err != nil {
		return
	}
	if redisMinIdleConns, err = strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2")); err != nil {
		return
	}

	// Cache TTL config
	var conversionTTLSecond, currenciesTTLSecond int
	if conversionTTLSecond, err = strconv.Atoi(getEnv("CONVERSION_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	if currenciesTTLSecond, err = strconv.Atoi(getEnv("CURRENCIES_CACHE_TTL_SECOND", "86400")); err != nil {
		return
	}
	conversionTTL = time.Duration(conversionTTLSecond) * time.Second
	currenciesTTL = time.Duration(currenciesTTLSecond) * time.Second

	// Kafka config (optional; empty address disables event publishing)
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "conversions")

	return
}

// run initializes the logger, Redis, Kafka, the provider facade and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	apiURL, apiKey string, apiTimeout time.Duration,
	redisHost string, redisPort, redisDB int, redisPassword string,
	redisPoolSize, redisMinIdleConns int,
	conversionTTL, currenciesTTL time.Duration,
	kafkaAddr, kafkaTopic string,
) error {
	// Initialize logger
	log, err := logger.New(logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer log.Sync()
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password:     redisPassword,
		DB:           redisDB,
		PoolSize:     redisPoolSize,
		MinIdleConns: redisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		log.Fatal("Redis connection error:", err)
	}
	defer rdb.Close()

	// Kafka writer for conversion events (optional)
	var events services.ConversionEventWriter
	if kafkaAddr != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		events = writer
		log.Infof("Publishing conversion events to Kafka at %s, topic %s", kafkaAddr, kafkaTopic)
	}

	// Provider facade
	currencyAPI := facades.NewCurrencyAPIFacade(apiURL, apiKey, apiTimeout)

	// Repositories
	conversionCache := repositories.NewConversionCacheRepository(rdb, conversionTTL)
	currencyCache := repositories.NewCurrencyCacheRepository(rdb, currenciesTTL)

	// Services
	conversionService := services.NewConversionService(currencyAPI, events)
	currenciesService := services.NewCurrenciesService(currencyAPI, currencyCache)

	// Form sessions share the conversion service; each session owns an
	// isolated result store backed by the shared Redis cache.
	sessionManager := handlers.NewSessionManager(func() *handlers.FormSession {
		s := store.NewConversionStore(conversionService, conversionCache)
		return &handlers.FormSession{
			Form:  forms.New(s),
			Store: s,
		}
	})

	// Handlers
	convertHandler := handlers.NewConvertHandler(conversionService)
	currenciesHandler := handlers.NewGetCurrenciesHandler(currenciesService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/convert", convertHandler)
		r.Get("/currencies", currenciesHandler)

		r.Post("/form", handlers.NewCreateFormSessionHandler(sessionManager))
		r.Get("/form/{sessionID}", handlers.NewGetFormStateHandler(sessionManager))
		r.Put("/form/{sessionID}/fields", handlers.NewUpdateFormFieldsHandler(sessionManager))
		r.Post("/form/{sessionID}/swap", handlers.NewSwapFormCurrenciesHandler(sessionManager))
		r.Post("/form/{sessionID}/submit", handlers.NewSubmitFormHandler(sessionManager))
		r.Post("/form/{sessionID}/retry", handlers.NewRetryFormHandler(sessionManager))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
