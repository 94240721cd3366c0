package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2025-09-26"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	// Check if all expected strings are present
	if !contains(output, "version v1.0.0") ||
		!contains(output, "commit abcd1234") ||
		!contains(output, "build 2025-09-26") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()
	os.Setenv("CURRENCY_API_URL", "https://api.example.com/v3")
	os.Setenv("CURRENCY_API_KEY", "test-key")

	appHost, appPort, logLevel,
		apiURL, apiKey, apiTimeout,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		conversionTTL, currenciesTTL,
		kafkaAddr, kafkaTopic,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if appHost != "localhost" || appPort != "8080" || logLevel != "info" {
		t.Errorf("unexpected app config: %v/%v/%v", appHost, appPort, logLevel)
	}

	// Rate provider
	if apiURL != "https://api.example.com/v3" || apiKey != "test-key" || apiTimeout != 10*time.Second {
		t.Errorf("unexpected provider config: %v/%v/%v", apiURL, apiKey, apiTimeout)
	}

	// Redis
	if redisHost != "localhost" || redisPort != 6379 || redisDB != 0 || redisPassword != "" ||
		redisPoolSize != 10 || redisMinIdleConns != 2 {
		t.Errorf("unexpected redis config")
	}

	// Cache TTLs
	if conversionTTL != 300*time.Second || currenciesTTL != 86400*time.Second {
		t.Errorf("unexpected cache TTL config: %v/%v", conversionTTL, currenciesTTL)
	}

	// Kafka
	if kafkaAddr != "" || kafkaTopic != "conversions" {
		t.Errorf("unexpected kafka config: %v/%v", kafkaAddr, kafkaTopic)
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("CURRENCY_API_URL", "https://rates.example.com/v3")
	os.Setenv("CURRENCY_API_KEY", "supersecret")
	os.Setenv("CURRENCY_API_TIMEOUT_SECOND", "5")

	os.Setenv("REDIS_HOST", "redis.example.com")
	os.Setenv("REDIS_PORT", "6380")
	os.Setenv("REDIS_DB", "2")
	os.Setenv("REDIS_PASSWORD", "redispass")
	os.Setenv("REDIS_POOL_SIZE", "15")
	os.Setenv("REDIS_MIN_IDLE_CONNS", "5")

	os.Setenv("CONVERSION_CACHE_TTL_SECOND", "120")
	os.Setenv("CURRENCIES_CACHE_TTL_SECOND", "3600")

	os.Setenv("KAFKA_ADDR", "kafka.example.com:9092")
	os.Setenv("KAFKA_TOPIC", "fx-events")

	appHost, appPort, logLevel,
		apiURL, apiKey, apiTimeout,
		redisHost, redisPort, redisDB, redisPassword,
		redisPoolSize, redisMinIdleConns,
		conversionTTL, currenciesTTL,
		kafkaAddr, kafkaTopic,
		err := parseConfig("nonexistent.env")

	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Check all variables
	if appHost != "127.0.0.1" || appPort != "9090" || logLevel != "debug" {
		t.Errorf("unexpected app config")
	}
	if apiURL != "https://rates.example.com/v3" || apiKey != "supersecret" || apiTimeout != 5*time.Second {
		t.Errorf("unexpected provider config")
	}
	if redisHost != "redis.example.com" || redisPort != 6380 || redisDB != 2 || redisPassword != "redispass" ||
		redisPoolSize != 15 || redisMinIdleConns != 5 {
		t.Errorf("unexpected redis config")
	}
	if conversionTTL != 120*time.Second || currenciesTTL != 3600*time.Second {
		t.Errorf("unexpected cache TTL config")
	}
	if kafkaAddr != "kafka.example.com:9092" || kafkaTopic != "fx-events" {
		t.Errorf("unexpected kafka config")
	}
}

func TestParseConfig_MissingAPIURL(t *testing.T) {
	resetEnv()
	os.Setenv("CURRENCY_API_KEY", "test-key")

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for missing CURRENCY_API_URL, got nil")
	}
}

func TestParseConfig_MissingAPIKey(t *testing.T) {
	resetEnv()
	os.Setenv("CURRENCY_API_URL", "https://api.example.com/v3")

	_, _, _, _, _, _, _, _, _, _, _, _, _, _, _, _, err := parseConfig("nonexistent.env")
	if err == nil {
		t.Fatal("expected error for missing CURRENCY_API_KEY, got nil")
	}
}

// ------------------ Mock rate provider ------------------

// startMockProvider serves the currencies and historical-rates endpoints
// with fixed payloads.
func startMockProvider() *httptest.Server {
	mux := http.NewServeMux()
	mux.HandleFunc("/v3/currencies", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"USD": map[string]any{"code": "USD", "name": "US Dollar", "symbol": "$"},
				"EUR": map[string]any{"code": "EUR", "name": "Euro", "symbol": "€"},
			},
		})
	})
	mux.HandleFunc("/v3/historical", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{
				"EUR": map[string]any{"code": "EUR", "value": 0.85},
			},
			"meta": map[string]any{"last_updated_at": "2024-06-14T23:59:59Z"},
		})
	})
	return httptest.NewServer(mux)
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	// ------------------ Mock rate provider ------------------
	provider := startMockProvider()
	defer provider.Close()

	// ------------------ Run ------------------
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx,
			"127.0.0.1", "8086", "debug", // appHost, appPort, logLevel
			provider.URL, "testkey", 5*time.Second, // rate provider
			redisHost, redisPort.Int(), 0, "", 10, 2, // Redis
			300*time.Second, 86400*time.Second, // cache TTLs
			"", "conversions", // Kafka disabled
		)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
		t.Log("run completed successfully")
	}
}
