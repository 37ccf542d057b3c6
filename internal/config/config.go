package config

import (
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port          string
	DBPath        string
	MigrationsDir string
	UploadDir     string
	JWTKey        []byte
	TokenTTL      time.Duration

	// AMQPURL enables the order-event publisher when set.
	AMQPURL       string
	OrderExchange string
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Port:          getEnv("PORT", "3001"),
		DBPath:        getEnv("DB_PATH", "./slugma.db"),
		MigrationsDir: getEnv("MIGRATIONS_DIR", "migrations"),
		UploadDir:     getEnv("UPLOAD_DIR", "static/uploads"),
		AMQPURL:       getEnv("AMQP_URL", ""),
		OrderExchange: getEnv("ORDER_EXCHANGE", "order_events"),
	}

	// JWT signing key (critical for security)
	jwtKeyStr := os.Getenv("JWT_SECRET")
	if jwtKeyStr == "" {
		slog.Warn("JWT_SECRET environment variable not set. Generating a random key for development. All tokens will be invalid on restart. PLEASE SET JWT_SECRET IN PRODUCTION!")
		cfg.JWTKey = generateRandomBytes(32)
	} else {
		decodedKey, err := base64.StdEncoding.DecodeString(jwtKeyStr)
		if err != nil || len(decodedKey) < 32 {
			slog.Warn("JWT_SECRET is invalid or too short (min 32 bytes recommended). Generating a random key for development. PLEASE SET A SECURE JWT_SECRET IN PRODUCTION!")
			cfg.JWTKey = generateRandomBytes(32)
		} else {
			cfg.JWTKey = decodedKey
		}
	}

	ttlStr := getEnv("TOKEN_TTL", "24h")
	ttl, err := time.ParseDuration(ttlStr)
	if err != nil || ttl <= 0 {
		slog.Error("Invalid TOKEN_TTL. Falling back to default.", "TOKEN_TTL", ttlStr)
		ttl = 24 * time.Hour
	}
	cfg.TokenTTL = ttl

	// Make sure port is valid
	if _, err := strconv.Atoi(cfg.Port); err != nil {
		slog.Error("Invalid PORT environment variable. Falling back to default.", "PORT", os.Getenv("PORT"))
		cfg.Port = "3001"
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// generateRandomBytes generates a random byte slice of specified length
// Uses crypto/rand for secure random numbers.
func generateRandomBytes(n int) []byte {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		slog.Error("Failed to read random bytes", "error", err)
		// Fallback to a less secure key if crypto/rand fails. Only here to
		// avoid a panic, never for production use.
		fallbackKey := "fallback-insecure-key-" + strconv.FormatInt(time.Now().UnixNano(), 10)
		if len(fallbackKey) < n {
			paddedKey := make([]byte, n)
			copy(paddedKey, fallbackKey)
			return paddedKey
		}
		return []byte(fallbackKey)[:n]
	}
	return b
}
