package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port           string
	AllowedOrigins []string

	DatabaseURL          string
	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int
	HistoryRetentionDays int

	RedisURL      string
	RedisPassword string
	WinCacheTTL   time.Duration

	KafkaBrokers  []string
	KafkaTopic    string
	KafkaUser     string
	KafkaPassword string

	CaptureURL     string
	CaptureTimeout time.Duration

	JWTSecret     string
	BotRandomSeed int64
	DefaultPlayer int
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8734")

	// CPEE calls us server-to-server; browsers only need the watch page
	allowedOrigins := append([]string{"http://localhost:5173"}, GetEnvAsList("ALLOWED_ORIGINS")...)

	dbURL := GetEnv("DATABASE_URL", "")
	dbMaxOpenConns := GetEnvAsInt("DB_MAX_OPEN_CONNS", 10)
	dbMaxIdleConns := GetEnvAsInt("DB_MAX_IDLE_CONNS", 10)
	dbConnMaxLifetimeMin := GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5)
	retentionDays := GetEnvAsInt("HISTORY_RETENTION_DAYS", 30)

	winCacheTTLMin := GetEnvAsInt("WIN_CACHE_TTL_MINUTES", 60)

	// the camera host of the physical board
	captureURL := GetEnv("CAPTURE_URL", "http://131.159.6.7:9547/capture_board")
	captureTimeoutSec := GetEnvAsInt("CAPTURE_TIMEOUT_SECONDS", 90)

	defaultPlayer := GetEnvAsInt("BOT_PLAYER", 2)
	if defaultPlayer != 1 && defaultPlayer != 2 {
		log.Printf("Invalid BOT_PLAYER %d, using 2", defaultPlayer)
		defaultPlayer = 2
	}

	AppConfig = &Config{
		Port:                 port,
		AllowedOrigins:       allowedOrigins,
		DatabaseURL:          dbURL,
		DBMaxOpenConns:       dbMaxOpenConns,
		DBMaxIdleConns:       dbMaxIdleConns,
		DBConnMaxLifetimeMin: dbConnMaxLifetimeMin,
		HistoryRetentionDays: retentionDays,
		RedisURL:             GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:        GetEnv("REDIS_PASSWORD", ""),
		WinCacheTTL:          time.Duration(winCacheTTLMin) * time.Minute,
		KafkaBrokers:         GetEnvAsList("KAFKA_BROKERS"),
		KafkaTopic:           GetEnv("KAFKA_TOPIC", "board-analytics"),
		KafkaUser:            GetEnv("KAFKA_USER", ""),
		KafkaPassword:        GetEnv("KAFKA_PASSWORD", ""),
		CaptureURL:           captureURL,
		CaptureTimeout:       time.Duration(captureTimeoutSec) * time.Second,
		JWTSecret:            GetEnv("JWT_SECRET", "your-secret-key-change-this-in-production"),
		BotRandomSeed:        GetEnvAsInt64("BOT_RANDOM_SEED", 0),
		DefaultPlayer:        defaultPlayer,
	}

	return AppConfig
}

func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

func GetEnvAsInt64(key string, defaultValue int64) int64 {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		log.Printf("Invalid integer value for %s: %s, using default: %d", key, valueStr, defaultValue)
		return defaultValue
	}
	return value
}

// GetEnvAsList splits a comma separated variable, dropping blank entries.
func GetEnvAsList(key string) []string {
	var out []string
	for _, item := range strings.Split(os.Getenv(key), ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
