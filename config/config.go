package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port           string
	AllowedOrigins []string

	// cache backing store: "postgres", "redis", "memory" or "none"
	CacheBackend  string
	CacheTable    string
	DBUri         string
	RedisURL      string
	RedisPassword string

	DBMaxOpenConns       int
	DBMaxIdleConns       int
	DBConnMaxLifetimeMin int

	SearchDepth int
	ZobristSeed int64
}

var AppConfig *Config

func LoadConfig() *Config {
	port := GetEnv("PORT", "8080")
	frontendURL := GetEnv("FRONTEND_URL", "http://localhost:5173")

	// Build allowed origins list (Frontend URL + CSV extras)
	allowedOrigins := []string{frontendURL}
	if extras := GetEnv("ALLOWED_ORIGINS", ""); extras != "" {
		for _, origin := range strings.Split(extras, ",") {
			origin = strings.TrimSpace(origin)
			if origin != "" {
				allowedOrigins = append(allowedOrigins, origin)
			}
		}
	}

	cacheTable := GetEnv("CACHE_TABLE_NAME", "positions")
	if GetEnv("TEST_MODE", "false") == "true" {
		cacheTable = GetEnv("CACHE_TABLE_NAME", "test_positions")
		log.Printf("Running in TEST MODE - using table: %s", cacheTable)
	}

	AppConfig = &Config{
		Port:                 port,
		AllowedOrigins:       allowedOrigins,
		CacheBackend:         strings.ToLower(GetEnv("CACHE_BACKEND", "none")),
		CacheTable:           cacheTable,
		DBUri:                GetEnv("DB_URI", ""),
		RedisURL:             GetEnv("REDIS_URL", "localhost:6379"),
		RedisPassword:        GetEnv("REDIS_PASSWORD", ""),
		DBMaxOpenConns:       GetEnvAsInt("DB_MAX_OPEN_CONNS", 25),
		DBMaxIdleConns:       GetEnvAsInt("DB_MAX_IDLE_CONNS", 25),
		DBConnMaxLifetimeMin: GetEnvAsInt("DB_CONN_MAX_LIFETIME_MINUTES", 5),
		SearchDepth:          GetEnvAsInt("AI_SEARCH_DEPTH", 6),
		ZobristSeed:          GetEnvAsInt64("ZOBRIST_SEED", 42),
	}

	log.Printf("Config loaded: Port=%s, CacheBackend=%s, SearchDepth=%d, AllowedOrigins=%v",
		AppConfig.Port, AppConfig.CacheBackend, AppConfig.SearchDepth, AppConfig.AllowedOrigins)

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
