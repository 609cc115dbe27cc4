package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server    ServerConfig
	Catalog   CatalogConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	Query     QueryConfig
	Assistant AssistantConfig
	Speech    SpeechConfig
	OTEL      OTELConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// CatalogConfig selects where the catalog snapshot is loaded from at startup
type CatalogConfig struct {
	Source string // "embedded" or "postgres"
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// QueryConfig holds the proximity query defaults. Conversational queries use
// the chat radius/limit; the map view uses the wider map radius/limit.
type QueryConfig struct {
	ChatRadiusKm float64
	ChatLimit    int
	MapRadiusKm  float64
	MapLimit     int
	SearchLimit  int
}

// AssistantConfig holds assistant defaults, including the fallback location
// used when a request carries no coordinate.
type AssistantConfig struct {
	DefaultLatitude  float64
	DefaultLongitude float64
	CacheTTLSeconds  int
}

// SpeechConfig holds speech-synthesis collaborator configuration
type SpeechConfig struct {
	Provider string // "espeak", "mock" or "disabled"
	Command  string
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Catalog: CatalogConfig{
			Source: getEnv("CATALOG_SOURCE", "embedded"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "petcare"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		Query: QueryConfig{
			ChatRadiusKm: getEnvAsFloat("QUERY_CHAT_RADIUS_KM", 15),
			ChatLimit:    getEnvAsInt("QUERY_CHAT_LIMIT", 5),
			MapRadiusKm:  getEnvAsFloat("QUERY_MAP_RADIUS_KM", 50),
			MapLimit:     getEnvAsInt("QUERY_MAP_LIMIT", 30),
			SearchLimit:  getEnvAsInt("QUERY_SEARCH_LIMIT", 50),
		},
		Assistant: AssistantConfig{
			DefaultLatitude:  getEnvAsFloat("ASSISTANT_DEFAULT_LAT", 14.5995),
			DefaultLongitude: getEnvAsFloat("ASSISTANT_DEFAULT_LNG", 120.9842),
			CacheTTLSeconds:  getEnvAsInt("ASSISTANT_CACHE_TTL_SECONDS", 300),
		},
		Speech: SpeechConfig{
			Provider: getEnv("SPEECH_PROVIDER", "espeak"),
			Command:  getEnv("SPEECH_COMMAND", "espeak-ng"),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "petcare-assistant"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
	}, nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// DefaultLocation returns the configured fallback coordinate as lat, lng
func (c *AssistantConfig) DefaultLocation() (float64, float64) {
	return c.DefaultLatitude, c.DefaultLongitude
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
