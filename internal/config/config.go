package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL    string
	APITimeout    time.Duration
	ScamAPIPath   string
	UploadMaxSize int64

	NavbarPollInterval  time.Duration
	SidebarPollInterval time.Duration

	NATSURL         string
	NATSConnTimeout time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	ScanHistoryLimit int

	OTELCollectorURL string
}

func LoadConfig() (*Config, error) {
	config := &Config{
		APIBaseURL:    getEnvString("API_BASE_URL", "https://placements.navgurukul.org/api"),
		APITimeout:    getEnvDuration("API_TIMEOUT", 15*time.Second),
		ScamAPIPath:   getEnvString("SCAM_API_PATH", "/scam-reports/analyze"),
		UploadMaxSize: getEnvInt64("UPLOAD_MAX_SIZE", 5<<20),

		NavbarPollInterval:  getEnvDuration("NAVBAR_POLL_INTERVAL", 30*time.Second),
		SidebarPollInterval: getEnvDuration("SIDEBAR_POLL_INTERVAL", 5*time.Second),

		NATSURL:         getEnvString("NATS_URL", "nats://localhost:4222"),
		NATSConnTimeout: getEnvDuration("NATS_CONN_TIMEOUT", 10*time.Second),

		RedisAddr:     getEnvString("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnvString("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),
		CacheTTL:      getEnvDuration("CACHE_TTL", 24*time.Hour),

		ScanHistoryLimit: getEnvInt("SCAN_HISTORY_LIMIT", 50),

		OTELCollectorURL: getEnvString("OTEL_COLLECTOR_URL", ""),
	}

	return config, nil
}

func getEnvString(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
