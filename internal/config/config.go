package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	APIBaseURL     string
	VAPIDPublicKey string
	ServerPort     string

	RedisAddr  string
	SessionTTL time.Duration

	// Fallback coordinate used when geolocation acquisition fails.
	DefaultLat float64
	DefaultLng float64

	Timezone        string
	LocationTimeout time.Duration
	SearchDebounce  time.Duration
}

func Load() *Config {
	return &Config{
		APIBaseURL:     getEnv("API_BASE_URL", "http://localhost:5000"),
		VAPIDPublicKey: getEnv("VAPID_PUBLIC_KEY", ""),
		ServerPort:     getEnv("SERVER_PORT", "8080"),

		RedisAddr:  getEnv("REDIS_ADDR", ""),
		SessionTTL: getDuration("SESSION_TTL_MINUTES", 30) * time.Minute,

		DefaultLat: getFloat("DEFAULT_LAT", 19.0760),
		DefaultLng: getFloat("DEFAULT_LNG", 72.8777),

		Timezone:        getEnv("CLIENT_TIMEZONE", "Asia/Kolkata"),
		LocationTimeout: getDuration("LOCATION_TIMEOUT_SECONDS", 10) * time.Second,
		SearchDebounce:  getDuration("SEARCH_DEBOUNCE_MS", 500) * time.Millisecond,
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getFloat(key string, def float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return def
}

func getDuration(key string, def int64) time.Duration {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return time.Duration(n)
		}
	}
	return time.Duration(def)
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
