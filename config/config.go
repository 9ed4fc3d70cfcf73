package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string

	// Local cache database
	DBPath string

	// Remote backend. When FirestoreProject is empty the app runs with an
	// in-memory remote, which is enough for development and tests.
	FirestoreProject  string
	FirestoreDatabase string
	RemoteTimeout     time.Duration

	// Background sync cadence
	SyncInterval    time.Duration
	SyncMaxInterval time.Duration

	// Start in offline mode (no remote calls until connectivity is flipped)
	StartOffline bool
}

var AppConfig *Config

func Load() {
	_ = godotenv.Load()

	AppConfig = &Config{
		Port:              GetEnv("PORT", "3000"),
		Env:               GetEnv("ENV", "development"),
		DBPath:            GetEnv("DB_PATH", "./data/vitalog.db"),
		FirestoreProject:  GetEnv("FIRESTORE_PROJECT", ""),
		FirestoreDatabase: GetEnv("FIRESTORE_DATABASE", "(default)"),
		RemoteTimeout:     GetDuration("REMOTE_TIMEOUT", 5*time.Second),
		SyncInterval:      GetDuration("SYNC_INTERVAL", 30*time.Second),
		SyncMaxInterval:   GetDuration("SYNC_MAX_INTERVAL", 5*time.Minute),
		StartOffline:      GetBool("START_OFFLINE", false),
	}
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func GetDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func GetBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
