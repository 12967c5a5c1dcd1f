package config

import (
	"os"
	"strconv"
)

// Config captures the runtime configuration for the Aora client.
type Config struct {
	Endpoint          string
	Platform          string
	ProjectID         string
	DatabaseID        string
	UserCollectionID  string
	VideoCollectionID string
	StorageID         string
	LogLevel          string
	RequestRate       float64
	SessionFile       string
}

// Load reads configuration from environment variables, applying the defaults
// the mobile app ships with while allowing overrides through the environment.
func Load() (Config, error) {
	cfg := Config{
		Endpoint:          getString("AORA_ENDPOINT", "https://cloud.appwrite.io/v1"),
		Platform:          getString("AORA_PLATFORM", "com.jsm.aora"),
		ProjectID:         getString("AORA_PROJECT_ID", "66b1d6ba002576194b59"),
		DatabaseID:        getString("AORA_DATABASE_ID", "66b1d8ad000c771d1fd6"),
		UserCollectionID:  getString("AORA_USER_COLLECTION_ID", "66b1d8d4002fc07dd832"),
		VideoCollectionID: getString("AORA_VIDEO_COLLECTION_ID", "66b1d8f10036dabfc6c2"),
		StorageID:         getString("AORA_STORAGE_ID", "66b1e1f300287747cbc9"),
		LogLevel:          getString("AORA_LOG_LEVEL", "info"),
		RequestRate:       getFloat("AORA_REQUEST_RATE", 10),
		SessionFile:       getString("AORA_SESSION_FILE", defaultSessionFile()),
	}

	return cfg, nil
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ".aora-session"
	}
	return dir + "/aora/session"
}

func getString(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return f
}
