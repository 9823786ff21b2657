// Package config loads application configuration from the environment. A
// .env file in the working directory is applied first when present so local
// development mirrors how the credentials are supplied in deployment. The
// loaded values are opaque connection parameters; nothing here is consulted
// again after startup.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"Music-Info-Go/pkg/lastfm"
)

// LastFM holds the tag provider endpoint and credential.
type LastFM struct {
	APIKey  string
	BaseURL string
}

// Spotify holds the catalog provider credentials used for the client
// credentials token flow.
type Spotify struct {
	ClientID     string
	ClientSecret string
}

// Config bundles everything read from the environment at process start.
type Config struct {
	LastFM   LastFM
	Spotify  Spotify
	LogLevel string
}

// Load reads the optional .env file and then the process environment,
// applying defaults for the Last.fm base URL and log level. An error is
// returned naming every required variable that is missing.
func Load() (Config, error) {
	// A missing .env file is fine; deployments set the variables directly.
	_ = godotenv.Load()

	cfg := Config{
		LastFM: LastFM{
			APIKey:  os.Getenv("LASTFM_API_KEY"),
			BaseURL: os.Getenv("LASTFM_BASE_URL"),
		},
		Spotify: Spotify{
			ClientID:     os.Getenv("SPOTIFY_CLIENT_ID"),
			ClientSecret: os.Getenv("SPOTIFY_CLIENT_SECRET"),
		},
		LogLevel: os.Getenv("LOG_LEVEL"),
	}
	if cfg.LastFM.BaseURL == "" {
		cfg.LastFM.BaseURL = lastfm.DefaultBaseURL
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	var missing []string
	if cfg.LastFM.APIKey == "" {
		missing = append(missing, "LASTFM_API_KEY")
	}
	if cfg.Spotify.ClientID == "" {
		missing = append(missing, "SPOTIFY_CLIENT_ID")
	}
	if cfg.Spotify.ClientSecret == "" {
		missing = append(missing, "SPOTIFY_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}
	return cfg, nil
}
