// Package config reads bee settings from the environment, after loading an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DefaultAnswersURL       = "https://nytbee.com/Bee_{date}.html"
	DefaultWordlistURL      = "https://raw.githubusercontent.com/fptprdqs66-dot/nytbee_scrapper/refs/heads/main/nytbee_dict.txt"
	DefaultLatestEncodedURL = "https://raw.githubusercontent.com/fptprdqs66-dot/nytbee_scrapper/main/results/latest.encoded.txt"
	DefaultUserAgent        = "Mozilla/5.0 (compatible; NYTBeeScraper/1.0)"
	DefaultCacheBackend     = "memory"
	DefaultRedisAddr        = "localhost:6379"
	DefaultCacheTTL         = 6 * time.Hour
	DefaultHTTPTimeout      = 20 * time.Second
)

// Config holds everything the commands read from the environment.
type Config struct {
	AnswersURL       string
	WordlistURL      string
	WordlistPath     string
	LatestEncodedURL string
	UserAgent        string
	CacheBackend     string
	CacheTTL         time.Duration
	RedisAddr        string
	HTTPTimeout      time.Duration
}

// Load reads .env (if present) and the BEE_* variables.
// Variables already set in the process environment win over .env entries.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("failed to load .env: %w", err)
	}
	return FromEnv()
}

// FromEnv reads the BEE_* variables without touching .env.
func FromEnv() (Config, error) {
	cfg := Config{
		AnswersURL:       getenv("BEE_ANSWERS_URL", DefaultAnswersURL),
		WordlistURL:      getenv("BEE_WORDLIST_URL", DefaultWordlistURL),
		WordlistPath:     getenv("BEE_WORDLIST_PATH", defaultWordlistPath()),
		LatestEncodedURL: getenv("BEE_LATEST_ENCODED_URL", DefaultLatestEncodedURL),
		UserAgent:        getenv("BEE_USER_AGENT", DefaultUserAgent),
		CacheBackend:     strings.ToLower(getenv("BEE_CACHE_BACKEND", DefaultCacheBackend)),
		RedisAddr:        getenv("BEE_REDIS_ADDR", DefaultRedisAddr),
	}

	var err error
	if cfg.CacheTTL, err = getDuration("BEE_CACHE_TTL", DefaultCacheTTL); err != nil {
		return Config{}, err
	}
	if cfg.HTTPTimeout, err = getDuration("BEE_HTTP_TIMEOUT", DefaultHTTPTimeout); err != nil {
		return Config{}, err
	}
	if !strings.Contains(cfg.AnswersURL, "{date}") {
		return Config{}, fmt.Errorf("BEE_ANSWERS_URL must contain {date}: %q", cfg.AnswersURL)
	}
	return cfg, nil
}

func getenv(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return d, nil
}

func defaultWordlistPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".cache", "bee", "nytbee_dict.txt")
	}
	return filepath.Join(home, ".cache", "bee", "nytbee_dict.txt")
}
