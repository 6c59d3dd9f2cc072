package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultBackendURL = "http://localhost:8000"
	defaultTimeout    = 10 * time.Second
)

type Config struct {
	BackendURL     string
	RequestTimeout time.Duration
	DataDir        string
	LogPath        string
	LogLevel       string
	ExportDir      string
}

func Default() Config {
	dataDir := filepath.Join(userConfigDir(), "bidcraft")
	return Config{
		BackendURL:     DefaultBackendURL,
		RequestTimeout: defaultTimeout,
		DataDir:        dataDir,
		LogPath:        filepath.Join(dataDir, "debug.log"),
		LogLevel:       "info",
		ExportDir:      downloadDir(),
	}
}

// Load returns Default() with BIDCRAFT_* environment overrides applied.
func Load() Config {
	cfg := Default()
	cfg.BackendURL = strings.TrimRight(getEnv("BIDCRAFT_BACKEND_URL", cfg.BackendURL), "/")
	if secs, ok := getEnvInt("BIDCRAFT_TIMEOUT_SECONDS"); ok && secs >= 0 {
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}
	if dir := os.Getenv("BIDCRAFT_DATA_DIR"); dir != "" {
		cfg.DataDir = dir
		cfg.LogPath = filepath.Join(dir, "debug.log")
	}
	cfg.LogLevel = getEnv("BIDCRAFT_LOG_LEVEL", cfg.LogLevel)
	cfg.ExportDir = getEnv("BIDCRAFT_EXPORT_DIR", cfg.ExportDir)
	return cfg
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string) (int, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}

func userConfigDir() string {
	if dir, err := os.UserConfigDir(); err == nil {
		return dir
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config")
}

// downloadDir is where exported files land, mirroring a browser download.
func downloadDir() string {
	if home, err := os.UserHomeDir(); err == nil {
		dir := filepath.Join(home, "Downloads")
		if fi, err := os.Stat(dir); err == nil && fi.IsDir() {
			return dir
		}
	}
	return "."
}
