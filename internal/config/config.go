package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Addr           string        // API bind address
	LogDir         string        // logs directory
	DBPath         string        // SQLite file path; empty means in-memory store
	APIKeys        []string      // empty disables API auth
	SweepInterval  time.Duration // pause between sweeps
	SweepBackoff   time.Duration // pause after a failed check-list load
	ProbeTimeout   time.Duration // per-probe deadline
	Concurrency    int           // probes in flight within one sweep
	TelegramToken  string        // empty disables telegram alerts
	TelegramChatID string
	SlackWebhook   string // empty disables slack alerts
}

func FromEnv() Config {
	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}

	logDir := os.Getenv("LOG_DIR")
	if logDir == "" {
		logDir = "logs"
	}

	// Empty means run on the in-memory store (dev only).
	dbPath := os.Getenv("DB_PATH")

	return Config{
		Addr:           addr,
		LogDir:         logDir,
		DBPath:         dbPath,
		APIKeys:        splitKeys(os.Getenv("API_KEYS")),
		SweepInterval:  envMS("SWEEP_INTERVAL_MS", 5*time.Second),
		SweepBackoff:   envMS("SWEEP_BACKOFF_MS", 5*time.Second),
		ProbeTimeout:   envMS("PROBE_TIMEOUT_MS", 10*time.Second),
		Concurrency:    envInt("MAX_CONCURRENT_CHECKS", 1),
		TelegramToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID: os.Getenv("TELEGRAM_CHAT_ID"),
		SlackWebhook:   os.Getenv("SLACK_WEBHOOK_URL"),
	}
}

func splitKeys(v string) []string {
	var out []string
	for _, k := range strings.Split(v, ",") {
		if k = strings.TrimSpace(k); k != "" {
			out = append(out, k)
		}
	}
	return out
}

func envMS(name string, def time.Duration) time.Duration {
	if v := os.Getenv(name); v != "" {
		if ms, err := strconv.Atoi(v); err == nil && ms > 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return def
}

func envInt(name string, def int) int {
	if v := os.Getenv(name); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
