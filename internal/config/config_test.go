package config

import (
	"testing"
	"time"
)

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("DB_PATH", "data/upmon.db")
	t.Setenv("SWEEP_INTERVAL_MS", "2500")
	t.Setenv("PROBE_TIMEOUT_MS", "1234")
	t.Setenv("MAX_CONCURRENT_CHECKS", "7")
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "42")
	t.Setenv("API_KEYS", "k1, k2,")

	cfg := FromEnv()

	if cfg.Addr != ":9090" || cfg.LogDir != "./_testlogs" {
		t.Fatalf("addr/logdir wrong: %+v", cfg)
	}
	if cfg.DBPath != "data/upmon.db" {
		t.Fatalf("db path wrong: %q", cfg.DBPath)
	}
	if cfg.SweepInterval != 2500*time.Millisecond {
		t.Fatalf("sweep interval wrong: %v", cfg.SweepInterval)
	}
	if cfg.ProbeTimeout != 1234*time.Millisecond {
		t.Fatalf("probe timeout wrong: %v", cfg.ProbeTimeout)
	}
	if cfg.Concurrency != 7 {
		t.Fatalf("concurrency wrong: %d", cfg.Concurrency)
	}
	if cfg.TelegramToken != "tok" || cfg.TelegramChatID != "42" {
		t.Fatalf("telegram config wrong: %+v", cfg)
	}
	if len(cfg.APIKeys) != 2 || cfg.APIKeys[0] != "k1" || cfg.APIKeys[1] != "k2" {
		t.Fatalf("api keys wrong: %+v", cfg.APIKeys)
	}
	// backoff untouched -> default
	if cfg.SweepBackoff != 5*time.Second {
		t.Fatalf("backoff default wrong: %v", cfg.SweepBackoff)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{
		"ADDR", "LOG_DIR", "DB_PATH", "API_KEYS", "SWEEP_INTERVAL_MS", "SWEEP_BACKOFF_MS",
		"PROBE_TIMEOUT_MS", "MAX_CONCURRENT_CHECKS",
		"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID", "SLACK_WEBHOOK_URL",
	} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()

	if cfg.Addr != ":8080" || cfg.LogDir != "logs" {
		t.Fatalf("defaults wrong: %+v", cfg)
	}
	if cfg.SweepInterval != 5*time.Second || cfg.ProbeTimeout != 10*time.Second {
		t.Fatalf("duration defaults wrong: %+v", cfg)
	}
	if cfg.Concurrency != 1 {
		t.Fatalf("concurrency default wrong: %d", cfg.Concurrency)
	}
	if cfg.TelegramToken != "" {
		t.Fatalf("telegram should default to disabled")
	}
	if len(cfg.APIKeys) != 0 {
		t.Fatalf("auth should default to disabled, got %+v", cfg.APIKeys)
	}
}

func TestEnvMS_IgnoresGarbage(t *testing.T) {
	t.Setenv("SWEEP_INTERVAL_MS", "not-a-number")
	if got := envMS("SWEEP_INTERVAL_MS", time.Second); got != time.Second {
		t.Fatalf("garbage should fall back to default, got %v", got)
	}
	t.Setenv("SWEEP_INTERVAL_MS", "-5")
	if got := envMS("SWEEP_INTERVAL_MS", time.Second); got != time.Second {
		t.Fatalf("negative should fall back to default, got %v", got)
	}
}
