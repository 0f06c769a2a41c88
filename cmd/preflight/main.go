package main

import (
	"fmt"
	"os"
	"strings"
)

func main() {
	fail := func(msg string) {
		fmt.Fprintln(os.Stderr, "✖", msg)
		os.Exit(1)
	}
	warn := func(msg string) { fmt.Fprintln(os.Stderr, "⚠", msg) }
	ok := func(msg string) { fmt.Println("✔", msg) }

	addr := strings.TrimSpace(os.Getenv("ADDR"))
	dbPath := strings.TrimSpace(os.Getenv("DB_PATH"))
	tgToken := strings.TrimSpace(os.Getenv("TELEGRAM_BOT_TOKEN"))
	tgChat := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID"))
	slack := strings.TrimSpace(os.Getenv("SLACK_WEBHOOK_URL"))
	keys := strings.TrimSpace(os.Getenv("API_KEYS"))

	// Telegram needs both halves or neither.
	if (tgToken == "") != (tgChat == "") {
		fail("TELEGRAM_BOT_TOKEN and TELEGRAM_CHAT_ID must be set together.")
	}
	if tgToken == "" && slack == "" {
		warn("no notification transport configured — status changes will only be logged.")
	} else {
		ok("alert transport configured")
	}

	if dbPath == "" {
		warn("DB_PATH empty — checks and history will not survive a restart.")
	} else {
		ok("DB_PATH=" + dbPath)
	}

	if addr == "" {
		warn("ADDR is empty; default :8080 will be used.")
	} else {
		ok("ADDR=" + addr)
	}

	if keys == "" {
		warn("API_KEYS empty — the API will accept unauthenticated requests.")
	} else if strings.Contains(keys, " ") {
		warn("API_KEYS contains spaces; use comma-separated with no spaces, e.g. key1,key2")
	} else {
		ok("API auth enabled")
	}

	ok("preflight passed")
}
