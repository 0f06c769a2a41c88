package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"
)

func main() {
	api := os.Getenv("API_BASE")
	if api == "" {
		api = "http://localhost:8080"
	}

	reader := bufio.NewReader(os.Stdin)

	fmt.Print("Name for this check (e.g., homepage): ")
	name, _ := reader.ReadString('\n')
	name = strings.TrimSpace(name)
	if name == "" {
		fmt.Println("Name is required.")
		return
	}

	fmt.Print("URL to monitor (e.g., https://example.com): ")
	raw, _ := reader.ReadString('\n')
	raw = strings.TrimSpace(raw)
	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}
	if _, err := url.ParseRequestURI(raw); err != nil {
		fmt.Println("Invalid URL.")
		return
	}

	fmt.Print("Polling interval in seconds (min 10, default 60): ")
	ivRaw, _ := reader.ReadString('\n')
	interval := 60
	if s := strings.TrimSpace(ivRaw); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 10 {
			fmt.Println("Interval must be a number >= 10.")
			return
		}
		interval = n
	}

	body, _ := json.Marshal(map[string]any{
		"name":             name,
		"url":              raw,
		"interval_seconds": interval,
	})
	req, _ := http.NewRequest(http.MethodPost, api+"/api/checks", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if key := os.Getenv("API_KEY"); key != "" {
		req.Header.Set("X-API-Key", key)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		fmt.Println("Error contacting API:", err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		var out map[string]string
		_ = json.NewDecoder(resp.Body).Decode(&out)
		fmt.Println("Registered! id:", out["id"])
	} else {
		fmt.Println("API returned status:", resp.Status)
	}
}
