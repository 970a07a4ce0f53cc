package main

import (
	"net/http"
	"os"
	"strings"
	"time"
)

// Probes the local server's health route. LINGJING_ADDR selects the port
// the same way it does for the server.
func main() {
	addr := os.Getenv("LINGJING_ADDR")
	if addr == "" {
		addr = ":8080"
	}
	if strings.HasPrefix(addr, ":") {
		addr = "127.0.0.1" + addr
	}
	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get("http://" + addr + "/healthz")
	if err != nil {
		os.Exit(1)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		os.Exit(1)
	}
	os.Exit(0)
}
