package main

import (
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/zerowipe/log"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[log]
  log_file = "./simple.log"
  no_gui = true
  color = "off"
  sanitize = "txt"
  heartbeat_interval_s = 0
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	// --- Setup Config ---
	// Create dummy config file
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue with defaults potentially
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
		// defer os.Remove(configFile) // Remove to keep the config file
		// defer os.Remove("./simple.log") // Remove to keep the log file
	}

	// Load config from file; missing file falls back to registered defaults
	cfg, err := log.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v. Using defaults.\n", err)
		cfg = log.DefaultConfig()
	}

	// --- Initialize Logger ---
	logger := log.NewLogger()
	if err := logger.ApplyConfig(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
		os.Exit(1)
	}
	fmt.Println("Logger configured.")

	// --- Logging ---
	logger.Debug("This is a debug message, user_id=%d", 123)
	logger.Info("Application starting...")
	logger.Notice("Wipe method set to %s", "PRNG Stream")
	logger.Warning("Potential issue detected, threshold=%.2f", 0.95)
	logger.Error("An error occurred, code=%d", 500)
	logger.Perror("open", "cannot access device", errors.New("permission denied"))

	// Structured value dump
	logger.Dump("run options", log.RunOptions{Method: "PRNG Stream", Rounds: 1, Blanking: true})

	// Logging from goroutines
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			logger.Info("Goroutine %d started", id)
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			logger.Info("Goroutine %d finished", id)
		}(i)
	}

	// Wait for goroutines to finish before closing the logger
	wg.Wait()
	fmt.Println("Goroutines finished.")

	// --- Close Logger ---
	fmt.Printf("Logger captured %d lines.\n", logger.Len())
	if err := logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger close error: %v\n", err)
	} else {
		fmt.Println("Logger closed.")
	}

	fmt.Println("--- Example Finished ---")
	fmt.Printf("Check './simple.log' and the config '%s'.\n", configFile)
}
