package main

import (
	"fmt"
	"os"
	"time"

	"github.com/zerowipe/log"
)

func main() {
	// Test cycle: disabled -> 1s -> 2s -> 1s -> disabled
	intervals := []struct {
		seconds     int64
		description string
	}{
		{0, "Heartbeats disabled"},
		{1, "1 second heartbeats"},
		{2, "2 second heartbeats (restarting from 1)"},
		{1, "1 second heartbeats (restarting from 2)"},
		{0, "Heartbeats disabled (final)"},
	}

	// Create a single logger instance that we'll reconfigure
	logger := log.NewLogger()

	// Echo to stdout so the heartbeat lines are visible
	if err := logger.ApplyConfigString("no_gui=true"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
		os.Exit(1)
	}

	for _, intervalConfig := range intervals {
		override := fmt.Sprintf("heartbeat_interval_s=%d", intervalConfig.seconds)
		if err := logger.ApplyConfigString(override); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to reconfigure logger: %v\n", err)
			os.Exit(1)
		}

		// Log the current test state
		fmt.Printf("\n--- Testing heartbeat interval %ds: %s ---\n", intervalConfig.seconds, intervalConfig.description)
		logger.Info("Heartbeat test started, interval=%ds", intervalConfig.seconds)

		// Generate some logs to move the heartbeat counters
		for j := 0; j < 10; j++ {
			logger.Debug("Debug test log, iteration=%d", j)
			logger.Info("Info test log, iteration=%d", j)
			time.Sleep(100 * time.Millisecond)
		}

		// Wait long enough for at least one beat at the current interval
		waitTime := 3 * time.Second
		fmt.Printf("Waiting %v for heartbeats to generate...\n", waitTime)
		time.Sleep(waitTime)

		logger.Info("Heartbeat test completed, interval=%ds", intervalConfig.seconds)
	}

	// Final close
	if err := logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to close logger: %v\n", err)
	}

	fmt.Println("\nHeartbeat test program completed successfully")
}
