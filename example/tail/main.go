package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/zerowipe/log"
)

// Demonstrates the windowed consumption model: with no log file and the
// GUI active, lines accumulate in memory and a display loop drains only
// what it has not yet shown.
func main() {
	fmt.Println("--- Tail Example ---")

	// Default config: no file, GUI responsible for display
	logger := log.NewLogger()

	var wg sync.WaitGroup
	producerDone := make(chan struct{})

	// Producer simulates wipe progress
	wg.Add(1)
	go func() {
		defer wg.Done()
		defer close(producerDone)
		for pass := 1; pass <= 3; pass++ {
			logger.Notice("round %d of 3 started", pass)
			for pct := 25; pct <= 100; pct += 25 {
				logger.Info("round %d: %d%% complete", pass, pct)
				time.Sleep(80 * time.Millisecond)
			}
			logger.Notice("round %d of 3 complete", pass)
		}
	}()

	// Display loop plays the role of the GUI log window
	wg.Add(1)
	go func() {
		defer wg.Done()
		ticker := time.NewTicker(100 * time.Millisecond)
		defer ticker.Stop()
		for {
			for _, line := range logger.Pending() {
				fmt.Printf("gui | %s\n", line)
			}
			select {
			case <-producerDone:
				// Drain whatever arrived after the last tick
				for _, line := range logger.Pending() {
					fmt.Printf("gui | %s\n", line)
				}
				return
			case <-ticker.C:
			}
		}
	}()

	wg.Wait()

	fmt.Printf("\nDisplayed %d of %d lines.\n", logger.DisplayedCount(), logger.Len())
	if err := logger.Close(); err != nil {
		fmt.Printf("Logger close error: %v\n", err)
	}
}
