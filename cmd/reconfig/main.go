package main

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/zerowipe/log"
)

// Simulate rapid reconfiguration
func main() {
	var count atomic.Int64

	// Log something constantly through the default logger
	go func() {
		for i := 0; ; i++ {
			log.Info("Test log %d", i)
			count.Add(1)
			time.Sleep(time.Millisecond)
		}
	}()

	// Trigger multiple reconfigurations rapidly, alternating the sink
	// between echo mode and a log file
	for i := 0; i < 10; i++ {
		var overrides []string
		if i%2 == 0 {
			overrides = []string{"log_file=./reconfig.log", "sanitize=txt"}
		} else {
			overrides = []string{"log_file=", "no_gui=true", "sanitize=raw"}
		}
		if err := log.ApplyConfigString(overrides...); err != nil {
			fmt.Printf("Reconfigure error: %v\n", err)
		}
		// Minimal delay between reconfigurations
		time.Sleep(10 * time.Millisecond)
	}

	// Check if we see any inconsistency
	time.Sleep(500 * time.Millisecond)
	fmt.Printf("Total logs attempted: %d\n", count.Load())

	// Release the logger
	if err := log.Close(); err != nil {
		fmt.Printf("Close error: %v\n", err)
	}

	// Check './reconfig.log' and stdout for interleaved output;
	// every attempted line should appear in exactly one sink
}
