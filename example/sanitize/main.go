package main

import (
	"fmt"
	"os"

	"github.com/zerowipe/log"
)

// TestPayload defines a struct for exercising the value dumper.
type TestPayload struct {
	RequestID uint64
	User      string
	Metrics   map[string]float64
}

func main() {
	fmt.Println("--- Logger Sanitize Mode Test ---")

	// --- 1. Define the records to be tested ---
	// Record 1: embedded control characters (newline, tab, null, escape).
	hostileRecord := "binary\ndata\twith\x00null and \x1b[31mANSI\x1b[0m"

	// Record 2: shell metacharacters from an untrusted serial string.
	shellRecord := "serial `id` $(reboot); rm -rf"

	// Record 3: a struct containing a uint64, a string, and a map.
	structRecord := TestPayload{
		RequestID: 9223372036854775807, // A large uint64
		User:      "test_user",
		Metrics: map[string]float64{
			"latency_ms":  15.7,
			"cpu_percent": 88.2,
		},
	}

	// --- 2. Default mode: control bytes are hex-encoded ---
	fmt.Println("\n[1] sanitize=txt (default)")
	logger1 := log.NewLogger()
	if err := logger1.ApplyConfigString("no_gui=true"); err != nil {
		fmt.Printf("Failed to configure logger: %v\n", err)
		return
	}

	logger1.Info("hostile -> %s", hostileRecord)
	logger1.Info("shell -> %s", shellRecord)
	logger1.Dump("payload", structRecord)
	_ = logger1.Close()

	// --- 3. Raw mode: bytes pass through untouched ---
	// Useful when downstream tooling expects the original bytes; note the
	// ANSI sequence will color this terminal.
	fmt.Println("\n[2] sanitize=raw")
	logger2 := log.NewLogger()
	if err := logger2.ApplyConfigString("no_gui=true", "sanitize=raw"); err != nil {
		fmt.Printf("Failed to configure logger: %v\n", err)
		return
	}

	logger2.Info("hostile -> %s", hostileRecord)
	logger2.Info("shell -> %s", shellRecord)
	_ = logger2.Close()

	fmt.Println("\n--- Test Complete ---")
	_ = os.Stdout.Sync()
}
