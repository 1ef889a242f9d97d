package main

import (
	"fmt"
	"os"
	"time"

	"github.com/zerowipe/log"
)

const (
	logDirectory = "./temp_logs"
	logInterval  = 100 * time.Millisecond // Shorter interval for quicker tests
)

// main orchestrates the different sink scenarios.
func main() {
	// Ensure a clean state by removing the previous log directory.
	if err := os.RemoveAll(logDirectory); err != nil {
		fmt.Printf("Warning: could not remove old log directory: %v\n", err)
	}
	if err := os.MkdirAll(logDirectory, 0755); err != nil {
		fmt.Printf("Fatal: could not create log directory: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("--- Running Sink Test Suite ---")
	fmt.Printf("! All file-based logs will be in the '%s' directory.\n\n", logDirectory)

	// --- Scenario 1: Test each sink mode on fresh logger instances ---
	fmt.Println("--- SCENARIO 1: Testing sink modes in isolation (new logger per test) ---")
	testFileOnly()
	testEchoOnly()
	testWindowStore()

	// --- Scenario 2: Test reconfiguration on a single logger instance ---
	fmt.Println("\n--- SCENARIO 2: Testing reconfiguration on a single logger instance ---")
	testReconfigurationTransitions()

	fmt.Println("\n--- Sink Test Suite Complete ---")
	fmt.Printf("Check the '%s' directory for log files.\n", logDirectory)
}

// testFileOnly routes lines to an append-only locked file.
func testFileOnly() {
	logger := log.NewLogger()
	runTestPhase(logger, "1.1: File-Only",
		"log_file="+logDirectory+"/file_only.log",
	)
	closeLogger(logger, "1.1: File-Only")
}

// testEchoOnly prints lines straight to standard output.
func testEchoOnly() {
	logger := log.NewLogger()
	runTestPhase(logger, "1.2: Echo-Only",
		"log_file=",
		"no_gui=true",
	)
	closeLogger(logger, "1.2: Echo-Only")
}

// testWindowStore retains lines in memory for a display layer to drain.
func testWindowStore() {
	logger := log.NewLogger()
	runTestPhase(logger, "1.3: Window-Store (nothing printed, lines retained)")
	fmt.Printf("  Retained lines: %d, pending for display: %d\n",
		logger.Len(), len(logger.Pending()))
	closeLogger(logger, "1.3: Window-Store")
}

// testReconfigurationTransitions tests the logger's ability to handle sink changes.
func testReconfigurationTransitions() {
	logger := log.NewLogger()

	// Phase A: Start with a file sink
	runTestPhase(logger, "2.1: Reconfig - Initial (File)",
		"log_file="+logDirectory+"/reconfig.log",
	)

	// Phase B: Transition to echo
	runTestPhase(logger, "2.2: Reconfig - Transition to Echo",
		"log_file=", // The key change
		"no_gui=true",
	)

	// Phase C: Transition back to the file. This is the critical test.
	runTestPhase(logger, "2.3: Reconfig - Transition back to File",
		"log_file="+logDirectory+"/reconfig.log", // Re-specify file
	)

	// Phase D: Test every level on the final reconfigured state
	fmt.Println("\n[Phase 2.4: Reconfig - Testing log levels on final state]")
	logger.Debug("final-state debug message")
	logger.Info("final-state info message")
	logger.Notice("final-state notice message")
	logger.Warning("final-state warning message")
	logger.Error("final-state error message")
	logger.Fatal("final-state fatal message")
	logger.Sanity("final-state sanity message")
	time.Sleep(logInterval)

	closeLogger(logger, "2: Reconfiguration")
}

// runTestPhase is a helper to reconfigure and run a standard logging test.
func runTestPhase(logger *log.Logger, phaseName string, overrides ...string) {
	fmt.Printf("\n[Phase %s]\n", phaseName)
	fmt.Println("  Config:", overrides)

	if err := logger.ApplyConfigString(overrides...); err != nil {
		fmt.Printf("  ERROR: Failed to reconfigure logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("start_phase %s", phaseName)
	time.Sleep(logInterval)
	logger.Info("end_phase %s", phaseName)
}

// closeLogger is a helper to release the logger instance.
func closeLogger(l *log.Logger, phaseName string) {
	if err := l.Close(); err != nil {
		fmt.Printf("  WARNING: Close error in phase '%s': %v\n", phaseName, err)
	}
}
