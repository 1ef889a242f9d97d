package main

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/zerowipe/log"
	"github.com/zerowipe/log/compat"
)

// Demonstrates feeding third-party and subprocess output through the
// shared logger using the compat adapters.
func main() {
	fmt.Println("--- Pipe Example ---")

	appLogger := log.NewLogger()
	if err := appLogger.ApplyConfigString("no_gui=true"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
		os.Exit(1)
	}

	builder := compat.NewBuilder().WithLogger(appLogger)

	// 1. Subprocess output, line by line at notice level
	pipeWriter, err := builder.BuildWriter(compat.WithWriterLevel(log.LevelNotice))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build writer adapter: %v\n", err)
		os.Exit(1)
	}

	cmd := exec.Command("uname", "-a")
	cmd.Stdout = pipeWriter
	cmd.Stderr = pipeWriter
	if err := cmd.Run(); err != nil {
		appLogger.Perror("uname", "subprocess failed", err)
	}
	_ = pipeWriter.Close()

	// 2. Printf-style consumers with content-based level detection
	printfLogger, err := builder.BuildPrintf()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build printf adapter: %v\n", err)
		os.Exit(1)
	}
	printfLogger.Printf("client connected from %s", "192.168.1.20")
	printfLogger.Printf("request failed after %d retries", 3)

	// 3. Code built on the standard library logger
	stdLogger, err := builder.BuildStdLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build std logger: %v\n", err)
		os.Exit(1)
	}
	stdLogger.Println("device scan complete")

	fmt.Printf("\nCaptured %d lines through adapters.\n", appLogger.Len())
	if err := appLogger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger close error: %v\n", err)
	}
}
