package main

import (
	"fmt"
	"os"

	"github.com/zerowipe/log"
)

func main() {
	fmt.Println("--- System Inventory Example ---")

	logger := log.NewLogger()
	if err := logger.ApplyConfigString("no_gui=true"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
		os.Exit(1)
	}

	collector := log.NewSysInfoCollector(logger)

	// SMBIOS inventory via dmidecode; degrades to a warning when the tool
	// is not installed or not runnable without privileges
	collector.Collect()

	// Kernel-sourced host facts
	collector.CollectHost()

	if err := logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger close error: %v\n", err)
	}
}
