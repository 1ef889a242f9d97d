package main

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/zerowipe/log"
)

// Simulated drive fixtures for the report
type device struct {
	path   string
	model  string
	serial string
	size   uint64 // bytes
}

var devices = []device{
	{"/dev/sdb", "WDC WD5000AAKX", "WD-WCC2E5XJ1234", 500_000_000_000},
	{"/dev/sdc", "ST2000DM008", "ZFL3KP9W", 2_000_000_000_000},
	{"/dev/nvme0n1", "Samsung SSD 980", "S64ANS0T123456", 1_000_000_000_000},
}

func main() {
	logger := log.NewLogger()
	if err := logger.ApplyConfigString("no_gui=true"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to configure logger: %v\n", err)
		os.Exit(1)
	}

	opts := log.RunOptions{
		Method:   "PRNG Stream",
		Rounds:   1,
		Blanking: false,
		Verify:   log.VerifyLast,
		NoGUI:    true,
	}

	logger.Notice("Opened entropy source '/dev/urandom'.")
	log.NewSysInfoCollector(logger).CollectHost()

	results := make([]*log.DeviceWipeResult, 0, len(devices))
	for i, dev := range devices {
		logger.Info("Starting wipe of %s, model=%s, serial=%s", dev.path, dev.model, dev.serial)

		// Pretend the wipe ran for a while at a plausible rate
		elapsed := time.Duration(30+rand.Intn(90)) * time.Minute
		start := time.Now().Add(-elapsed)
		throughput := dev.size / uint64(elapsed.Seconds())

		result := &log.DeviceWipeResult{
			Device:     dev.path,
			Model:      dev.model,
			Serial:     dev.serial,
			Start:      start,
			End:        time.Now(),
			Throughput: throughput,
		}

		switch i {
		case 1:
			// Verification mismatches on the second drive
			result.PassErrors = 3
			logger.Error("%s: verification failed on %d sectors", dev.path, result.PassErrors)
		case 2:
			// Hard I/O failure cut the third drive short
			result.ResultCode = -1
			result.End = time.Time{} // duration keeps counting from its start
			logger.Perror(dev.path, "write failed", errors.New("input/output error"))
		default:
			logger.Notice("%s: round 1 of 1 complete", dev.path)
		}

		results = append(results, result)
		time.Sleep(50 * time.Millisecond)
	}

	// Final report table
	logger.Summary(results, opts)

	fmt.Printf("\nRun produced %d log lines.\n", logger.Len())
	if err := logger.Close(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger close error: %v\n", err)
	}
}
