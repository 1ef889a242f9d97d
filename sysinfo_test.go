package log

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner simulates the inventory tool without spawning processes
type fakeRunner struct {
	available map[string]bool     // candidates that resolve on LookPath
	output    map[string][]string // keyword to stdout lines
	exitCodes map[string]int      // keyword to exit status
	startErr  map[string]error    // keyword to spawn failure
	calls     []string            // recorded command lines in invocation order
}

func (f *fakeRunner) LookPath(file string) (string, error) {
	if f.available[file] {
		return file, nil
	}
	return "", errors.New("executable file not found in $PATH")
}

func (f *fakeRunner) Run(name string, args ...string) ([]string, int, error) {
	keyword := args[len(args)-1]
	f.calls = append(f.calls, name+" "+strings.Join(args, " "))
	if err := f.startErr[keyword]; err != nil {
		return nil, 0, err
	}
	return f.output[keyword], f.exitCodes[keyword], nil
}

// TestSysInfoCollect verifies keyword iteration and notice emission
func TestSysInfoCollect(t *testing.T) {
	logger, _ := createTestLogger(t)
	runner := &fakeRunner{
		available: map[string]bool{"dmidecode": true},
		output: map[string][]string{
			"bios-version":        {"2.1"},
			"system-manufacturer": {"Example Corp"},
			"processor-version":   {"Example CPU @ 3.2GHz"},
		},
	}

	collector := NewSysInfoCollector(logger, WithRunner(runner))
	collector.Collect()

	// Every keyword was queried once, in declaration order
	require.Len(t, runner.calls, len(smbiosKeywords))
	for i, keyword := range smbiosKeywords {
		assert.Equal(t, "dmidecode -s "+keyword, runner.calls[i])
	}

	lines := logger.Lines()
	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, "notice: bios-version = 2.1")
	assert.Contains(t, joined, "notice: system-manufacturer = Example Corp")
	assert.Contains(t, joined, "notice: processor-version = Example CPU @ 3.2GHz")

	// Keywords with no output produce no lines
	assert.Len(t, lines, 3)
}

// TestSysInfoToolProbe verifies the fallback locations are tried in order
func TestSysInfoToolProbe(t *testing.T) {
	t.Run("sbin fallback", func(t *testing.T) {
		logger, _ := createTestLogger(t)
		runner := &fakeRunner{
			available: map[string]bool{"/sbin/dmidecode": true},
		}

		NewSysInfoCollector(logger, WithRunner(runner)).Collect()

		require.NotEmpty(t, runner.calls)
		assert.Equal(t, "/sbin/dmidecode -s bios-version", runner.calls[0])
	})

	t.Run("usr bin fallback", func(t *testing.T) {
		logger, _ := createTestLogger(t)
		runner := &fakeRunner{
			available: map[string]bool{"/usr/bin/dmidecode": true},
		}

		NewSysInfoCollector(logger, WithRunner(runner)).Collect()

		require.NotEmpty(t, runner.calls)
		assert.Equal(t, "/usr/bin/dmidecode -s bios-version", runner.calls[0])
	})

	t.Run("path wins over fixed locations", func(t *testing.T) {
		logger, _ := createTestLogger(t)
		runner := &fakeRunner{
			available: map[string]bool{
				"dmidecode":       true,
				"/sbin/dmidecode": true,
			},
		}

		NewSysInfoCollector(logger, WithRunner(runner)).Collect()

		require.NotEmpty(t, runner.calls)
		assert.Equal(t, "dmidecode -s bios-version", runner.calls[0])
	})
}

// TestSysInfoMissingTool verifies the single warning when no tool resolves
func TestSysInfoMissingTool(t *testing.T) {
	logger, _ := createTestLogger(t)
	runner := &fakeRunner{}

	NewSysInfoCollector(logger, WithRunner(runner)).Collect()

	assert.Empty(t, runner.calls)
	lines := logger.Lines()
	require.Len(t, lines, 1)
	assert.True(t, strings.HasSuffix(lines[0], "warning: Command not found. Install dmidecode !"))
}

// TestSysInfoRunFailure verifies a spawn failure warns and aborts the sweep
func TestSysInfoRunFailure(t *testing.T) {
	logger, _ := createTestLogger(t)
	runner := &fakeRunner{
		available: map[string]bool{"dmidecode": true},
		output: map[string][]string{
			"bios-version":      {"2.1"},
			"bios-release-date": {"04/01/2024"},
		},
		startErr: map[string]error{
			"system-manufacturer": errors.New("fork/exec: resource temporarily unavailable"),
		},
	}

	NewSysInfoCollector(logger, WithRunner(runner)).Collect()

	// The third keyword failed, nothing past it was attempted
	require.Len(t, runner.calls, 3)

	lines := logger.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "notice: bios-version = 2.1")
	assert.Contains(t, lines[1], "notice: bios-release-date = 04/01/2024")
	assert.Contains(t, lines[2], "warning: sysinfo: failed to create stream to dmidecode -s system-manufacturer")
}

// TestSysInfoExitStatus verifies a non-zero exit warns after its output
func TestSysInfoExitStatus(t *testing.T) {
	logger, _ := createTestLogger(t)
	runner := &fakeRunner{
		available: map[string]bool{"dmidecode": true},
		output: map[string][]string{
			"bios-version":      {"2.1"},
			"bios-release-date": {"# dmidecode requires root"},
		},
		exitCodes: map[string]int{
			"bios-release-date": 1,
		},
	}

	NewSysInfoCollector(logger, WithRunner(runner)).Collect()

	require.Len(t, runner.calls, 2)

	lines := logger.Lines()
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "notice: bios-version = 2.1")
	// Output produced before the failure is still reported
	assert.Contains(t, lines[1], "notice: bios-release-date = # dmidecode requires root")
	assert.Contains(t, lines[2], `warning: sysinfo: "dmidecode -s bios-release-date" exit status = 1`)
}

// TestSysInfoMultiLineOutput verifies one notice per output line
func TestSysInfoMultiLineOutput(t *testing.T) {
	logger, _ := createTestLogger(t)
	runner := &fakeRunner{
		available: map[string]bool{"dmidecode": true},
		output: map[string][]string{
			"processor-version": {"CPU 0: Example CPU", "CPU 1: Example CPU"},
		},
	}

	NewSysInfoCollector(logger, WithRunner(runner)).Collect()

	lines := logger.Lines()
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "notice: processor-version = CPU 0: Example CPU")
	assert.Contains(t, lines[1], "notice: processor-version = CPU 1: Example CPU")
}

// TestSysInfoKeywordSet pins the inventory key list
func TestSysInfoKeywordSet(t *testing.T) {
	require.Len(t, smbiosKeywords, 21)
	assert.Equal(t, "bios-version", smbiosKeywords[0])
	assert.Equal(t, "system-uuid", smbiosKeywords[6])
	assert.Equal(t, "processor-frequency", smbiosKeywords[20])
}

// TestCollectHost verifies the kernel-sourced probes emit through the logger
func TestCollectHost(t *testing.T) {
	logger, _ := createTestLogger(t)

	NewSysInfoCollector(logger).CollectHost()

	// Every probe either reports facts or degrades to a warning; either
	// way the log gains lines and the call never panics
	assert.Greater(t, logger.Len(), 0)
}
