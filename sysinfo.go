package log

import (
	"bufio"
	"errors"
	"os/exec"
	"strings"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

// smbiosKeywords are the inventory keys requested from the tool, one
// invocation per key, in reporting order.
var smbiosKeywords = []string{
	"bios-version",
	"bios-release-date",
	"system-manufacturer",
	"system-product-name",
	"system-version",
	"system-serial-number",
	"system-uuid",
	"baseboard-manufacturer",
	"baseboard-product-name",
	"baseboard-version",
	"baseboard-serial-number",
	"baseboard-asset-tag",
	"chassis-manufacturer",
	"chassis-type",
	"chassis-version",
	"chassis-serial-number",
	"chassis-asset-tag",
	"processor-family",
	"processor-manufacturer",
	"processor-version",
	"processor-frequency",
}

// sysinfoToolCandidates is the probe order for the inventory executable:
// PATH first, then the usual fixed locations.
var sysinfoToolCandidates = []string{
	"dmidecode",
	"/sbin/dmidecode",
	"/usr/bin/dmidecode",
}

// CommandRunner abstracts the external inventory tool invocation so it can
// be substituted with a fake in tests.
type CommandRunner interface {
	// LookPath resolves an executable name or path, mirroring exec.LookPath
	LookPath(file string) (string, error)
	// Run invokes the tool and returns its output lines, read until end of
	// stream, plus the exit status inspected after the stream closed
	Run(name string, args ...string) (lines []string, exitCode int, err error)
}

// execRunner runs the real tool through os/exec
type execRunner struct{}

func (execRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

func (execRunner) Run(name string, args ...string) ([]string, int, error) {
	cmd := exec.Command(name, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, 0, err
	}
	if err := cmd.Start(); err != nil {
		return nil, 0, err
	}

	var lines []string
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	scanErr := scanner.Err()

	waitErr := cmd.Wait()
	if scanErr != nil {
		return lines, 0, scanErr
	}
	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return lines, exitErr.ExitCode(), nil
		}
		return lines, 0, waitErr
	}
	return lines, 0, nil
}

// SysInfoCollector shells out to the system inventory tool and folds its
// key/value output into the log stream.
type SysInfoCollector struct {
	logger *Logger
	runner CommandRunner
}

// SysInfoOption customizes a collector
type SysInfoOption func(*SysInfoCollector)

// WithRunner substitutes the process runner, used by tests to avoid
// spawning the real tool
func WithRunner(r CommandRunner) SysInfoOption {
	return func(s *SysInfoCollector) {
		s.runner = r
	}
}

// NewSysInfoCollector creates a collector emitting through the given logger
func NewSysInfoCollector(logger *Logger, opts ...SysInfoOption) *SysInfoCollector {
	s := &SysInfoCollector{
		logger: logger,
		runner: execRunner{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Collect locates the inventory tool and emits one "key = value" Notice per
// output line. A missing tool degrades to a single warning. A tool
// malfunction, either a failed start or a non-zero exit, warns and aborts
// the remaining keys rather than limping through them.
func (s *SysInfoCollector) Collect() {
	tool := s.locateTool()
	if tool == "" {
		s.logger.Warning("Command not found. Install dmidecode !")
		return
	}

	for _, keyword := range smbiosKeywords {
		cmdline := tool + " -s " + keyword

		lines, exitCode, err := s.runner.Run(tool, "-s", keyword)
		if err != nil {
			s.logger.Warning("sysinfo: failed to create stream to %s", cmdline)
			return
		}

		for _, line := range lines {
			s.logger.Notice("%s = %s", keyword, line)
		}

		if exitCode != 0 {
			s.logger.Warning("sysinfo: \"%s\" exit status = %d", cmdline, exitCode)
			return
		}
	}
}

// locateTool probes the candidate locations and returns the first that
// resolves, keeping the candidate form so logged command lines match what
// was probed.
func (s *SysInfoCollector) locateTool() string {
	for _, candidate := range sysinfoToolCandidates {
		if _, err := s.runner.LookPath(candidate); err == nil {
			return candidate
		}
	}
	return ""
}

// CollectHost folds host, CPU and memory facts from the kernel into the
// log in the same "key = value" shape. Each probe degrades independently
// to a warning on failure.
func (s *SysInfoCollector) CollectHost() {
	if info, err := host.Info(); err != nil {
		s.logger.Warning("sysinfo: host probe failed: %v", err)
	} else {
		s.logger.Notice("hostname = %s", info.Hostname)
		s.logger.Notice("os = %s %s (%s)", info.Platform, info.PlatformVersion, info.KernelVersion)
		s.logger.Notice("uptime-seconds = %d", info.Uptime)
	}

	cpus, err := cpu.Info()
	switch {
	case err != nil:
		s.logger.Warning("sysinfo: cpu probe failed: %v", err)
	case len(cpus) > 0:
		s.logger.Notice("processor-model = %s", strings.TrimSpace(cpus[0].ModelName))
	}
	if count, err := cpu.Counts(true); err == nil {
		s.logger.Notice("processor-threads = %d", count)
	}

	if vm, err := mem.VirtualMemory(); err != nil {
		s.logger.Warning("sysinfo: memory probe failed: %v", err)
	} else {
		s.logger.Notice("memory-total = %d", vm.Total)
		s.logger.Notice("memory-available = %d", vm.Available)
	}
}
