package log

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/zerowipe/log/sanitizer"
)

// BenchmarkLoggerInfo benchmarks the append path with the in-process store only
func BenchmarkLoggerInfo(b *testing.B) {
	logger, _ := createTestLogger(&testing.T{})
	defer logger.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message %d", i)
	}
}

// BenchmarkLoggerPlain benchmarks bare lines that skip the header
func BenchmarkLoggerPlain(b *testing.B) {
	logger, _ := createTestLogger(&testing.T{})
	defer logger.Close()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Plain("benchmark message %d", i)
	}
}

// BenchmarkLoggerFile benchmarks the open-lock-write-close persistence cycle
func BenchmarkLoggerFile(b *testing.B) {
	logger, _ := createTestLogger(&testing.T{})
	defer logger.Close()

	logFile := filepath.Join(b.TempDir(), "bench.log")
	if err := logger.ApplyConfigString("log_file=" + logFile); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info("benchmark message %d", i)
	}
}

// BenchmarkRender benchmarks line rendering without the engine around it
func BenchmarkRender(b *testing.B) {
	formatter := newLineFormatter()
	now := time.Now()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		formatter.render(LevelInfo, now, "Wiping /dev/sdb pass 1 of 3")
	}
}

// BenchmarkSanitizeTxt benchmarks the default text policy on a hostile message
func BenchmarkSanitizeTxt(b *testing.B) {
	s := sanitizer.New().Policy(sanitizer.PolicyTxt)
	message := "serial \x00WD-2\x1b[31mX778\tmodel\nend"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Sanitize(message)
	}
}

// BenchmarkSanitizeRaw benchmarks the passthrough policy
func BenchmarkSanitizeRaw(b *testing.B) {
	s := sanitizer.New().Policy(sanitizer.PolicyRaw)
	message := "serial \x00WD-2\x1b[31mX778\tmodel\nend"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Sanitize(message)
	}
}

// BenchmarkConcurrentLogging benchmarks the append lock under concurrent load
func BenchmarkConcurrentLogging(b *testing.B) {
	logger, _ := createTestLogger(&testing.T{})
	defer logger.Close()

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Info("concurrent %d", i)
			i++
		}
	})
}
