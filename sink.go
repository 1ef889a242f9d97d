package log

import (
	"os"
	"syscall"
)

// persistLine appends one rendered line to the log file at path. The file is
// opened, exclusively locked, written, unlocked and closed on every call so
// separate processes sharing the path interleave whole lines, never bytes.
// The lock is advisory and blocks until a competing holder releases it.
func persistLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmtErrorf("failed to open log file '%s': %w", path, err)
	}

	fd := int(f.Fd())
	if err := syscall.Flock(fd, syscall.LOCK_EX); err != nil {
		f.Close()
		return fmtErrorf("failed to lock log file '%s': %w", path, err)
	}

	_, writeErr := f.WriteString(line + "\n")
	if writeErr != nil {
		writeErr = fmtErrorf("failed to write log file '%s': %w", path, writeErr)
	}

	var unlockErr error
	if err := syscall.Flock(fd, syscall.LOCK_UN); err != nil {
		unlockErr = fmtErrorf("failed to unlock log file '%s': %w", path, err)
	}

	finalErr := combineErrors(writeErr, unlockErr)
	if err := f.Close(); err != nil {
		finalErr = combineErrors(finalErr, fmtErrorf("failed to close log file '%s': %w", path, err))
	}

	return finalErr
}
