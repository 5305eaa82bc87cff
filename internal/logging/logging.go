package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Logger is the process-wide diagnostic logger. It writes to a file, never
// to the terminal the TUI owns. Until Init is called it discards output so
// packages can log unconditionally.
var Logger = log.New(io.Discard)

var logFile *os.File

// Init points the logger at the given file path. An empty path selects
// the default location under the user cache directory.
func Init(path string) error {
	if path == "" {
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			return fmt.Errorf("failed to locate cache directory: %w", err)
		}
		dir := filepath.Join(cacheDir, "burrow")
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		path = filepath.Join(dir, "burrow.log")
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	logFile = f
	Logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339,
		Level:           log.DebugLevel,
	})
	return nil
}

// Close flushes and closes the log file
func Close() {
	if logFile != nil {
		logFile.Close()
		logFile = nil
	}
}
