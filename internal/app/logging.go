package app

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// SetupLogging configures the standard logger and opens the log file at path.
// With console set, output also goes to stderr; the window sets it to false
// so log lines never land on the terminal it draws on. The caller closes the
// returned file.
func SetupLogging(path string, console bool) (io.Closer, error) {
	log.SetPrefix("[relaypulse] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	if console {
		log.SetOutput(io.MultiWriter(os.Stderr, f))
	} else {
		log.SetOutput(f)
	}
	return f, nil
}
