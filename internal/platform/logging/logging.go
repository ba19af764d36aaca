package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
)

// Setup points the standard logger at stdout and an append-only log file.
// Lines carry date, time with microseconds and the given logger name as a
// prefix. The returned closer releases the file; callers defer it from main.
func Setup(name, path string) (io.Closer, error) {
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.LUTC)
	log.SetPrefix(name + " ")

	if path == "" {
		log.SetOutput(os.Stdout)
		return io.NopCloser(nil), nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("setup logging: create dir %q: %w", dir, err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("setup logging: open %q: %w", path, err)
	}

	log.SetOutput(io.MultiWriter(os.Stdout, f))
	return f, nil
}
