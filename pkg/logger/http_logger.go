package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// HTTPLogger writes one access-log line per request to a dedicated file.
// A nil writer disables it.
type HTTPLogger struct {
	mu sync.Mutex
	w  io.Writer
	c  io.Closer
}

// NewHTTPLogger opens HTTP_LOG_PATH for appending. When the variable is
// empty or the file cannot be opened the logger is a no-op.
func NewHTTPLogger(log *slog.Logger) *HTTPLogger {
	path := os.Getenv("HTTP_LOG_PATH")
	if path == "" {
		return &HTTPLogger{}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		log.Warn("http log disabled", slog.String("path", path), Error(err))
		return &HTTPLogger{}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.Warn("http log disabled", slog.String("path", path), Error(err))
		return &HTTPLogger{}
	}
	return &HTTPLogger{w: f, c: f}
}

// NewHTTPLoggerWriter returns an HTTPLogger writing to w.
func NewHTTPLoggerWriter(w io.Writer) *HTTPLogger {
	return &HTTPLogger{w: w}
}

// LogRequest appends a combined-style access line.
func (l *HTTPLogger) LogRequest(ip, method, uri string, status int, latency time.Duration, userAgent, requestID string) {
	if l == nil || l.w == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = fmt.Fprintf(l.w, "%s %s %s %s %d %s %q %s\n",
		time.Now().UTC().Format(time.RFC3339), ip, method, uri, status, latency, userAgent, requestID)
}

// Close closes the log file opened by NewHTTPLogger.
// Later requests are dropped. Closing twice is a no-op.
func (l *HTTPLogger) Close() error {
	if l == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	c := l.c
	l.w, l.c = nil, nil
	if c == nil {
		return nil
	}
	return c.Close()
}
