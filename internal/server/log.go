package server

import (
	"log"
	"strings"

	"github.com/MKhiriev/go-issue-bridge/internal/logger"
)

// stdLogWriter forwards net/http's internal error log into zerolog.
type stdLogWriter struct {
	logger *logger.Logger
}

func (w stdLogWriter) Write(p []byte) (int, error) {
	w.logger.Warn().Str("source", "net/http").Msg(strings.TrimSpace(string(p)))
	return len(p), nil
}

func newStdErrorLog(l *logger.Logger) *log.Logger {
	return log.New(stdLogWriter{logger: l}, "", 0)
}
