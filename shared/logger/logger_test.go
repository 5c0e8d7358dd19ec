package logger_test

import (
	"bytes"
	"errors"
	"hostel/config"
	"hostel/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("guest list fetch failed"))

	if !bytes.Contains(buf.Bytes(), []byte("guest list fetch failed")) {
		t.Errorf("expected log output to contain the error, got %q", buf.String())
	}
}

func TestSetLogLevel(t *testing.T) {
	originalLevel := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(originalLevel)

	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug level", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "info level", logLevel: "info", expectedLevel: zerolog.InfoLevel},
		{name: "error level", logLevel: "error", expectedLevel: zerolog.ErrorLevel},
		{name: "invalid level defaults to trace", logLevel: "loud", expectedLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.expectedLevel {
				t.Errorf("expected global level %s, got %s", tt.expectedLevel, zerolog.GlobalLevel())
			}
		})
	}
}
