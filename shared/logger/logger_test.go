package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"fleetrental/config"
	"fleetrental/shared/logger"
)

func TestInitLogger(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	logger.InitLogger()

	if zerolog.TimeFieldFormat != zerolog.TimeFormatUnix {
		t.Errorf("expected TimeFieldFormat to be %s, got %s", zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	}

	if zerolog.GlobalLevel() != zerolog.TraceLevel {
		t.Errorf("expected global level to be %s, got %s", zerolog.TraceLevel, zerolog.GlobalLevel())
	}
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name      string
		level     string
		wantLevel zerolog.Level
	}{
		{name: "debug level", level: "debug", wantLevel: zerolog.DebugLevel},
		{name: "info level", level: "info", wantLevel: zerolog.InfoLevel},
		{name: "warn level", level: "warn", wantLevel: zerolog.WarnLevel},
		{name: "error level", level: "error", wantLevel: zerolog.ErrorLevel},
		{name: "unknown level falls back to trace", level: "nonsense", wantLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.App.LogLevel = tt.level

			logger.SetLogLevel(cfg)

			if zerolog.GlobalLevel() != tt.wantLevel {
				t.Errorf("expected global level %s, got %s", tt.wantLevel, zerolog.GlobalLevel())
			}
		})
	}
}

func TestErrorWithStack(t *testing.T) {
	originalLogger := log.Logger
	defer func() { log.Logger = originalLogger }()

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("something broke"))

	if !bytes.Contains(buf.Bytes(), []byte("something broke")) {
		t.Errorf("expected log output to contain the error message, got %s", buf.String())
	}
}
