package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/deppfellow/pokemon-review/internal/config"
	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestGetPgxTraceLogLevel(t *testing.T) {
	tests := []struct {
		level zerolog.Level
		want  tracelog.LogLevel
	}{
		{zerolog.TraceLevel, tracelog.LogLevelTrace},
		{zerolog.DebugLevel, tracelog.LogLevelDebug},
		{zerolog.InfoLevel, tracelog.LogLevelInfo},
		{zerolog.WarnLevel, tracelog.LogLevelWarn},
		{zerolog.ErrorLevel, tracelog.LogLevelError},
		{zerolog.Disabled, tracelog.LogLevelNone},
	}

	for _, tt := range tests {
		t.Run(tt.level.String(), func(t *testing.T) {
			assert.Equal(t, int(tt.want), GetPgxTraceLogLevel(tt.level))
		})
	}
}

func TestLoggerService_DisabledWithoutLicense(t *testing.T) {
	svc := NewLoggerService(config.DefaultObservabilityConfig())
	assert.Nil(t, svc.GetApplication())
	svc.Shutdown()

	var nilSvc *LoggerService
	assert.Nil(t, nilSvc.GetApplication())
	nilSvc.Shutdown()
}

func TestNewLoggerWithService_Level(t *testing.T) {
	cfg := config.DefaultObservabilityConfig()
	cfg.Logging.Level = "warn"

	logger := NewLoggerWithService(cfg, nil)
	assert.Equal(t, zerolog.WarnLevel, logger.GetLevel())
}

func TestWithTraceContext_NilTransaction(t *testing.T) {
	var buf bytes.Buffer
	base := zerolog.New(&buf)

	logger := WithTraceContext(base, nil)
	logger.Info().Msg("hello")

	assert.NotContains(t, buf.String(), "trace.id")
	assert.Contains(t, buf.String(), "hello")
}

func TestFormatPgxFieldValue(t *testing.T) {
	long := strings.Repeat("x", 250)

	assert.Equal(t, strings.Repeat("x", 200)+"...", formatPgxFieldValue(long))
	assert.Equal(t, "SELECT 1", formatPgxFieldValue([]byte("SELECT 1")))
	assert.Equal(t, "3", formatPgxFieldValue(json.Number("3")))
	assert.Equal(t, "1.5", formatPgxFieldValue(1.5))
	assert.Equal(t, "<nil>", formatPgxFieldValue(nil))
}

func TestPgxLogger_NonStringFields(t *testing.T) {
	var buf bytes.Buffer
	logger := newPgxLogger(&buf, zerolog.InfoLevel)

	assert.NotPanics(t, func() {
		logger.Info().Int("rowCount", 3).Dur("time", 1500*time.Microsecond).Msg("Query")
	})
	assert.Contains(t, buf.String(), "Query")
	assert.Contains(t, buf.String(), "rowCount")
}
