package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLoggerLevels(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		level   log.Level
		logFunc func(*log.Logger)
		wantLog bool
	}{
		"warn at warn level":   {level: log.WarnLevel, logFunc: func(l *log.Logger) { l.Warn("test") }, wantLog: true},
		"debug at warn level":  {level: log.WarnLevel, logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: false},
		"info at warn level":   {level: log.WarnLevel, logFunc: func(l *log.Logger) { l.Info("test") }, wantLog: false},
		"debug at debug level": {level: log.DebugLevel, logFunc: func(l *log.Logger) { l.Debug("test") }, wantLog: true},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			tt.logFunc(newLogger(&buf, tt.level))
			assert.Equal(t, tt.wantLog, buf.Len() > 0)
		})
	}
}

func TestProgress(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	prog := newProgress(newLogger(&buf, log.DebugLevel))
	require.NotNil(t, prog)

	prog.done("parsed table", "rows", 3)

	out := buf.String()
	assert.Contains(t, out, "parsed table")
	assert.Contains(t, out, "rows=3")
	assert.Contains(t, out, "elapsed=")
}

func TestLoggerFromContext(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	custom := newLogger(&buf, log.WarnLevel)

	assert.Same(t, custom, loggerFromContext(withLogger(context.Background(), custom)))
	assert.Same(t, log.Default(), loggerFromContext(context.Background()))
}
