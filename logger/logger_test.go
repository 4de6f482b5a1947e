package logger_test

import (
	"errors"
	"testing"

	"github.com/code19m/errx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rise-and-shine/filescom/logger"
	"github.com/rise-and-shine/filescom/meta"
)

func newObserved() (logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return logger.FromZap(zap.New(core)), logs
}

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		cfg     logger.Config
		wantErr bool
	}{
		{name: "json", cfg: logger.Config{Level: "info", Encoding: logger.EncodingJSON}},
		{name: "console", cfg: logger.Config{Level: "debug", Encoding: logger.EncodingConsole}},
		{name: "disabled ignores bad level", cfg: logger.Config{Level: "loud", Disable: true}},
		{name: "bad level", cfg: logger.Config{Level: "loud", Encoding: logger.EncodingJSON}, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := logger.New(tc.cfg)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, l)
		})
	}
}

func TestErrorxUnpacksErrx(t *testing.T) {
	l, logs := newObserved()

	err := errx.New("upload failed",
		errx.WithCode("FILE_UPLOAD_FAILED"),
		errx.WithDetails(errx.D{"destination_path": "/in/a.txt"}),
	)
	l.Errorx(err)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.ErrorLevel, entry.Level)
	assert.Equal(t, "FILE_UPLOAD_FAILED", entry.ContextMap()["error_code"])
}

func TestWarnxPlainError(t *testing.T) {
	l, logs := newObserved()

	l.Warnx(errors.New("boom"))
	l.Warnx(nil)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
	assert.Equal(t, "boom", entry.Message)
	assert.NotContains(t, entry.ContextMap(), "error_code")
}

func TestWithContext(t *testing.T) {
	l, logs := newObserved()

	ctx := meta.InjectMetaToContext(t.Context(), map[meta.ContextKey]string{
		meta.TraceID:   "trace-1",
		meta.Operation: "list_files",
	})
	l.WithContext(ctx).Named("filescom").Info("listing")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "filescom", entry.LoggerName)
	assert.Equal(t, "trace-1", entry.ContextMap()["trace_id"])
	assert.Equal(t, "list_files", entry.ContextMap()["operation"])
}
