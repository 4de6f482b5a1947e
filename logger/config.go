package logger

import (
	"github.com/code19m/errx"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	messageKey = "msg"
	levelKey   = "level"
	nameKey    = "logger"
	callerKey  = "caller"
	timeKey    = "time"

	EncodingJSON    = "json"
	EncodingConsole = "console"
)

// Config defines configuration options for the logger.
type Config struct {
	// Level specifies the minimum log level to emit.
	// Valid values are: "debug", "info", "warn", "error"
	// Default is "info".
	Level string `yaml:"level" env:"LOG_LEVEL" validate:"oneof=debug info warn error" default:"info"`

	// Encoding specifies the log format.
	// "console" prints colored human-readable lines for terminals,
	// "json" produces compact JSON for log processing systems.
	Encoding string `yaml:"encoding" env:"LOG_ENCODING" validate:"oneof=json console" default:"console"`

	// Disable creates no-op logger. Useful in testing environments.
	Disable bool `yaml:"disable" env:"LOG_DISABLE" default:"false"`
}

// getZapConfig converts the logger Config to a zap.Config.
func (c Config) getZapConfig() (*zap.Config, error) {
	zapLevel := zap.NewAtomicLevel()

	err := zapLevel.UnmarshalText([]byte(c.Level))
	if err != nil {
		return nil, errx.Wrap(err)
	}

	encodeLevel := zapcore.CapitalLevelEncoder
	if c.Encoding == EncodingConsole {
		encodeLevel = zapcore.CapitalColorLevelEncoder
	}

	encoderConfig := zapcore.EncoderConfig{
		MessageKey:     messageKey,
		LevelKey:       levelKey,
		NameKey:        nameKey,
		CallerKey:      callerKey,
		TimeKey:        timeKey,
		EncodeLevel:    encodeLevel,
		EncodeTime:     zapcore.RFC3339TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}

	// stdout is reserved for command output
	return &zap.Config{
		Level:            zapLevel,
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		Encoding:         c.Encoding,
		EncoderConfig:    encoderConfig,
	}, nil
}
