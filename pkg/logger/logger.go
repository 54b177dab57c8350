package logger

import (
	"fmt"
	"os"
	"time"

	rotatelogs "github.com/lestrrat-go/file-rotatelogs"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	defaultMaxAgeHours   = 24 * 7
	defaultRotationHours = 24
)

type LoggerConfig struct {
	Debug bool

	// LogFile enables an additional JSON log file that is rotated on disk.
	// The value is used as a prefix, e.g. "/var/log/relayer" becomes "/var/log/relayer_2024-01-02.log".
	LogFile       string
	MaxAgeHours   int
	RotationHours int
}

func NewLogger(cfg *LoggerConfig, options ...zap.Option) (*zap.Logger, error) {
	if cfg == nil {
		cfg = &LoggerConfig{}
	}

	level := zap.InfoLevel
	if cfg.Debug {
		level = zap.DebugLevel
	}

	var consoleEncoder zapcore.Encoder
	if cfg.Debug {
		encCfg := zap.NewDevelopmentEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		consoleEncoder = zapcore.NewConsoleEncoder(encCfg)
	} else {
		encCfg := zap.NewProductionEncoderConfig()
		encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
		consoleEncoder = zapcore.NewJSONEncoder(encCfg)
	}

	cores := []zapcore.Core{
		zapcore.NewCore(consoleEncoder, zapcore.Lock(os.Stderr), level),
	}

	if cfg.LogFile != "" {
		fileCore, err := newRotatingFileCore(cfg, level)
		if err != nil {
			return nil, err
		}
		cores = append(cores, fileCore)
	}

	options = append(options, zap.AddCaller())
	return zap.New(zapcore.NewTee(cores...), options...), nil
}

func newRotatingFileCore(cfg *LoggerConfig, level zapcore.Level) (zapcore.Core, error) {
	maxAge := cfg.MaxAgeHours
	if maxAge <= 0 {
		maxAge = defaultMaxAgeHours
	}
	rotation := cfg.RotationHours
	if rotation <= 0 {
		rotation = defaultRotationHours
	}

	rotator, err := rotatelogs.New(
		fmt.Sprintf("%s_%%Y-%%m-%%d.log", cfg.LogFile),
		rotatelogs.WithMaxAge(time.Duration(maxAge)*time.Hour),
		rotatelogs.WithRotationTime(time.Duration(rotation)*time.Hour),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create log file rotator: %w", err)
	}

	encCfg := zapcore.EncoderConfig{
		TimeKey:        "date",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	return zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level), nil
}
