// Package logx configures zap loggers for the application.
package logx

import (
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the logging surface used across the application.
// *zap.SugaredLogger satisfies it.
type Logger interface {
	Debugf(template string, args ...interface{})
	Infof(template string, args ...interface{})
	Warnf(template string, args ...interface{})
	Errorf(template string, args ...interface{})
	DPanicf(template string, args ...interface{})
	Debugw(msg string, keysAndValues ...interface{})
	Infow(msg string, keysAndValues ...interface{})
	Sync() error
}

// Options controls logger construction.
type Options struct {
	Level string
	// Dev selects the development encoder config; DPanic panics in dev mode.
	Dev bool
	// Console selects the human-readable encoder instead of JSON.
	Console bool
	// Output defaults to stderr.
	Output io.Writer
}

var loggerLevelMap = map[string]zapcore.Level{
	"debug":  zapcore.DebugLevel,
	"info":   zapcore.InfoLevel,
	"warn":   zapcore.WarnLevel,
	"error":  zapcore.ErrorLevel,
	"dpanic": zapcore.DPanicLevel,
	"panic":  zapcore.PanicLevel,
	"fatal":  zapcore.FatalLevel,
}

// ParseLevel maps a level name to a zap level. Unknown names map to debug.
func ParseLevel(lvl string) zapcore.Level {
	level, exist := loggerLevelMap[strings.ToLower(strings.TrimSpace(lvl))]
	if !exist {
		return zapcore.DebugLevel
	}
	return level
}

// LevelNames returns the accepted level names.
func LevelNames() []string {
	return []string{"debug", "info", "warn", "error", "dpanic", "panic", "fatal"}
}

// New builds a sugared zap logger.
func New(opts Options) *zap.SugaredLogger {
	var out io.Writer = os.Stderr
	if opts.Output != nil {
		out = opts.Output
	}
	logWriter := zapcore.AddSync(out)

	var encoderCfg zapcore.EncoderConfig
	if opts.Dev {
		encoderCfg = zap.NewDevelopmentEncoderConfig()
	} else {
		encoderCfg = zap.NewProductionEncoderConfig()
	}
	encoderCfg.LevelKey = "LEVEL"
	encoderCfg.CallerKey = "CALLER"
	encoderCfg.TimeKey = "TIME"
	encoderCfg.NameKey = "NAME"
	encoderCfg.MessageKey = "MESSAGE"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder

	var encoder zapcore.Encoder
	if opts.Console {
		encoder = zapcore.NewConsoleEncoder(encoderCfg)
	} else {
		encoder = zapcore.NewJSONEncoder(encoderCfg)
	}

	core := zapcore.NewCore(encoder, logWriter, zap.NewAtomicLevelAt(ParseLevel(opts.Level)))
	zopts := []zap.Option{zap.AddCaller()}
	if opts.Dev {
		zopts = append(zopts, zap.Development())
	}
	return zap.New(core, zopts...).Sugar()
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
