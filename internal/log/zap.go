package log

import (
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	logger = zap.NewNop()
	Logger = logger.Sugar()
)

// Options configures Init. The TUI owns stdout, so output always goes to a file.
type Options struct {
	File  string
	Level string
	Name  string
}

// DefaultFile is used when Options.File is empty.
func DefaultFile() string {
	return filepath.Join(os.TempDir(), "ceefax.log")
}

// Init replaces the no-op logger with a JSON file logger.
func Init(opts Options) error {
	path := opts.File
	if path == "" {
		path = DefaultFile()
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}

	level, err := zapcore.ParseLevel(strings.ToLower(opts.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(f),
		level,
	)

	name := opts.Name
	if name == "" {
		name = "ceefax"
	}
	logger = zap.New(core,
		zap.Fields(zap.String("logName", name)),
		zap.AddCaller(),
		zap.AddCallerSkip(1))
	Logger = logger.Sugar()
	return nil
}

// Sync flushes buffered entries.
func Sync() {
	_ = logger.Sync()
}

// Infow logs a message with key-value context.
func Infow(message string, keysAndValues ...interface{}) {
	Logger.Infow(message, keysAndValues...)
}

func Debugw(message string, keysAndValues ...interface{}) {
	Logger.Debugw(message, keysAndValues...)
}

func Warnw(message string, keysAndValues ...interface{}) {
	Logger.Warnw(message, keysAndValues...)
}

// Errorw logs a message with key-value context at ErrorLevel.
func Errorw(message string, keysAndValues ...interface{}) {
	Logger.Errorw(message, keysAndValues...)
}
