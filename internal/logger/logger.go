// Package logger holds the process-wide zap logger
package logger

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Logger is the shared application logger. It is a no-op logger until Init is called.
var Logger = zap.NewNop()

// Init configures Logger with the given level. When file is not empty the
// output is written to a rotating file as well as to stdout.
func Init(level, file string) error {
	l, err := New(level, file)
	if err != nil {
		return err
	}
	Logger = l
	return nil
}

// New builds a JSON zap logger
func New(level, file string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	writeSyncer := zapcore.AddSync(os.Stdout)
	if file != "" {
		if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory: %w", err)
		}
		rotating := &lumberjack.Logger{
			Filename:   file,
			MaxSize:    100, // MB
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		writeSyncer = zapcore.NewMultiWriteSyncer(zapcore.AddSync(rotating), writeSyncer)
	}

	core := zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), writeSyncer, lvl)
	return zap.New(core, zap.AddCaller(), zap.AddStacktrace(zapcore.ErrorLevel)), nil
}

// Sync flushes any buffered log entries
func Sync() {
	_ = Logger.Sync()
}
